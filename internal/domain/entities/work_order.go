package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle of a work order (ordem de serviço).
type OrderStatus string

const (
	OrderStatusAberta             OrderStatus = "aberta"
	OrderStatusEmExecucao         OrderStatus = "em_execucao"
	OrderStatusAguardandoRetirada OrderStatus = "aguardando_retirada"
	OrderStatusConcluida          OrderStatus = "concluida"
	OrderStatusCancelada          OrderStatus = "cancelada"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusAberta, OrderStatusEmExecucao, OrderStatusAguardandoRetirada,
		OrderStatusConcluida, OrderStatusCancelada:
		return true
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusConcluida || s == OrderStatusCancelada
}

// PaymentMethod is shared by work orders and cash entries.
type PaymentMethod string

const (
	PaymentMethodDinheiro PaymentMethod = "dinheiro"
	PaymentMethodPix      PaymentMethod = "pix"
	PaymentMethodCredito  PaymentMethod = "credito"
	PaymentMethodDebito   PaymentMethod = "debito"
	PaymentMethodOutro    PaymentMethod = "outro"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodDinheiro, PaymentMethodPix, PaymentMethodCredito,
		PaymentMethodDebito, PaymentMethodOutro:
		return true
	}
	return false
}

// LineItem is one priced service on a work order.
type LineItem struct {
	ServiceID string          `json:"service_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// OrderEvent is one entry of the order change history.
type OrderEvent struct {
	At     time.Time   `json:"at"`
	By     string      `json:"by"`
	Status OrderStatus `json:"status,omitempty"`
	Note   string      `json:"note,omitempty"`
}

// WorkOrder is the billable job tying a customer, vehicle and services.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI status-index: status
//   - GSI assigned_to-index: assigned_to
//
// Total is derived from Items and Discount and is never set directly.
type WorkOrder struct {
	ID                string          `json:"id"`
	CustomerID        string          `json:"customer_id"`
	VehicleID         string          `json:"vehicle_id"`
	Items             []LineItem      `json:"items"`
	Tone              string          `json:"tone,omitempty"`
	RollID            string          `json:"roll_id,omitempty"`
	MetersUsed        float64         `json:"meters_used,omitempty"`
	AssignedTo        string          `json:"assigned_to,omitempty"`
	Status            OrderStatus     `json:"status"`
	ScheduledAt       *time.Time      `json:"scheduled_at,omitempty"`
	FinishedAt        *time.Time      `json:"finished_at,omitempty"`
	Discount          decimal.Decimal `json:"discount"`
	Total             decimal.Decimal `json:"total"`
	PaymentMethod     PaymentMethod   `json:"payment_method,omitempty"`
	PaymentReceived   bool            `json:"payment_received"`
	PaymentReceivedAt *time.Time      `json:"payment_received_at,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	History           []OrderEvent    `json:"history,omitempty"`
	Version           int64           `json:"version"`
	CreatedAt         time.Time       `json:"created_at"`
	CreatedBy         string          `json:"created_by"`
	UpdatedAt         time.Time       `json:"updated_at"`
	UpdatedBy         string          `json:"updated_by,omitempty"`
}

// Subtotal sums quantity*unitPrice over the items.
func Subtotal(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Subtotal())
	}
	return sum
}

// ComputeTotal applies the discount and floors the result at zero.
func ComputeTotal(items []LineItem, discount decimal.Decimal) decimal.Decimal {
	total := Subtotal(items).Sub(discount)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// Reprice recomputes Total from the current items and discount.
func (o *WorkOrder) Reprice() {
	o.Total = ComputeTotal(o.Items, o.Discount)
}

func (o WorkOrder) Subtotal() decimal.Decimal {
	return Subtotal(o.Items)
}

// ValidateItems enforces the line item rules: at least one item, quantity >= 1
// and a non-negative unit price.
func ValidateItems(items []LineItem) error {
	if len(items) == 0 {
		return NewValidationError("items", "at least one item is required")
	}
	for _, it := range items {
		if it.ServiceID == "" {
			return NewValidationError("items.service_id", "must not be empty")
		}
		if it.Quantity < 1 {
			return NewValidationError("items.quantity", "must be at least 1")
		}
		if it.UnitPrice.IsNegative() {
			return NewValidationError("items.unit_price", "must be greater than or equal to zero")
		}
	}
	return nil
}

func ValidateDiscount(discount decimal.Decimal) error {
	if discount.IsNegative() {
		return NewValidationError("discount", "must be greater than or equal to zero")
	}
	return nil
}
