package request

import (
	"encoding/json"
	"strings"

	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase"

	"github.com/shopspring/decimal"
)

type LineItemRequest struct {
	ServiceID string          `json:"service_id" binding:"required"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func toLineItems(items []LineItemRequest) []entities.LineItem {
	if items == nil {
		return nil
	}
	out := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.LineItem{
			ServiceID: strings.TrimSpace(it.ServiceID),
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return out
}

type CreateOrderRequest struct {
	CustomerID    string            `json:"customer_id" binding:"required"`
	VehicleID     string            `json:"vehicle_id" binding:"required"`
	Items         []LineItemRequest `json:"items"`
	Discount      decimal.Decimal   `json:"discount"`
	PaymentMethod string            `json:"payment_method"`
	Tone          string            `json:"tone"`
	AssignedTo    string            `json:"assigned_to"`
	ScheduledAt   *string           `json:"scheduled_at"`
	Notes         string            `json:"notes"`
	Actor         string            `json:"actor"`
}

func (r CreateOrderRequest) ToInput(actor string) (usecase.CreateOrderInput, error) {
	scheduled, err := parseOptionalDate(r.ScheduledAt)
	if err != nil {
		return usecase.CreateOrderInput{}, err
	}
	return usecase.CreateOrderInput{
		CustomerID:    r.CustomerID,
		VehicleID:     r.VehicleID,
		Items:         toLineItems(r.Items),
		Discount:      r.Discount,
		PaymentMethod: entities.PaymentMethod(r.PaymentMethod),
		Tone:          r.Tone,
		AssignedTo:    r.AssignedTo,
		ScheduledAt:   scheduled,
		Notes:         r.Notes,
		Actor:         actor,
	}, nil
}

// UpdateOrderRequest is a partial update. Items, when present, replace the
// whole list.
type UpdateOrderRequest struct {
	CustomerID    *string           `json:"customer_id"`
	VehicleID     *string           `json:"vehicle_id"`
	Items         []LineItemRequest `json:"items"`
	Discount      *decimal.Decimal  `json:"discount"`
	Status        *string           `json:"status"`
	Tone          *string           `json:"tone"`
	AssignedTo    *string           `json:"assigned_to"`
	ScheduledAt   *string           `json:"scheduled_at"`
	PaymentMethod *string           `json:"payment_method"`
	Notes         *string           `json:"notes"`
	ChangeNote    string            `json:"change_note"`
	Actor         string            `json:"actor"`
}

func (r UpdateOrderRequest) ToPatch() (usecase.OrderPatch, error) {
	scheduled, err := parseOptionalDate(r.ScheduledAt)
	if err != nil {
		return usecase.OrderPatch{}, err
	}
	patch := usecase.OrderPatch{
		CustomerID:  r.CustomerID,
		VehicleID:   r.VehicleID,
		Items:       toLineItems(r.Items),
		Discount:    r.Discount,
		Tone:        r.Tone,
		AssignedTo:  r.AssignedTo,
		ScheduledAt: scheduled,
		Notes:       r.Notes,
	}
	if r.Status != nil {
		s := entities.OrderStatus(*r.Status)
		patch.Status = &s
	}
	if r.PaymentMethod != nil {
		m := entities.PaymentMethod(*r.PaymentMethod)
		patch.PaymentMethod = &m
	}
	return patch, nil
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Actor  string `json:"actor"`
}

type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method" binding:"required"`
	Actor  string          `json:"actor"`
}

type ConsumeMaterialRequest struct {
	RollID string  `json:"roll_id" binding:"required"`
	Meters float64 `json:"meters"`
	Actor  string  `json:"actor"`
}

// ChargeRequest is the payload of the provider charge route. mp_payload is
// forwarded as-is to support varying Mercado Pago schemas; a body without the
// envelope is taken as the payload itself.
type ChargeRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
	Actor     string          `json:"actor"`
}
