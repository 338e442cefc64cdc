package response

import (
	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase"

	"github.com/shopspring/decimal"
)

// OrderResponse adds the derived subtotal to the stored order.
type OrderResponse struct {
	entities.WorkOrder
	Subtotal decimal.Decimal `json:"subtotal"`
}

func FromOrder(o entities.WorkOrder) OrderResponse {
	if o.Items == nil {
		o.Items = []entities.LineItem{}
	}
	return OrderResponse{WorkOrder: o, Subtotal: o.Subtotal()}
}

func FromOrders(in []entities.WorkOrder) []OrderResponse {
	out := make([]OrderResponse, 0, len(in))
	for _, o := range in {
		out = append(out, FromOrder(o))
	}
	return out
}

type PaymentResponse struct {
	Order  OrderResponse      `json:"order"`
	Entry  entities.CashEntry `json:"entry"`
	Charge *ChargeResponse    `json:"charge,omitempty"`
}

func FromPaymentResult(r usecase.PaymentResult) PaymentResponse {
	res := PaymentResponse{Order: FromOrder(r.Order), Entry: r.Entry}
	if r.Charge != nil {
		c := FromCharge(*r.Charge)
		res.Charge = &c
	}
	return res
}

type MaterialResponse struct {
	Order OrderResponse `json:"order"`
	Roll  RollResponse  `json:"roll"`
}

func FromMaterialResult(r usecase.MaterialResult, defaultThreshold float64) MaterialResponse {
	return MaterialResponse{Order: FromOrder(r.Order), Roll: FromRoll(r.Roll, defaultThreshold)}
}
