package response

import (
	"time"

	"oficina_insufilm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ChargeResponse struct {
	PaymentID   string          `json:"payment_id"`
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	Status      string          `json:"status"`
	CashEntryID string          `json:"cash_entry_id,omitempty"`
	PaymentDate time.Time       `json:"payment_date"`
	Date        time.Time       `json:"date"`
	By          string          `json:"by"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromCharge(p entities.PaymentCharge) ChargeResponse {
	return ChargeResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		OrderID:      p.OrderID,
		Amount:       p.Amount,
		Method:       string(p.Method),
		Status:       string(p.Status),
		CashEntryID:  p.CashEntryID,
		PaymentDate:  p.Date,
		Date:         p.Date,
		By:           p.By,
		MPPayloadRaw: string(p.ProviderPayloadRaw),
		MPPayload:    p.ProviderPayload,
	}
}

func FromCharges(in []entities.PaymentCharge) []ChargeResponse {
	out := make([]ChargeResponse, 0, len(in))
	for _, p := range in {
		out = append(out, FromCharge(p))
	}
	return out
}
