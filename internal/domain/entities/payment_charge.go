package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ChargeStatus represents the provider side outcome of an order charge.
type ChargeStatus string

const (
	ChargeStatusPendente ChargeStatus = "pendente"
	ChargeStatusAprovado ChargeStatus = "aprovado"
	ChargeStatusNegado   ChargeStatus = "negado"
)

// PaymentCharge records a card/pix charge made through the payment provider
// for a work order.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI order_id-index: order_id
//
// ProviderPayloadRaw keeps the provider response body for traceability.
type PaymentCharge struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	Amount      decimal.Decimal `json:"amount"`
	Method      PaymentMethod   `json:"method"`
	Status      ChargeStatus    `json:"status"`
	CashEntryID string          `json:"cash_entry_id,omitempty"`
	Date        time.Time       `json:"date"`
	By          string          `json:"by"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

// MethodFromProvider maps a Mercado Pago payment_type_id onto the shop's
// payment methods.
func MethodFromProvider(paymentTypeID string) PaymentMethod {
	switch paymentTypeID {
	case "credit_card":
		return PaymentMethodCredito
	case "debit_card", "prepaid_card":
		return PaymentMethodDebito
	case "bank_transfer", "pix":
		return PaymentMethodPix
	case "":
		return PaymentMethodPix
	}
	return PaymentMethodOutro
}
