package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashEntryType carries the direction of a cash movement.
type CashEntryType string

const (
	CashEntryReceita CashEntryType = "receita"
	CashEntryDespesa CashEntryType = "despesa"
)

func (t CashEntryType) IsValid() bool {
	return t == CashEntryReceita || t == CashEntryDespesa
}

// CashEntry is one ledger line (receipt or expense).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI ref_order_id-index: ref_order_id
//
// Amount is never negative; direction lives in Type.
type CashEntry struct {
	ID         string          `json:"id"`
	Type       CashEntryType   `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Method     PaymentMethod   `json:"method,omitempty"`
	RefOrderID string          `json:"ref_order_id,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	At         time.Time       `json:"at"`
	By         string          `json:"by"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (e CashEntry) Validate() error {
	if !e.Type.IsValid() {
		return NewValidationError("type", "must be receita or despesa")
	}
	if e.Amount.IsNegative() {
		return NewValidationError("amount", "must be greater than or equal to zero")
	}
	if e.Method != "" && !e.Method.IsValid() {
		return NewValidationError("method", "unknown payment method")
	}
	if e.At.IsZero() {
		return NewValidationError("at", "must be provided")
	}
	if e.By == "" {
		return NewValidationError("by", "must not be empty")
	}
	return nil
}

// CashSummary aggregates entries of a period.
type CashSummary struct {
	Start        time.Time                         `json:"start"`
	End          time.Time                         `json:"end"`
	TotalReceita decimal.Decimal                   `json:"total_receita"`
	TotalDespesa decimal.Decimal                   `json:"total_despesa"`
	Balance      decimal.Decimal                   `json:"balance"`
	ByMethod     map[PaymentMethod]decimal.Decimal `json:"by_method"`
}

// Summarize aggregates the entries whose At falls in [start, end], both ends
// inclusive. ByMethod sums both receitas and despesas into the same bucket and
// skips entries without a method.
func Summarize(entries []CashEntry, start, end time.Time) CashSummary {
	s := CashSummary{
		Start:        start,
		End:          end,
		TotalReceita: decimal.Zero,
		TotalDespesa: decimal.Zero,
		ByMethod:     map[PaymentMethod]decimal.Decimal{},
	}
	for _, e := range entries {
		if e.At.Before(start) || e.At.After(end) {
			continue
		}
		switch e.Type {
		case CashEntryReceita:
			s.TotalReceita = s.TotalReceita.Add(e.Amount)
		case CashEntryDespesa:
			s.TotalDespesa = s.TotalDespesa.Add(e.Amount)
		}
		if e.Method != "" {
			s.ByMethod[e.Method] = s.ByMethod[e.Method].Add(e.Amount)
		}
	}
	s.Balance = s.TotalReceita.Sub(s.TotalDespesa)
	return s
}
