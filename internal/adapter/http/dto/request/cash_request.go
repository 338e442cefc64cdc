package request

import (
	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateCashEntryRequest struct {
	Type       string          `json:"type" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	RefOrderID string          `json:"ref_order_id"`
	Notes      string          `json:"notes"`
	At         *string         `json:"at"`
	By         string          `json:"by"`
}

func (r CreateCashEntryRequest) ToInput(by string) (usecase.CreateCashEntryInput, error) {
	at, err := parseOptionalDate(r.At)
	if err != nil {
		return usecase.CreateCashEntryInput{}, err
	}
	in := usecase.CreateCashEntryInput{
		Type:       entities.CashEntryType(r.Type),
		Amount:     r.Amount,
		Method:     entities.PaymentMethod(r.Method),
		RefOrderID: r.RefOrderID,
		Notes:      r.Notes,
		By:         by,
	}
	if at != nil {
		in.At = *at
	}
	return in, nil
}

type UpdateCashEntryRequest struct {
	Type       *string          `json:"type"`
	Amount     *decimal.Decimal `json:"amount"`
	Method     *string          `json:"method"`
	RefOrderID *string          `json:"ref_order_id"`
	Notes      *string          `json:"notes"`
	At         *string          `json:"at"`
}

func (r UpdateCashEntryRequest) ToInput() (usecase.UpdateCashEntryInput, error) {
	at, err := parseOptionalDate(r.At)
	if err != nil {
		return usecase.UpdateCashEntryInput{}, err
	}
	in := usecase.UpdateCashEntryInput{
		Amount:     r.Amount,
		RefOrderID: r.RefOrderID,
		Notes:      r.Notes,
		At:         at,
	}
	if r.Type != nil {
		t := entities.CashEntryType(*r.Type)
		in.Type = &t
	}
	if r.Method != nil {
		m := entities.PaymentMethod(*r.Method)
		in.Method = &m
	}
	return in, nil
}
