package request

import (
	"oficina_insufilm/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateRollRequest struct {
	Brand             string          `json:"brand"`
	Tone              string          `json:"tone" binding:"required"`
	Width             float64         `json:"width" binding:"required"`
	TotalLength       float64         `json:"total_length"`
	Cost              decimal.Decimal `json:"cost"`
	Supplier          string          `json:"supplier"`
	Lot               string          `json:"lot"`
	LowStockThreshold *float64        `json:"low_stock_threshold"`
}

func (r CreateRollRequest) ToInput() usecase.CreateRollInput {
	return usecase.CreateRollInput{
		Brand:             r.Brand,
		Tone:              r.Tone,
		Width:             r.Width,
		TotalLength:       r.TotalLength,
		Cost:              r.Cost,
		Supplier:          r.Supplier,
		Lot:               r.Lot,
		LowStockThreshold: r.LowStockThreshold,
	}
}

// UpdateRollRequest is a partial update; absent fields are left unchanged.
type UpdateRollRequest struct {
	Brand             *string          `json:"brand"`
	Tone              *string          `json:"tone"`
	Width             *float64         `json:"width"`
	TotalLength       *float64         `json:"total_length"`
	AvailableLength   *float64         `json:"available_length"`
	Cost              *decimal.Decimal `json:"cost"`
	Supplier          *string          `json:"supplier"`
	Lot               *string          `json:"lot"`
	LowStockThreshold *float64         `json:"low_stock_threshold"`
	ClearThreshold    bool             `json:"clear_threshold"`
}

func (r UpdateRollRequest) ToInput() usecase.UpdateRollInput {
	return usecase.UpdateRollInput{
		Brand:             r.Brand,
		Tone:              r.Tone,
		Width:             r.Width,
		TotalLength:       r.TotalLength,
		AvailableLength:   r.AvailableLength,
		Cost:              r.Cost,
		Supplier:          r.Supplier,
		Lot:               r.Lot,
		LowStockThreshold: r.LowStockThreshold,
		ClearThreshold:    r.ClearThreshold,
	}
}

type ConsumeRequest struct {
	Meters float64 `json:"meters"`
}

type RestockRequest struct {
	Meters float64 `json:"meters"`
	Note   string  `json:"note"`
}
