package entities

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold is the alert level, in metres, applied to rolls that
// do not carry their own threshold.
const DefaultLowStockThreshold = 5.0

// InventoryRoll is a continuous stock of one film tone and width.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Version is bumped on every write and used as the compare-and-swap token for
// consume/restock.
type InventoryRoll struct {
	ID                string          `json:"id"`
	Brand             string          `json:"brand,omitempty"`
	Tone              string          `json:"tone"`
	Width             float64         `json:"width"`
	TotalLength       float64         `json:"total_length"`
	AvailableLength   float64         `json:"available_length"`
	Cost              decimal.Decimal `json:"cost"`
	Supplier          string          `json:"supplier,omitempty"`
	Lot               string          `json:"lot,omitempty"`
	LowStockThreshold *float64        `json:"low_stock_threshold,omitempty"`
	Version           int64           `json:"version"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// Validate checks the field level rules of a roll.
func (r InventoryRoll) Validate() error {
	if strings.TrimSpace(r.Tone) == "" {
		return NewValidationError("tone", "must not be empty")
	}
	if !(r.Width > 0) || math.IsInf(r.Width, 0) {
		return NewValidationError("width", "must be greater than zero")
	}
	if !isNonNegative(r.TotalLength) {
		return NewValidationError("total_length", "must be greater than or equal to zero")
	}
	if !isNonNegative(r.AvailableLength) {
		return NewValidationError("available_length", "must be greater than or equal to zero")
	}
	if r.Cost.IsNegative() {
		return NewValidationError("cost", "must be greater than or equal to zero")
	}
	if r.LowStockThreshold != nil && !isNonNegative(*r.LowStockThreshold) {
		return NewValidationError("low_stock_threshold", "must be greater than or equal to zero")
	}
	return nil
}

// Consume removes used metres from the available length. Consumption beyond
// what is available clamps to zero; the returned value is the part of used
// that could not be served.
func (r *InventoryRoll) Consume(used float64) (shortfall float64) {
	remaining := r.AvailableLength - used
	if remaining < 0 {
		shortfall = -remaining
		remaining = 0
	}
	r.AvailableLength = remaining
	return shortfall
}

// Restock adds metres to the available length. Total is never reduced and
// only grows when available would exceed it: total = max(total, available).
// It does not track cumulative intake.
func (r *InventoryRoll) Restock(additional float64) {
	r.AvailableLength += additional
	r.TotalLength = math.Max(r.TotalLength, r.AvailableLength)
}

// AlertThreshold resolves the roll's own threshold or the given default.
func (r InventoryRoll) AlertThreshold(defaultThreshold float64) float64 {
	if r.LowStockThreshold != nil {
		return *r.LowStockThreshold
	}
	return defaultThreshold
}

func (r InventoryRoll) IsLowStock(defaultThreshold float64) bool {
	return r.AvailableLength <= r.AlertThreshold(defaultThreshold)
}

func isNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
