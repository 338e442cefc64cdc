package response

import "oficina_insufilm/internal/domain/entities"

// RollResponse exposes the effective alert threshold and low-stock flag.
type RollResponse struct {
	entities.InventoryRoll
	AlertThreshold float64 `json:"alert_threshold"`
	LowStock       bool    `json:"low_stock"`
}

func FromRoll(r entities.InventoryRoll, defaultThreshold float64) RollResponse {
	return RollResponse{
		InventoryRoll:  r,
		AlertThreshold: r.AlertThreshold(defaultThreshold),
		LowStock:       r.IsLowStock(defaultThreshold),
	}
}

func FromRolls(in []entities.InventoryRoll, defaultThreshold float64) []RollResponse {
	out := make([]RollResponse, 0, len(in))
	for _, r := range in {
		out = append(out, FromRoll(r, defaultThreshold))
	}
	return out
}
