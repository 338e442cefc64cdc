package entities

import (
	"strings"
	"time"
)

// ScheduleBlock reserves installer time, optionally for an order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI installer_id-index: installer_id
type ScheduleBlock struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	InstallerID string    `json:"installer_id,omitempty"`
	OrderID     string    `json:"order_id,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

func (b ScheduleBlock) Validate() error {
	switch {
	case strings.TrimSpace(b.Title) == "":
		return NewValidationError("title", "must not be empty")
	case b.Start.IsZero():
		return NewValidationError("start", "must be provided")
	case b.End.IsZero():
		return NewValidationError("end", "must be provided")
	case b.End.Before(b.Start):
		return NewValidationError("end", "must not be before start")
	}
	return nil
}
