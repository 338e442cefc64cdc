package request

import (
	"oficina_insufilm/internal/usecase"
)

type ScheduleRequest struct {
	Title       string `json:"title" binding:"required"`
	Start       string `json:"start" binding:"required"`
	End         string `json:"end" binding:"required"`
	InstallerID string `json:"installer_id"`
	OrderID     string `json:"order_id"`
	Notes       string `json:"notes"`
}

func (r ScheduleRequest) ToInput() (usecase.ScheduleInput, error) {
	start, err := ParseDate(r.Start, false)
	if err != nil {
		return usecase.ScheduleInput{}, err
	}
	end, err := ParseDate(r.End, true)
	if err != nil {
		return usecase.ScheduleInput{}, err
	}
	return usecase.ScheduleInput{
		Title:       r.Title,
		Start:       start,
		End:         end,
		InstallerID: r.InstallerID,
		OrderID:     r.OrderID,
		Notes:       r.Notes,
	}, nil
}
