package request

import (
	"oficina_insufilm/internal/usecase"

	"github.com/shopspring/decimal"
)

type CustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

func (r CustomerRequest) ToInput() usecase.CustomerInput {
	return usecase.CustomerInput{Name: r.Name, Phone: r.Phone, Email: r.Email, Notes: r.Notes}
}

type VehicleRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	Plate      string `json:"plate" binding:"required"`
	Brand      string `json:"brand" binding:"required"`
	Model      string `json:"model" binding:"required"`
	Year       int    `json:"year"`
	Color      string `json:"color"`
}

func (r VehicleRequest) ToInput() usecase.VehicleInput {
	return usecase.VehicleInput{
		CustomerID: r.CustomerID,
		Plate:      r.Plate,
		Brand:      r.Brand,
		Model:      r.Model,
		Year:       r.Year,
		Color:      r.Color,
	}
}

type ServiceRequest struct {
	Name        string          `json:"name" binding:"required"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Description string          `json:"description"`
	Active      *bool           `json:"active"`
}

func (r ServiceRequest) ToInput() usecase.ServiceInput {
	return usecase.ServiceInput{
		Name:        r.Name,
		BasePrice:   r.BasePrice,
		Description: r.Description,
		Active:      r.Active,
	}
}
