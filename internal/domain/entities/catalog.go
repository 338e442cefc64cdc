package entities

import (
	"net/mail"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a shop client.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return NewValidationError("name", "must not be empty")
	}
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return NewValidationError("email", "invalid address")
		}
	}
	return nil
}

// Matches reports whether the term appears in name, email or phone.
func (c Customer) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.Email), term) ||
		strings.Contains(c.Phone, term)
}

// Vehicle belongs to a customer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI customer_id-index: customer_id
type Vehicle struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Plate      string    `json:"plate"`
	Brand      string    `json:"brand"`
	Model      string    `json:"model"`
	Year       int       `json:"year,omitempty"`
	Color      string    `json:"color,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (v Vehicle) Validate() error {
	switch {
	case strings.TrimSpace(v.CustomerID) == "":
		return NewValidationError("customer_id", "must not be empty")
	case strings.TrimSpace(v.Plate) == "":
		return NewValidationError("plate", "must not be empty")
	case strings.TrimSpace(v.Brand) == "":
		return NewValidationError("brand", "must not be empty")
	case strings.TrimSpace(v.Model) == "":
		return NewValidationError("model", "must not be empty")
	case v.Year < 0:
		return NewValidationError("year", "must not be negative")
	}
	return nil
}

// ServiceItem is an entry of the service catalog.
type ServiceItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Description string          `json:"description,omitempty"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (s ServiceItem) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return NewValidationError("name", "must not be empty")
	}
	if s.BasePrice.IsNegative() {
		return NewValidationError("base_price", "must be greater than or equal to zero")
	}
	return nil
}
