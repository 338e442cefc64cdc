package interfaces

import (
	"context"
	"oficina_insufilm/internal/domain/entities"
)

// IPaymentChargeRepository abstracts persistence for provider charges.

type IPaymentChargeRepository interface {
	Create(ctx context.Context, c entities.PaymentCharge) (entities.PaymentCharge, error)
	GetByID(ctx context.Context, id string) (entities.PaymentCharge, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentCharge, error)
}
