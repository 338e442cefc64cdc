package memory

import (
	"context"
	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase/interfaces"
)

type PaymentChargeRepository struct {
	t *table[entities.PaymentCharge]
}

var _ interfaces.IPaymentChargeRepository = (*PaymentChargeRepository)(nil)

func NewPaymentChargeRepository() *PaymentChargeRepository {
	return &PaymentChargeRepository{t: newTable[entities.PaymentCharge](nil)}
}

func (r *PaymentChargeRepository) Create(_ context.Context, c entities.PaymentCharge) (entities.PaymentCharge, error) {
	return r.t.insert(c.ID, c)
}

func (r *PaymentChargeRepository) GetByID(_ context.Context, id string) (entities.PaymentCharge, error) {
	return r.t.get(id), nil
}

func (r *PaymentChargeRepository) ListByOrderID(_ context.Context, orderID string) ([]entities.PaymentCharge, error) {
	return r.t.filter(func(c entities.PaymentCharge) bool { return c.OrderID == orderID }), nil
}
