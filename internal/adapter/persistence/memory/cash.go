package memory

import (
	"context"
	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase/interfaces"
	"time"
)

type CashEntryRepository struct {
	t *table[entities.CashEntry]
}

var _ interfaces.ICashEntryRepository = (*CashEntryRepository)(nil)

func NewCashEntryRepository() *CashEntryRepository {
	return &CashEntryRepository{t: newTable[entities.CashEntry](nil)}
}

func (r *CashEntryRepository) Create(_ context.Context, e entities.CashEntry) (entities.CashEntry, error) {
	return r.t.insert(e.ID, e)
}

func (r *CashEntryRepository) GetByID(_ context.Context, id string) (entities.CashEntry, error) {
	return r.t.get(id), nil
}

func (r *CashEntryRepository) List(_ context.Context) ([]entities.CashEntry, error) {
	return r.t.filter(nil), nil
}

func (r *CashEntryRepository) ListByPeriod(_ context.Context, start, end time.Time) ([]entities.CashEntry, error) {
	return r.t.filter(func(e entities.CashEntry) bool {
		return !e.At.Before(start) && !e.At.After(end)
	}), nil
}

func (r *CashEntryRepository) ListByType(_ context.Context, t entities.CashEntryType) ([]entities.CashEntry, error) {
	return r.t.filter(func(e entities.CashEntry) bool { return e.Type == t }), nil
}

func (r *CashEntryRepository) ListByOrderID(_ context.Context, orderID string) ([]entities.CashEntry, error) {
	return r.t.filter(func(e entities.CashEntry) bool { return e.RefOrderID == orderID }), nil
}

func (r *CashEntryRepository) Update(_ context.Context, e entities.CashEntry) (entities.CashEntry, error) {
	return r.t.replace(e.ID, e), nil
}

func (r *CashEntryRepository) Delete(_ context.Context, id string) error {
	r.t.remove(id)
	return nil
}
