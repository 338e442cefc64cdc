package memory

import (
	"context"
	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase/interfaces"
	"time"
)

type ScheduleRepository struct {
	t *table[entities.ScheduleBlock]
}

var _ interfaces.IScheduleRepository = (*ScheduleRepository)(nil)

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{t: newTable[entities.ScheduleBlock](nil)}
}

func (r *ScheduleRepository) Create(_ context.Context, b entities.ScheduleBlock) (entities.ScheduleBlock, error) {
	return r.t.insert(b.ID, b)
}

func (r *ScheduleRepository) GetByID(_ context.Context, id string) (entities.ScheduleBlock, error) {
	return r.t.get(id), nil
}

func (r *ScheduleRepository) List(_ context.Context) ([]entities.ScheduleBlock, error) {
	return r.t.filter(nil), nil
}

func (r *ScheduleRepository) ListByPeriod(_ context.Context, start, end time.Time) ([]entities.ScheduleBlock, error) {
	return r.t.filter(func(b entities.ScheduleBlock) bool {
		return !b.Start.Before(start) && !b.Start.After(end)
	}), nil
}

func (r *ScheduleRepository) ListByInstaller(_ context.Context, installerID string) ([]entities.ScheduleBlock, error) {
	return r.t.filter(func(b entities.ScheduleBlock) bool { return b.InstallerID == installerID }), nil
}

func (r *ScheduleRepository) Update(_ context.Context, b entities.ScheduleBlock) (entities.ScheduleBlock, error) {
	return r.t.replace(b.ID, b), nil
}

func (r *ScheduleRepository) Delete(_ context.Context, id string) error {
	r.t.remove(id)
	return nil
}
