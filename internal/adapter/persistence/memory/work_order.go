package memory

import (
	"context"
	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase/interfaces"
	"time"
)

type WorkOrderRepository struct {
	t *table[entities.WorkOrder]
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderRepository)(nil)

func NewWorkOrderRepository() *WorkOrderRepository {
	return &WorkOrderRepository{t: newTable(cloneOrder)}
}

func (r *WorkOrderRepository) Create(_ context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
	return r.t.insert(o.ID, o)
}

func (r *WorkOrderRepository) GetByID(_ context.Context, id string) (entities.WorkOrder, error) {
	return r.t.get(id), nil
}

func (r *WorkOrderRepository) List(_ context.Context) ([]entities.WorkOrder, error) {
	return r.t.filter(nil), nil
}

func (r *WorkOrderRepository) ListByStatus(_ context.Context, status entities.OrderStatus) ([]entities.WorkOrder, error) {
	return r.t.filter(func(o entities.WorkOrder) bool { return o.Status == status }), nil
}

func (r *WorkOrderRepository) ListByAssignedTo(_ context.Context, userID string) ([]entities.WorkOrder, error) {
	return r.t.filter(func(o entities.WorkOrder) bool { return o.AssignedTo == userID }), nil
}

func (r *WorkOrderRepository) Update(_ context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
	expected := o.Version
	o.Version++
	return r.t.swap(o.ID, expected, func(v entities.WorkOrder) int64 { return v.Version }, o)
}

func (r *WorkOrderRepository) Delete(_ context.Context, id string) error {
	r.t.remove(id)
	return nil
}

func cloneOrder(o entities.WorkOrder) entities.WorkOrder {
	if o.Items != nil {
		o.Items = append([]entities.LineItem(nil), o.Items...)
	}
	if o.History != nil {
		o.History = append([]entities.OrderEvent(nil), o.History...)
	}
	o.ScheduledAt = cloneTime(o.ScheduledAt)
	o.FinishedAt = cloneTime(o.FinishedAt)
	o.PaymentReceivedAt = cloneTime(o.PaymentReceivedAt)
	return o
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
