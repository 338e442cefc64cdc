package interfaces

import (
	"context"
	"oficina_insufilm/internal/domain/entities"
)

// IWorkOrderRepository abstracts persistence for work orders.
//
// Update follows the same versioned compare-and-swap contract as
// IInventoryRepository.Update.
type IWorkOrderRepository interface {
	Create(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	List(ctx context.Context) ([]entities.WorkOrder, error)
	ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.WorkOrder, error)
	ListByAssignedTo(ctx context.Context, userID string) ([]entities.WorkOrder, error)
	Update(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error)
	Delete(ctx context.Context, id string) error
}
