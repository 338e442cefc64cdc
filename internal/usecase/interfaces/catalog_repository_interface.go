package interfaces

import (
	"context"
	"oficina_insufilm/internal/domain/entities"
)

// Catalog repositories. Update overwrites an existing document and returns a
// zero value when the id is unknown.

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	List(ctx context.Context) ([]entities.Vehicle, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

type IServiceItemRepository interface {
	Create(ctx context.Context, s entities.ServiceItem) (entities.ServiceItem, error)
	GetByID(ctx context.Context, id string) (entities.ServiceItem, error)
	List(ctx context.Context) ([]entities.ServiceItem, error)
	Update(ctx context.Context, s entities.ServiceItem) (entities.ServiceItem, error)
	Delete(ctx context.Context, id string) error
}
