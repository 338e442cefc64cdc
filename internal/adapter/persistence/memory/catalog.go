package memory

import (
	"context"
	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase/interfaces"
)

type CustomerRepository struct {
	t *table[entities.Customer]
}

var _ interfaces.ICustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{t: newTable[entities.Customer](nil)}
}

func (r *CustomerRepository) Create(_ context.Context, c entities.Customer) (entities.Customer, error) {
	return r.t.insert(c.ID, c)
}

func (r *CustomerRepository) GetByID(_ context.Context, id string) (entities.Customer, error) {
	return r.t.get(id), nil
}

func (r *CustomerRepository) List(_ context.Context) ([]entities.Customer, error) {
	return r.t.filter(nil), nil
}

func (r *CustomerRepository) Update(_ context.Context, c entities.Customer) (entities.Customer, error) {
	return r.t.replace(c.ID, c), nil
}

func (r *CustomerRepository) Delete(_ context.Context, id string) error {
	r.t.remove(id)
	return nil
}

type VehicleRepository struct {
	t *table[entities.Vehicle]
}

var _ interfaces.IVehicleRepository = (*VehicleRepository)(nil)

func NewVehicleRepository() *VehicleRepository {
	return &VehicleRepository{t: newTable[entities.Vehicle](nil)}
}

func (r *VehicleRepository) Create(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	return r.t.insert(v.ID, v)
}

func (r *VehicleRepository) GetByID(_ context.Context, id string) (entities.Vehicle, error) {
	return r.t.get(id), nil
}

func (r *VehicleRepository) List(_ context.Context) ([]entities.Vehicle, error) {
	return r.t.filter(nil), nil
}

func (r *VehicleRepository) ListByCustomerID(_ context.Context, customerID string) ([]entities.Vehicle, error) {
	return r.t.filter(func(v entities.Vehicle) bool { return v.CustomerID == customerID }), nil
}

func (r *VehicleRepository) Update(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	return r.t.replace(v.ID, v), nil
}

func (r *VehicleRepository) Delete(_ context.Context, id string) error {
	r.t.remove(id)
	return nil
}

type ServiceItemRepository struct {
	t *table[entities.ServiceItem]
}

var _ interfaces.IServiceItemRepository = (*ServiceItemRepository)(nil)

func NewServiceItemRepository() *ServiceItemRepository {
	return &ServiceItemRepository{t: newTable[entities.ServiceItem](nil)}
}

func (r *ServiceItemRepository) Create(_ context.Context, s entities.ServiceItem) (entities.ServiceItem, error) {
	return r.t.insert(s.ID, s)
}

func (r *ServiceItemRepository) GetByID(_ context.Context, id string) (entities.ServiceItem, error) {
	return r.t.get(id), nil
}

func (r *ServiceItemRepository) List(_ context.Context) ([]entities.ServiceItem, error) {
	return r.t.filter(nil), nil
}

func (r *ServiceItemRepository) Update(_ context.Context, s entities.ServiceItem) (entities.ServiceItem, error) {
	return r.t.replace(s.ID, s), nil
}

func (r *ServiceItemRepository) Delete(_ context.Context, id string) error {
	r.t.remove(id)
	return nil
}
