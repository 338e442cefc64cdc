package usecase

import (
	"context"
	"fmt"
	"log"
	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrVehicleNotFound  = fmt.Errorf("vehicle %w", entities.ErrNotFound)
	ErrInvalidVehicleID = entities.NewValidationError("vehicle_id", "must not be empty")
)

type VehicleInput struct {
	CustomerID string `validate:"required"`
	Plate      string `validate:"required"`
	Brand      string `validate:"required"`
	Model      string `validate:"required"`
	Year       int    `validate:"gte=0"`
	Color      string
}

type IVehicleUseCase interface {
	Create(ctx context.Context, in VehicleInput) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	List(ctx context.Context) ([]entities.Vehicle, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.Vehicle, error)
	Update(ctx context.Context, id string, in VehicleInput) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

type VehicleUseCase struct {
	repo      interfaces.IVehicleRepository
	customers interfaces.ICustomerRepository
	now       func() time.Time
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository, customers interfaces.ICustomerRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, customers: customers, now: func() time.Time { return time.Now().UTC() }}
}

func (u *VehicleUseCase) Create(ctx context.Context, in VehicleInput) (entities.Vehicle, error) {
	if err := validateInput(in); err != nil {
		return entities.Vehicle{}, err
	}
	if err := u.ensureCustomer(ctx, in.CustomerID); err != nil {
		return entities.Vehicle{}, err
	}
	now := u.now()
	v := entities.Vehicle{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyVehicleInput(&v, in)
	if err := v.Validate(); err != nil {
		return entities.Vehicle{}, err
	}
	created, err := u.repo.Create(ctx, v)
	if err != nil {
		log.Printf("[vehicle][usecase] create failed customer_id=%s err=%v", v.CustomerID, err)
		return entities.Vehicle{}, err
	}
	log.Printf("[vehicle][usecase] vehicle created vehicle_id=%s customer_id=%s plate=%s", created.ID, created.CustomerID, created.Plate)
	return created, nil
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}
	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

// List returns vehicles ordered by brand then model.
func (u *VehicleUseCase) List(ctx context.Context) ([]entities.Vehicle, error) {
	vehicles, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortVehicles(vehicles)
	return vehicles, nil
}

func (u *VehicleUseCase) ListByCustomer(ctx context.Context, customerID string) ([]entities.Vehicle, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	vehicles, err := u.repo.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	sortVehicles(vehicles)
	return vehicles, nil
}

func (u *VehicleUseCase) Update(ctx context.Context, id string, in VehicleInput) (entities.Vehicle, error) {
	if err := validateInput(in); err != nil {
		return entities.Vehicle{}, err
	}
	v, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if strings.TrimSpace(in.CustomerID) != v.CustomerID {
		if err := u.ensureCustomer(ctx, in.CustomerID); err != nil {
			return entities.Vehicle{}, err
		}
	}
	applyVehicleInput(&v, in)
	v.UpdatedAt = u.now()
	if err := v.Validate(); err != nil {
		return entities.Vehicle{}, err
	}
	updated, err := u.repo.Update(ctx, v)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if updated.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return updated, nil
}

func (u *VehicleUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		log.Printf("[vehicle][usecase] delete failed vehicle_id=%s err=%v", id, err)
		return err
	}
	return nil
}

func (u *VehicleUseCase) ensureCustomer(ctx context.Context, customerID string) error {
	c, err := u.customers.GetByID(ctx, strings.TrimSpace(customerID))
	if err != nil {
		return err
	}
	if c.ID == "" {
		return ErrCustomerNotFound
	}
	return nil
}

func applyVehicleInput(v *entities.Vehicle, in VehicleInput) {
	v.CustomerID = strings.TrimSpace(in.CustomerID)
	v.Plate = strings.ToUpper(strings.TrimSpace(in.Plate))
	v.Brand = strings.TrimSpace(in.Brand)
	v.Model = strings.TrimSpace(in.Model)
	v.Year = in.Year
	v.Color = strings.TrimSpace(in.Color)
}

func sortVehicles(vehicles []entities.Vehicle) {
	sortByText(vehicles,
		func(v entities.Vehicle) string { return v.Brand },
		func(v entities.Vehicle) string { return v.Model },
	)
}
