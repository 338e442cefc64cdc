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
	"github.com/shopspring/decimal"
)

var (
	ErrServiceNotFound  = fmt.Errorf("service %w", entities.ErrNotFound)
	ErrInvalidServiceID = entities.NewValidationError("service_id", "must not be empty")
)

// ServiceInput describes a catalog entry. A nil Active means true.
type ServiceInput struct {
	Name        string `validate:"required"`
	BasePrice   decimal.Decimal
	Description string
	Active      *bool
}

type IServiceCatalogUseCase interface {
	Create(ctx context.Context, in ServiceInput) (entities.ServiceItem, error)
	GetByID(ctx context.Context, id string) (entities.ServiceItem, error)
	List(ctx context.Context) ([]entities.ServiceItem, error)
	ListActive(ctx context.Context) ([]entities.ServiceItem, error)
	Update(ctx context.Context, id string, in ServiceInput) (entities.ServiceItem, error)
	Delete(ctx context.Context, id string) error
}

type ServiceCatalogUseCase struct {
	repo interfaces.IServiceItemRepository
	now  func() time.Time
}

var _ IServiceCatalogUseCase = (*ServiceCatalogUseCase)(nil)

func NewServiceCatalogUseCase(repo interfaces.IServiceItemRepository) *ServiceCatalogUseCase {
	return &ServiceCatalogUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *ServiceCatalogUseCase) Create(ctx context.Context, in ServiceInput) (entities.ServiceItem, error) {
	if err := validateInput(in); err != nil {
		return entities.ServiceItem{}, err
	}
	s := entities.ServiceItem{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		BasePrice:   in.BasePrice,
		Description: strings.TrimSpace(in.Description),
		Active:      in.Active == nil || *in.Active,
		CreatedAt:   u.now(),
	}
	if err := s.Validate(); err != nil {
		return entities.ServiceItem{}, err
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		log.Printf("[service][usecase] create failed name=%q err=%v", s.Name, err)
		return entities.ServiceItem{}, err
	}
	log.Printf("[service][usecase] service created service_id=%s base_price=%s", created.ID, created.BasePrice.StringFixed(2))
	return created, nil
}

func (u *ServiceCatalogUseCase) GetByID(ctx context.Context, id string) (entities.ServiceItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceItem{}, ErrInvalidServiceID
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceItem{}, err
	}
	if s.ID == "" {
		return entities.ServiceItem{}, ErrServiceNotFound
	}
	return s, nil
}

// List returns the whole catalog ordered by name.
func (u *ServiceCatalogUseCase) List(ctx context.Context) ([]entities.ServiceItem, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortByText(items, func(s entities.ServiceItem) string { return s.Name })
	return items, nil
}

func (u *ServiceCatalogUseCase) ListActive(ctx context.Context) ([]entities.ServiceItem, error) {
	items, err := u.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]entities.ServiceItem, 0, len(items))
	for _, s := range items {
		if s.Active {
			active = append(active, s)
		}
	}
	return active, nil
}

func (u *ServiceCatalogUseCase) Update(ctx context.Context, id string, in ServiceInput) (entities.ServiceItem, error) {
	if err := validateInput(in); err != nil {
		return entities.ServiceItem{}, err
	}
	s, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceItem{}, err
	}
	s.Name = strings.TrimSpace(in.Name)
	s.BasePrice = in.BasePrice
	s.Description = strings.TrimSpace(in.Description)
	if in.Active != nil {
		s.Active = *in.Active
	}
	if err := s.Validate(); err != nil {
		return entities.ServiceItem{}, err
	}
	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		return entities.ServiceItem{}, err
	}
	if updated.ID == "" {
		return entities.ServiceItem{}, ErrServiceNotFound
	}
	return updated, nil
}

// Delete removes the catalog entry. Line items already priced on orders keep
// their unit price.
func (u *ServiceCatalogUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		log.Printf("[service][usecase] delete failed service_id=%s err=%v", id, err)
		return err
	}
	return nil
}
