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
	ErrCustomerNotFound  = fmt.Errorf("customer %w", entities.ErrNotFound)
	ErrInvalidCustomerID = entities.NewValidationError("customer_id", "must not be empty")
)

type CustomerInput struct {
	Name  string `validate:"required"`
	Phone string
	Email string `validate:"omitempty,email"`
	Notes string
}

type ICustomerUseCase interface {
	Create(ctx context.Context, in CustomerInput) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Search(ctx context.Context, term string) ([]entities.Customer, error)
	Update(ctx context.Context, id string, in CustomerInput) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
	now  func() time.Time
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *CustomerUseCase) Create(ctx context.Context, in CustomerInput) (entities.Customer, error) {
	if err := validateInput(in); err != nil {
		return entities.Customer{}, err
	}
	now := u.now()
	c := entities.Customer{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.Validate(); err != nil {
		return entities.Customer{}, err
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		log.Printf("[customer][usecase] create failed err=%v", err)
		return entities.Customer{}, err
	}
	log.Printf("[customer][usecase] customer created customer_id=%s", created.ID)
	return created, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

// List returns customers ordered by name.
func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	customers, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortByText(customers, func(c entities.Customer) string { return c.Name })
	return customers, nil
}

// Search filters by a case-insensitive match on name, email or phone.
func (u *CustomerUseCase) Search(ctx context.Context, term string) ([]entities.Customer, error) {
	customers, err := u.List(ctx)
	if err != nil {
		return nil, err
	}
	out := customers[:0]
	for _, c := range customers {
		if c.Matches(term) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, in CustomerInput) (entities.Customer, error) {
	if err := validateInput(in); err != nil {
		return entities.Customer{}, err
	}
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	c.Name = strings.TrimSpace(in.Name)
	c.Phone = strings.TrimSpace(in.Phone)
	c.Email = strings.TrimSpace(in.Email)
	c.Notes = strings.TrimSpace(in.Notes)
	c.UpdatedAt = u.now()
	if err := c.Validate(); err != nil {
		return entities.Customer{}, err
	}
	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}
	if updated.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return updated, nil
}

// Delete removes the customer. Vehicles and orders keep their weak reference.
func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		log.Printf("[customer][usecase] delete failed customer_id=%s err=%v", id, err)
		return err
	}
	return nil
}
