package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrRollNotFound     = fmt.Errorf("inventory roll %w", entities.ErrNotFound)
	ErrInvalidRollID    = entities.NewValidationError("roll_id", "must not be empty")
	ErrInvalidLength    = entities.NewValidationError("length", "must be a finite value greater than or equal to zero")
	ErrInvalidThreshold = entities.NewValidationError("threshold", "must be greater than or equal to zero")
	ErrRollConflict     = fmt.Errorf("inventory roll modified concurrently: %w", entities.ErrConflict)
)

// CreateRollInput carries the fields accepted when a roll is registered.
// AvailableLength starts equal to TotalLength.
type CreateRollInput struct {
	Brand             string
	Tone              string  `validate:"required"`
	Width             float64 `validate:"gt=0"`
	TotalLength       float64 `validate:"gte=0"`
	Cost              decimal.Decimal
	Supplier          string
	Lot               string
	LowStockThreshold *float64 `validate:"omitempty,gte=0"`
}

// UpdateRollInput is a partial update; nil fields are left untouched.
// ClearThreshold drops a per-roll threshold so the default applies again.
type UpdateRollInput struct {
	Brand             *string
	Tone              *string
	Width             *float64
	TotalLength       *float64
	AvailableLength   *float64
	Cost              *decimal.Decimal
	Supplier          *string
	Lot               *string
	LowStockThreshold *float64
	ClearThreshold    bool
}

// IInventoryUseCase is the inventory ledger: material rolls, consumption,
// restock and low stock detection.
//
// Every mutation is a versioned compare-and-swap retried a bounded number of
// times before ErrRollConflict is returned.

type IInventoryUseCase interface {
	Create(ctx context.Context, in CreateRollInput) (entities.InventoryRoll, error)
	GetByID(ctx context.Context, id string) (entities.InventoryRoll, error)
	List(ctx context.Context) ([]entities.InventoryRoll, error)
	Update(ctx context.Context, id string, in UpdateRollInput) (entities.InventoryRoll, error)
	Delete(ctx context.Context, id string) error
	Consume(ctx context.Context, id string, used float64) (entities.InventoryRoll, error)
	Restock(ctx context.Context, id string, additional float64, note string) (entities.InventoryRoll, error)
	GetLowStock(ctx context.Context, threshold *float64) ([]entities.InventoryRoll, error)
}

type InventoryUseCase struct {
	repo             interfaces.IInventoryRepository
	defaultThreshold float64
	maxAttempts      int
	now              func() time.Time
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

// NewInventoryUseCase builds the ledger. defaultThreshold applies to rolls
// without their own threshold; maxAttempts bounds the CAS retry loop.
func NewInventoryUseCase(repo interfaces.IInventoryRepository, defaultThreshold float64, maxAttempts int) *InventoryUseCase {
	if defaultThreshold < 0 {
		defaultThreshold = entities.DefaultLowStockThreshold
	}
	if maxAttempts < 1 {
		maxAttempts = DefaultCASAttempts
	}
	return &InventoryUseCase{
		repo:             repo,
		defaultThreshold: defaultThreshold,
		maxAttempts:      maxAttempts,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (u *InventoryUseCase) Create(ctx context.Context, in CreateRollInput) (entities.InventoryRoll, error) {
	if err := validateInput(in); err != nil {
		return entities.InventoryRoll{}, err
	}

	now := u.now()
	r := entities.InventoryRoll{
		ID:                uuid.NewString(),
		Brand:             strings.TrimSpace(in.Brand),
		Tone:              strings.TrimSpace(in.Tone),
		Width:             in.Width,
		TotalLength:       in.TotalLength,
		AvailableLength:   in.TotalLength,
		Cost:              in.Cost,
		Supplier:          strings.TrimSpace(in.Supplier),
		Lot:               strings.TrimSpace(in.Lot),
		LowStockThreshold: in.LowStockThreshold,
		Version:           1,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := r.Validate(); err != nil {
		return entities.InventoryRoll{}, err
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		log.Printf("[inventory][usecase] create failed tone=%s err=%v", r.Tone, err)
		return entities.InventoryRoll{}, err
	}
	log.Printf("[inventory][usecase] roll created roll_id=%s tone=%s total=%.2f", created.ID, created.Tone, created.TotalLength)
	return created, nil
}

func (u *InventoryUseCase) GetByID(ctx context.Context, id string) (entities.InventoryRoll, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InventoryRoll{}, ErrInvalidRollID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InventoryRoll{}, err
	}
	if r.ID == "" {
		return entities.InventoryRoll{}, ErrRollNotFound
	}
	return r, nil
}

// List returns every roll ordered by brand then tone.
func (u *InventoryUseCase) List(ctx context.Context) ([]entities.InventoryRoll, error) {
	rolls, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortByText(rolls,
		func(r entities.InventoryRoll) string { return r.Brand },
		func(r entities.InventoryRoll) string { return r.Tone },
	)
	return rolls, nil
}

func (u *InventoryUseCase) Update(ctx context.Context, id string, in UpdateRollInput) (entities.InventoryRoll, error) {
	return u.mutate(ctx, id, "update", func(r *entities.InventoryRoll) error {
		if in.Brand != nil {
			r.Brand = strings.TrimSpace(*in.Brand)
		}
		if in.Tone != nil {
			r.Tone = strings.TrimSpace(*in.Tone)
		}
		if in.Width != nil {
			r.Width = *in.Width
		}
		if in.TotalLength != nil {
			r.TotalLength = *in.TotalLength
		}
		if in.AvailableLength != nil {
			r.AvailableLength = *in.AvailableLength
		}
		if in.Cost != nil {
			r.Cost = *in.Cost
		}
		if in.Supplier != nil {
			r.Supplier = strings.TrimSpace(*in.Supplier)
		}
		if in.Lot != nil {
			r.Lot = strings.TrimSpace(*in.Lot)
		}
		if in.ClearThreshold {
			r.LowStockThreshold = nil
		} else if in.LowStockThreshold != nil {
			v := *in.LowStockThreshold
			r.LowStockThreshold = &v
		}
		return r.Validate()
	})
}

// Delete removes the roll. Orders that still reference it are not checked.
func (u *InventoryUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		log.Printf("[inventory][usecase] delete failed roll_id=%s err=%v", id, err)
		return err
	}
	log.Printf("[inventory][usecase] roll deleted roll_id=%s", id)
	return nil
}

// Consume subtracts used metres from the roll, clamping at zero.
func (u *InventoryUseCase) Consume(ctx context.Context, id string, used float64) (entities.InventoryRoll, error) {
	if !validLength(used) {
		return entities.InventoryRoll{}, ErrInvalidLength
	}
	log.Printf("[inventory][usecase] consume start roll_id=%s used=%.2f", id, used)
	return u.mutate(ctx, id, "consume", func(r *entities.InventoryRoll) error {
		if shortfall := r.Consume(used); shortfall > 0 {
			log.Printf("[inventory][usecase] consume clamped roll_id=%s shortfall=%.2f", r.ID, shortfall)
		}
		return nil
	})
}

// Restock adds metres to the roll; total becomes max(total, available).
func (u *InventoryUseCase) Restock(ctx context.Context, id string, additional float64, note string) (entities.InventoryRoll, error) {
	if !validLength(additional) {
		return entities.InventoryRoll{}, ErrInvalidLength
	}
	log.Printf("[inventory][usecase] restock start roll_id=%s additional=%.2f note=%q", id, additional, note)
	return u.mutate(ctx, id, "restock", func(r *entities.InventoryRoll) error {
		r.Restock(additional)
		return nil
	})
}

// GetLowStock lists rolls whose available length is at or below their own
// threshold, or threshold (falling back to the configured default) when the
// roll has none.
func (u *InventoryUseCase) GetLowStock(ctx context.Context, threshold *float64) ([]entities.InventoryRoll, error) {
	def := u.defaultThreshold
	if threshold != nil {
		if !validLength(*threshold) {
			return nil, ErrInvalidThreshold
		}
		def = *threshold
	}

	rolls, err := u.List(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]entities.InventoryRoll, 0, len(rolls))
	for _, r := range rolls {
		if r.IsLowStock(def) {
			low = append(low, r)
		}
	}
	return low, nil
}

// mutate performs a read-modify-write of one roll guarded by its version.
func (u *InventoryUseCase) mutate(ctx context.Context, id, op string, apply func(r *entities.InventoryRoll) error) (entities.InventoryRoll, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InventoryRoll{}, ErrInvalidRollID
	}

	updated, err := retryOnConflict(ctx, "inventory", u.maxAttempts, ErrRollConflict, func() (entities.InventoryRoll, error) {
		r, err := u.GetByID(ctx, id)
		if err != nil {
			return entities.InventoryRoll{}, err
		}
		if err := apply(&r); err != nil {
			return entities.InventoryRoll{}, err
		}
		r.UpdatedAt = u.now()
		return u.repo.Update(ctx, r)
	})
	if err != nil {
		if !errors.Is(err, entities.ErrNotFound) && !errors.Is(err, entities.ErrValidation) {
			log.Printf("[inventory][usecase] %s failed roll_id=%s err=%v", op, id, err)
		}
		return entities.InventoryRoll{}, err
	}
	if updated.ID == "" {
		return entities.InventoryRoll{}, ErrRollNotFound
	}
	log.Printf("[inventory][usecase] %s success roll_id=%s available=%.2f total=%.2f version=%d", op, updated.ID, updated.AvailableLength, updated.TotalLength, updated.Version)
	return updated, nil
}

func validLength(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
