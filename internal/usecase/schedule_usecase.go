package usecase

import (
	"context"
	"fmt"
	"log"
	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrScheduleBlockNotFound = fmt.Errorf("schedule block %w", entities.ErrNotFound)
	ErrInvalidScheduleID     = entities.NewValidationError("schedule_id", "must not be empty")
	ErrInvalidInstallerID    = entities.NewValidationError("installer_id", "must not be empty")
)

type ScheduleInput struct {
	Title       string    `validate:"required"`
	Start       time.Time `validate:"required"`
	End         time.Time `validate:"required"`
	InstallerID string
	OrderID     string
	Notes       string
}

type IScheduleUseCase interface {
	Create(ctx context.Context, in ScheduleInput) (entities.ScheduleBlock, error)
	GetByID(ctx context.Context, id string) (entities.ScheduleBlock, error)
	List(ctx context.Context) ([]entities.ScheduleBlock, error)
	ListByPeriod(ctx context.Context, start, end time.Time) ([]entities.ScheduleBlock, error)
	ListByInstaller(ctx context.Context, installerID string) ([]entities.ScheduleBlock, error)
	Update(ctx context.Context, id string, in ScheduleInput) (entities.ScheduleBlock, error)
	Delete(ctx context.Context, id string) error
}

type ScheduleUseCase struct {
	repo interfaces.IScheduleRepository
}

var _ IScheduleUseCase = (*ScheduleUseCase)(nil)

func NewScheduleUseCase(repo interfaces.IScheduleRepository) *ScheduleUseCase {
	return &ScheduleUseCase{repo: repo}
}

func (u *ScheduleUseCase) Create(ctx context.Context, in ScheduleInput) (entities.ScheduleBlock, error) {
	if err := validateInput(in); err != nil {
		return entities.ScheduleBlock{}, err
	}
	b := entities.ScheduleBlock{ID: uuid.NewString()}
	applyScheduleInput(&b, in)
	if err := b.Validate(); err != nil {
		return entities.ScheduleBlock{}, err
	}
	created, err := u.repo.Create(ctx, b)
	if err != nil {
		log.Printf("[schedule][usecase] create failed err=%v", err)
		return entities.ScheduleBlock{}, err
	}
	log.Printf("[schedule][usecase] block created block_id=%s installer_id=%s start=%s", created.ID, created.InstallerID, created.Start.Format(time.RFC3339))
	return created, nil
}

func (u *ScheduleUseCase) GetByID(ctx context.Context, id string) (entities.ScheduleBlock, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ScheduleBlock{}, ErrInvalidScheduleID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ScheduleBlock{}, err
	}
	if b.ID == "" {
		return entities.ScheduleBlock{}, ErrScheduleBlockNotFound
	}
	return b, nil
}

func (u *ScheduleUseCase) List(ctx context.Context) ([]entities.ScheduleBlock, error) {
	blocks, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortBlocksByStart(blocks)
	return blocks, nil
}

// ListByPeriod returns blocks starting within [start, end].
func (u *ScheduleUseCase) ListByPeriod(ctx context.Context, start, end time.Time) ([]entities.ScheduleBlock, error) {
	if end.Before(start) {
		return nil, ErrInvalidPeriod
	}
	blocks, err := u.repo.ListByPeriod(ctx, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}
	sortBlocksByStart(blocks)
	return blocks, nil
}

func (u *ScheduleUseCase) ListByInstaller(ctx context.Context, installerID string) ([]entities.ScheduleBlock, error) {
	installerID = strings.TrimSpace(installerID)
	if installerID == "" {
		return nil, ErrInvalidInstallerID
	}
	blocks, err := u.repo.ListByInstaller(ctx, installerID)
	if err != nil {
		return nil, err
	}
	sortBlocksByStart(blocks)
	return blocks, nil
}

func (u *ScheduleUseCase) Update(ctx context.Context, id string, in ScheduleInput) (entities.ScheduleBlock, error) {
	if err := validateInput(in); err != nil {
		return entities.ScheduleBlock{}, err
	}
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ScheduleBlock{}, err
	}
	applyScheduleInput(&b, in)
	if err := b.Validate(); err != nil {
		return entities.ScheduleBlock{}, err
	}
	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		return entities.ScheduleBlock{}, err
	}
	if updated.ID == "" {
		return entities.ScheduleBlock{}, ErrScheduleBlockNotFound
	}
	return updated, nil
}

func (u *ScheduleUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		log.Printf("[schedule][usecase] delete failed block_id=%s err=%v", id, err)
		return err
	}
	return nil
}

func applyScheduleInput(b *entities.ScheduleBlock, in ScheduleInput) {
	b.Title = strings.TrimSpace(in.Title)
	b.Start = in.Start.UTC()
	b.End = in.End.UTC()
	b.InstallerID = strings.TrimSpace(in.InstallerID)
	b.OrderID = strings.TrimSpace(in.OrderID)
	b.Notes = strings.TrimSpace(in.Notes)
}

func sortBlocksByStart(blocks []entities.ScheduleBlock) {
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Start.Before(blocks[j].Start)
	})
}
