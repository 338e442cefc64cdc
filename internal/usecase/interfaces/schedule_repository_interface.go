package interfaces

import (
	"context"
	"oficina_insufilm/internal/domain/entities"
	"time"
)

// IScheduleRepository abstracts persistence for installer schedule blocks.
// ListByPeriod matches blocks whose Start falls inside [start, end].
type IScheduleRepository interface {
	Create(ctx context.Context, b entities.ScheduleBlock) (entities.ScheduleBlock, error)
	GetByID(ctx context.Context, id string) (entities.ScheduleBlock, error)
	List(ctx context.Context) ([]entities.ScheduleBlock, error)
	ListByPeriod(ctx context.Context, start, end time.Time) ([]entities.ScheduleBlock, error)
	ListByInstaller(ctx context.Context, installerID string) ([]entities.ScheduleBlock, error)
	Update(ctx context.Context, b entities.ScheduleBlock) (entities.ScheduleBlock, error)
	Delete(ctx context.Context, id string) error
}

// ISettingsRepository stores the single settings document. Get reports
// found=false when nothing was saved yet.
type ISettingsRepository interface {
	Get(ctx context.Context) (settings entities.AppSettings, found bool, err error)
	Put(ctx context.Context, s entities.AppSettings) (entities.AppSettings, error)
}
