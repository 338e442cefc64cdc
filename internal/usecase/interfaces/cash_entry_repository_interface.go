package interfaces

import (
	"context"
	"oficina_insufilm/internal/domain/entities"
	"time"
)

// ICashEntryRepository abstracts persistence for cash ledger entries.
//
// ListByPeriod is inclusive on both ends and filters on the entry's At.
type ICashEntryRepository interface {
	Create(ctx context.Context, e entities.CashEntry) (entities.CashEntry, error)
	GetByID(ctx context.Context, id string) (entities.CashEntry, error)
	List(ctx context.Context) ([]entities.CashEntry, error)
	ListByPeriod(ctx context.Context, start, end time.Time) ([]entities.CashEntry, error)
	ListByType(ctx context.Context, t entities.CashEntryType) ([]entities.CashEntry, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.CashEntry, error)
	Update(ctx context.Context, e entities.CashEntry) (entities.CashEntry, error)
	Delete(ctx context.Context, id string) error
}
