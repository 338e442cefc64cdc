package interfaces

import (
	"context"
	"oficina_insufilm/internal/domain/entities"
)

// IInventoryRepository abstracts persistence for material rolls.
//
// Update is a compare-and-swap: it succeeds only when the stored version
// equals r.Version, stores r.Version+1 and returns the stored roll. A stale
// version yields entities.ErrVersionConflict.
//
// Reads return a zero value (ID == "") when the roll does not exist.
type IInventoryRepository interface {
	Create(ctx context.Context, r entities.InventoryRoll) (entities.InventoryRoll, error)
	GetByID(ctx context.Context, id string) (entities.InventoryRoll, error)
	List(ctx context.Context) ([]entities.InventoryRoll, error)
	Update(ctx context.Context, r entities.InventoryRoll) (entities.InventoryRoll, error)
	Delete(ctx context.Context, id string) error
}
