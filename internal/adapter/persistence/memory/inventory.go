package memory

import (
	"context"
	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase/interfaces"
)

type InventoryRepository struct {
	t *table[entities.InventoryRoll]
}

var _ interfaces.IInventoryRepository = (*InventoryRepository)(nil)

func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{t: newTable(cloneRoll)}
}

func (r *InventoryRepository) Create(_ context.Context, roll entities.InventoryRoll) (entities.InventoryRoll, error) {
	return r.t.insert(roll.ID, roll)
}

func (r *InventoryRepository) GetByID(_ context.Context, id string) (entities.InventoryRoll, error) {
	return r.t.get(id), nil
}

func (r *InventoryRepository) List(_ context.Context) ([]entities.InventoryRoll, error) {
	return r.t.filter(nil), nil
}

// Update stores roll with its version bumped when the stored version still
// equals roll.Version.
func (r *InventoryRepository) Update(_ context.Context, roll entities.InventoryRoll) (entities.InventoryRoll, error) {
	expected := roll.Version
	roll.Version++
	return r.t.swap(roll.ID, expected, func(v entities.InventoryRoll) int64 { return v.Version }, roll)
}

func (r *InventoryRepository) Delete(_ context.Context, id string) error {
	r.t.remove(id)
	return nil
}

func cloneRoll(r entities.InventoryRoll) entities.InventoryRoll {
	if r.LowStockThreshold != nil {
		v := *r.LowStockThreshold
		r.LowStockThreshold = &v
	}
	return r
}
