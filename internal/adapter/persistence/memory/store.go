// Package memory keeps every aggregate in process memory. It backs
// STORAGE_DRIVER=memory and the use case scenario tests.
package memory

import (
	"fmt"
	"oficina_insufilm/internal/domain/entities"
	"sync"
)

// table is one entity kind keyed by id. Rows are stored and returned by value;
// clone copies the parts of T that would otherwise be shared.
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[string]T
	clone func(T) T
}

func newTable[T any](clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T]{rows: make(map[string]T), clone: clone}
}

func (t *table[T]) insert(id string, v T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	if _, exists := t.rows[id]; exists {
		return zero, fmt.Errorf("id %s already exists: %w", id, entities.ErrConflict)
	}
	t.rows[id] = t.clone(v)
	return t.clone(v), nil
}

// get returns the zero value when id is unknown.
func (t *table[T]) get(id string) T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.clone(t.rows[id])
}

func (t *table[T]) filter(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.rows))
	for _, v := range t.rows {
		if keep == nil || keep(v) {
			out = append(out, t.clone(v))
		}
	}
	return out
}

// replace overwrites an existing row. It returns the zero value when id is
// unknown.
func (t *table[T]) replace(id string, v T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	if _, exists := t.rows[id]; !exists {
		return zero
	}
	t.rows[id] = t.clone(v)
	return t.clone(v)
}

// swap is replace guarded by a version check: current(stored) must equal
// expected, and next is what gets stored.
func (t *table[T]) swap(id string, expected int64, version func(T) int64, next T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	stored, exists := t.rows[id]
	if !exists {
		return zero, nil
	}
	if version(stored) != expected {
		return zero, entities.ErrVersionConflict
	}
	t.rows[id] = t.clone(next)
	return t.clone(next), nil
}

func (t *table[T]) remove(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.rows, id)
}

// Store groups one repository per entity kind.
type Store struct {
	Customers *CustomerRepository
	Vehicles  *VehicleRepository
	Services  *ServiceItemRepository
	Inventory *InventoryRepository
	Orders    *WorkOrderRepository
	Cash      *CashEntryRepository
	Schedule  *ScheduleRepository
	Settings  *SettingsRepository
	Charges   *PaymentChargeRepository
}

func New() *Store {
	return &Store{
		Customers: NewCustomerRepository(),
		Vehicles:  NewVehicleRepository(),
		Services:  NewServiceItemRepository(),
		Inventory: NewInventoryRepository(),
		Orders:    NewWorkOrderRepository(),
		Cash:      NewCashEntryRepository(),
		Schedule:  NewScheduleRepository(),
		Settings:  NewSettingsRepository(),
		Charges:   NewPaymentChargeRepository(),
	}
}
