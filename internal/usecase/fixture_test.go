package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"oficina_insufilm/internal/adapter/persistence/memory"
	"oficina_insufilm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// stepClock returns a strictly increasing time on every call.
type stepClock struct {
	mu sync.Mutex
	t  time.Time
}

func newStepClock() *stepClock {
	return &stepClock{t: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

type shopFixture struct {
	store     *memory.Store
	clock     *stepClock
	inventory *InventoryUseCase
	cash      *CashUseCase
	settings  *SettingsUseCase
	orders    *WorkOrderUseCase

	customer entities.Customer
	vehicle  entities.Vehicle
	service  entities.ServiceItem
}

func newShopFixture(t *testing.T, configure ...func(*WorkOrderDeps)) *shopFixture {
	t.Helper()
	ctx := context.Background()
	store := memory.New()
	clock := newStepClock()

	inventory := NewInventoryUseCase(store.Inventory, entities.DefaultLowStockThreshold, 5)
	inventory.now = clock.Now
	cash := NewCashUseCase(store.Cash)
	cash.now = clock.Now
	settings := NewSettingsUseCase(store.Settings)

	deps := WorkOrderDeps{
		Orders:    store.Orders,
		Customers: store.Customers,
		Vehicles:  store.Vehicles,
		Services:  store.Services,
		Charges:   store.Charges,
		Inventory: inventory,
		Cash:      cash,
		Settings:  settings,
	}
	for _, c := range configure {
		c(&deps)
	}
	orders := NewWorkOrderUseCase(deps)
	orders.now = clock.Now

	customer, err := store.Customers.Create(ctx, entities.Customer{ID: "cust-1", Name: "Ana"})
	if err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	vehicle, err := store.Vehicles.Create(ctx, entities.Vehicle{ID: "veh-1", CustomerID: customer.ID, Plate: "ABC1D23", Brand: "Fiat", Model: "Uno"})
	if err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
	service, err := store.Services.Create(ctx, entities.ServiceItem{ID: "svc-1", Name: "Insulfilm completo", BasePrice: decimal.NewFromInt(150), Active: true})
	if err != nil {
		t.Fatalf("seed service: %v", err)
	}

	return &shopFixture{
		store:     store,
		clock:     clock,
		inventory: inventory,
		cash:      cash,
		settings:  settings,
		orders:    orders,
		customer:  customer,
		vehicle:   vehicle,
		service:   service,
	}
}

// newOrder creates the reference order: 2 x 150 with a discount of 50.
func (f *shopFixture) newOrder(t *testing.T) entities.WorkOrder {
	t.Helper()
	o, err := f.orders.Create(context.Background(), CreateOrderInput{
		CustomerID: f.customer.ID,
		VehicleID:  f.vehicle.ID,
		Items:      []entities.LineItem{{ServiceID: f.service.ID, Quantity: 2, UnitPrice: decimal.NewFromInt(150)}},
		Discount:   decimal.NewFromInt(50),
		Actor:      "user-1",
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	return o
}

func (f *shopFixture) newRoll(t *testing.T, total float64) entities.InventoryRoll {
	t.Helper()
	r, err := f.inventory.Create(context.Background(), CreateRollInput{Brand: "3M", Tone: "G20", Width: 1520, TotalLength: total})
	if err != nil {
		t.Fatalf("create roll: %v", err)
	}
	return r
}

func ptr[T any](v T) *T {
	return &v
}
