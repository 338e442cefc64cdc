package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_insufilm/internal/domain/entities"
	mock_interfaces "oficina_insufilm/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func hasIssue(issues []ReconcileIssue, want ReconcileIssue) bool {
	for _, i := range issues {
		if i == want {
			return true
		}
	}
	return false
}

func TestWorkOrderUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("prices the order", func(t *testing.T) {
		f := newShopFixture(t)
		o := f.newOrder(t)

		if !o.Total.Equal(decimal.NewFromInt(250)) {
			t.Fatalf("expected total 250, got %s", o.Total)
		}
		if o.Status != entities.OrderStatusAberta || o.Version != 1 {
			t.Fatalf("unexpected order: %+v", o)
		}
		if len(o.History) != 1 || o.History[0].By != "user-1" || o.History[0].Status != entities.OrderStatusAberta {
			t.Fatalf("expected opening event, got %+v", o.History)
		}
		if o.PaymentReceived {
			t.Fatalf("new order must not be paid")
		}
	})

	t.Run("discount above subtotal floors at zero", func(t *testing.T) {
		f := newShopFixture(t)
		o, err := f.orders.Create(ctx, CreateOrderInput{
			CustomerID: f.customer.ID,
			VehicleID:  f.vehicle.ID,
			Items:      []entities.LineItem{{ServiceID: f.service.ID, Quantity: 1, UnitPrice: decimal.NewFromInt(100)}},
			Discount:   decimal.NewFromInt(150),
			Actor:      "user-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !o.Total.IsZero() {
			t.Fatalf("expected total 0, got %s", o.Total)
		}
	})

	t.Run("rejects empty items", func(t *testing.T) {
		f := newShopFixture(t)
		_, err := f.orders.Create(ctx, CreateOrderInput{CustomerID: f.customer.ID, VehicleID: f.vehicle.ID, Actor: "user-1"})
		var verr entities.ValidationError
		if !errors.As(err, &verr) || verr.Field != "items" {
			t.Fatalf("expected items validation error, got %v", err)
		}
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		f := newShopFixture(t)
		_, err := f.orders.Create(ctx, CreateOrderInput{
			CustomerID: f.customer.ID,
			VehicleID:  f.vehicle.ID,
			Items:      []entities.LineItem{{ServiceID: f.service.ID, Quantity: 0, UnitPrice: decimal.NewFromInt(100)}},
			Actor:      "user-1",
		})
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("rejects missing actor", func(t *testing.T) {
		f := newShopFixture(t)
		_, err := f.orders.Create(ctx, CreateOrderInput{
			CustomerID: f.customer.ID,
			VehicleID:  f.vehicle.ID,
			Items:      []entities.LineItem{{ServiceID: f.service.ID, Quantity: 1}},
		})
		var verr entities.ValidationError
		if !errors.As(err, &verr) || verr.Field != "actor" {
			t.Fatalf("expected actor validation error, got %v", err)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		f := newShopFixture(t)
		_, err := f.orders.Create(ctx, CreateOrderInput{
			CustomerID: f.customer.ID,
			VehicleID:  f.vehicle.ID,
			Items:      []entities.LineItem{{ServiceID: "svc-x", Quantity: 1, UnitPrice: decimal.NewFromInt(10)}},
			Actor:      "user-1",
		})
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("unknown customer", func(t *testing.T) {
		f := newShopFixture(t)
		_, err := f.orders.Create(ctx, CreateOrderInput{
			CustomerID: "cust-x",
			VehicleID:  f.vehicle.ID,
			Items:      []entities.LineItem{{ServiceID: f.service.ID, Quantity: 1}},
			Actor:      "user-1",
		})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("vehicle of another customer", func(t *testing.T) {
		f := newShopFixture(t)
		other, err := f.store.Customers.Create(ctx, entities.Customer{ID: "cust-2", Name: "Bruno"})
		if err != nil {
			t.Fatalf("seed customer: %v", err)
		}
		_, err = f.orders.Create(ctx, CreateOrderInput{
			CustomerID: other.ID,
			VehicleID:  f.vehicle.ID,
			Items:      []entities.LineItem{{ServiceID: f.service.ID, Quantity: 1}},
			Actor:      "user-1",
		})
		if !errors.Is(err, ErrVehicleNotOwned) {
			t.Fatalf("expected ErrVehicleNotOwned, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("items and discount reprice", func(t *testing.T) {
		f := newShopFixture(t)
		o := f.newOrder(t)

		updated, err := f.orders.Update(ctx, o.ID, OrderPatch{
			Items:    []entities.LineItem{{ServiceID: f.service.ID, Quantity: 3, UnitPrice: decimal.NewFromInt(150)}},
			Discount: ptr(decimal.NewFromInt(0)),
		}, "user-2", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.Total.Equal(decimal.NewFromInt(450)) {
			t.Fatalf("expected total 450, got %s", updated.Total)
		}
		if updated.UpdatedBy != "user-2" || updated.Version != o.Version+1 {
			t.Fatalf("unexpected order: %+v", updated)
		}
		if len(updated.History) != 1 {
			t.Fatalf("no event expected without status change or note, got %+v", updated.History)
		}
	})

	t.Run("note appends an event", func(t *testing.T) {
		f := newShopFixture(t)
		o := f.newOrder(t)

		updated, err := f.orders.Update(ctx, o.ID, OrderPatch{Tone: ptr("G5")}, "user-1", "cliente pediu tom mais escuro")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		last := updated.History[len(updated.History)-1]
		if last.Note != "cliente pediu tom mais escuro" || last.Status != "" {
			t.Fatalf("unexpected event: %+v", last)
		}
		if updated.Tone != "G5" || !updated.Total.Equal(o.Total) {
			t.Fatalf("unexpected order: %+v", updated)
		}
	})

	t.Run("concluida stamps finished at", func(t *testing.T) {
		f := newShopFixture(t)
		o := f.newOrder(t)

		updated, err := f.orders.UpdateStatus(ctx, o.ID, entities.OrderStatusConcluida, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.FinishedAt == nil {
			t.Fatalf("expected finished at to be set")
		}
		last := updated.History[len(updated.History)-1]
		if last.Status != entities.OrderStatusConcluida || last.By != "user-1" {
			t.Fatalf("unexpected event: %+v", last)
		}
	})

	t.Run("strict policy rejects skipping steps", func(t *testing.T) {
		f := newShopFixture(t, func(d *WorkOrderDeps) { d.Policy = entities.StrictTransitions{} })
		o := f.newOrder(t)

		_, err := f.orders.UpdateStatus(ctx, o.ID, entities.OrderStatusConcluida, "user-1")
		if !errors.Is(err, entities.ErrTransitionNotAllowed) {
			t.Fatalf("expected ErrTransitionNotAllowed, got %v", err)
		}
		if _, err := f.orders.UpdateStatus(ctx, o.ID, entities.OrderStatusEmExecucao, "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid status and actor", func(t *testing.T) {
		f := newShopFixture(t)
		o := f.newOrder(t)

		if _, err := f.orders.UpdateStatus(ctx, o.ID, "finalizada", "user-1"); !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
		if _, err := f.orders.UpdateStatus(ctx, o.ID, entities.OrderStatusEmExecucao, " "); !errors.Is(err, ErrInvalidActor) {
			t.Fatalf("expected ErrInvalidActor, got %v", err)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		f := newShopFixture(t)
		if _, err := f.orders.UpdateStatus(ctx, "order-x", entities.OrderStatusEmExecucao, "user-1"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_UpdateGivesUpOnPersistentConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
	uc := NewWorkOrderUseCase(WorkOrderDeps{Orders: repo, MaxAttempts: 3})

	stored := entities.WorkOrder{ID: "order-1", Status: entities.OrderStatusAberta, Version: 7}
	repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(stored, nil).Times(3)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.WorkOrder{}, entities.ErrVersionConflict).Times(3)

	_, err := uc.UpdateStatus(context.Background(), "order-1", entities.OrderStatusEmExecucao, "user-1")
	if !errors.Is(err, ErrOrderConflict) || !errors.Is(err, entities.ErrConflict) {
		t.Fatalf("expected ErrOrderConflict, got %v", err)
	}
}

func TestWorkOrderUseCase_RecordPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("zero amount books the total", func(t *testing.T) {
		f := newShopFixture(t)
		o := f.newOrder(t)

		res, err := f.orders.RecordPayment(ctx, o.ID, decimal.Zero, entities.PaymentMethodPix, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Entry.Amount.Equal(decimal.NewFromInt(250)) || res.Entry.RefOrderID != o.ID || res.Entry.Type != entities.CashEntryReceita {
			t.Fatalf("unexpected entry: %+v", res.Entry)
		}
		if !res.Order.PaymentReceived || res.Order.PaymentMethod != entities.PaymentMethodPix || res.Order.PaymentReceivedAt == nil {
			t.Fatalf("unexpected order: %+v", res.Order)
		}

		rec, err := f.orders.Reconcile(ctx, o.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rec.Consistent || !rec.Outstanding.IsZero() || !rec.AmountReceived.Equal(decimal.NewFromInt(250)) {
			t.Fatalf("unexpected reconciliation: %+v", rec)
		}
	})

	t.Run("method disabled in settings", func(t *testing.T) {
		f := newShopFixture(t)
		o := f.newOrder(t)

		_, err := f.orders.RecordPayment(ctx, o.ID, decimal.Zero, entities.PaymentMethodOutro, "user-1")
		if !errors.Is(err, ErrPaymentMethodDisabled) {
			t.Fatalf("expected ErrPaymentMethodDisabled, got %v", err)
		}

		s := entities.DefaultSettings()
		s.Payment.Other = true
		if _, err := f.settings.Update(ctx, s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := f.orders.RecordPayment(ctx, o.ID, decimal.Zero, entities.PaymentMethodOutro, "user-1"); err != nil {
			t.Fatalf("unexpected error once enabled: %v", err)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		f := newShopFixture(t)
		o := f.newOrder(t)

		if _, err := f.orders.RecordPayment(ctx, o.ID, decimal.Zero, "boleto", "user-1"); !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
		if _, err := f.orders.RecordPayment(ctx, o.ID, decimal.NewFromInt(-1), entities.PaymentMethodPix, "user-1"); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
		if _, err := f.orders.RecordPayment(ctx, o.ID, decimal.Zero, entities.PaymentMethodPix, ""); !errors.Is(err, ErrInvalidActor) {
			t.Fatalf("expected ErrInvalidActor, got %v", err)
		}
	})

	t.Run("cancelled order", func(t *testing.T) {
		f := newShopFixture(t)
		o := f.newOrder(t)
		if _, err := f.orders.UpdateStatus(ctx, o.ID, entities.OrderStatusCancelada, "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := f.orders.RecordPayment(ctx, o.ID, decimal.Zero, entities.PaymentMethodPix, "user-1")
		if !errors.Is(err, ErrOrderCancelled) {
			t.Fatalf("expected ErrOrderCancelled, got %v", err)
		}
		entries, _ := f.cash.ListByOrder(ctx, o.ID)
		if len(entries) != 0 {
			t.Fatalf("no cash entry expected, got %d", len(entries))
		}
	})

	t.Run("second payment is flagged by reconcile", func(t *testing.T) {
		f := newShopFixture(t)
		o := f.newOrder(t)

		if _, err := f.orders.RecordPayment(ctx, o.ID, decimal.Zero, entities.PaymentMethodPix, "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := f.orders.RecordPayment(ctx, o.ID, decimal.NewFromInt(100), entities.PaymentMethodDinheiro, "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rec, err := f.orders.Reconcile(ctx, o.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Consistent || len(rec.Payments) != 2 {
			t.Fatalf("unexpected reconciliation: %+v", rec)
		}
		if !hasIssue(rec.Issues, IssueMultiplePayments) || !hasIssue(rec.Issues, IssueOverpaid) {
			t.Fatalf("expected multiple_payments and overpaid, got %v", rec.Issues)
		}
		if !rec.Outstanding.Equal(decimal.NewFromInt(-100)) {
			t.Fatalf("expected outstanding -100, got %s", rec.Outstanding)
		}
	})
}

func TestWorkOrderUseCase_ConsumeMaterial(t *testing.T) {
	ctx := context.Background()

	t.Run("same roll accumulates", func(t *testing.T) {
		f := newShopFixture(t)
		o := f.newOrder(t)
		roll := f.newRoll(t, 100)

		if _, err := f.orders.ConsumeMaterial(ctx, o.ID, roll.ID, 3, "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		res, err := f.orders.ConsumeMaterial(ctx, o.ID, roll.ID, 2, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.RollID != roll.ID || res.Order.MetersUsed != 5 || res.Order.Tone != "G20" {
			t.Fatalf("unexpected order: %+v", res.Order)
		}
		if res.Roll.AvailableLength != 95 {
			t.Fatalf("expected 95 available, got %v", res.Roll.AvailableLength)
		}
	})

	t.Run("different roll replaces the link", func(t *testing.T) {
		f := newShopFixture(t)
		o := f.newOrder(t)
		first := f.newRoll(t, 50)
		second := f.newRoll(t, 50)

		if _, err := f.orders.ConsumeMaterial(ctx, o.ID, first.ID, 4, "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		res, err := f.orders.ConsumeMaterial(ctx, o.ID, second.ID, 1.5, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.RollID != second.ID || res.Order.MetersUsed != 1.5 {
			t.Fatalf("unexpected order: %+v", res.Order)
		}
		got, _ := f.inventory.GetByID(ctx, first.ID)
		if got.AvailableLength != 46 {
			t.Fatalf("first roll keeps its consumption, got %v", got.AvailableLength)
		}
	})

	t.Run("unknown roll leaves the order untouched", func(t *testing.T) {
		f := newShopFixture(t)
		o := f.newOrder(t)

		_, err := f.orders.ConsumeMaterial(ctx, o.ID, "roll-x", 1, "user-1")
		if !errors.Is(err, ErrRollNotFound) {
			t.Fatalf("expected ErrRollNotFound, got %v", err)
		}
		got, _ := f.orders.GetByID(ctx, o.ID)
		if got.RollID != "" || got.Version != o.Version {
			t.Fatalf("order should not change: %+v", got)
		}
	})

	t.Run("invalid meters", func(t *testing.T) {
		f := newShopFixture(t)
		o := f.newOrder(t)
		if _, err := f.orders.ConsumeMaterial(ctx, o.ID, "roll-1", -2, "user-1"); !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("expected ErrInvalidLength, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_Reconcile(t *testing.T) {
	ctx := context.Background()

	t.Run("finished unpaid order without material", func(t *testing.T) {
		f := newShopFixture(t)
		o := f.newOrder(t)
		if _, err := f.orders.UpdateStatus(ctx, o.ID, entities.OrderStatusConcluida, "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rec, err := f.orders.Reconcile(ctx, o.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !hasIssue(rec.Issues, IssueOutstandingBalance) || !hasIssue(rec.Issues, IssueMaterialNotLinked) {
			t.Fatalf("unexpected issues: %v", rec.Issues)
		}
		if !rec.Outstanding.Equal(decimal.NewFromInt(250)) {
			t.Fatalf("expected outstanding 250, got %s", rec.Outstanding)
		}
	})

	t.Run("manual entry without payment flag", func(t *testing.T) {
		f := newShopFixture(t)
		o := f.newOrder(t)
		if _, err := f.cash.RecordOrderPayment(ctx, o.ID, decimal.NewFromInt(250), entities.PaymentMethodPix, "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rec, _ := f.orders.Reconcile(ctx, o.ID)
		if !hasIssue(rec.Issues, IssueEntryWithoutPaymentFlag) {
			t.Fatalf("unexpected issues: %v", rec.Issues)
		}
	})

	t.Run("deleted roll", func(t *testing.T) {
		f := newShopFixture(t)
		o := f.newOrder(t)
		roll := f.newRoll(t, 10)
		if _, err := f.orders.ConsumeMaterial(ctx, o.ID, roll.ID, 2, "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := f.inventory.Delete(ctx, roll.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rec, err := f.orders.Reconcile(ctx, o.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Roll != nil || !hasIssue(rec.Issues, IssueMissingRoll) {
			t.Fatalf("unexpected reconciliation: %+v", rec)
		}
		if rec.MetersUsed != 2 {
			t.Fatalf("expected meters used 2, got %v", rec.MetersUsed)
		}
	})
}

func TestWorkOrderUseCase_ListingAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newShopFixture(t)
	first := f.newOrder(t)
	second := f.newOrder(t)
	if _, err := f.orders.Update(ctx, second.ID, OrderPatch{AssignedTo: ptr("installer-1")}, "user-1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("by status newest first", func(t *testing.T) {
		orders, err := f.orders.GetByStatus(ctx, entities.OrderStatusAberta)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(orders) != 2 || orders[0].ID != second.ID || orders[1].ID != first.ID {
			t.Fatalf("unexpected order listing: %+v", orders)
		}
		if _, err := f.orders.GetByStatus(ctx, "pendente"); !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("by assigned user", func(t *testing.T) {
		orders, err := f.orders.GetByAssignedUser(ctx, "installer-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(orders) != 1 || orders[0].ID != second.ID {
			t.Fatalf("unexpected order listing: %+v", orders)
		}
	})

	t.Run("delete keeps cash entries", func(t *testing.T) {
		if _, err := f.orders.RecordPayment(ctx, first.ID, decimal.Zero, entities.PaymentMethodPix, "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := f.orders.Delete(ctx, first.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := f.orders.GetByID(ctx, first.ID); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
		entries, _ := f.cash.ListByOrder(ctx, first.ID)
		if len(entries) != 1 {
			t.Fatalf("expected the cash entry to remain, got %d", len(entries))
		}
		if err := f.orders.Delete(ctx, first.ID); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}
