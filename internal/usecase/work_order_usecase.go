package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotFound         = fmt.Errorf("work order %w", entities.ErrNotFound)
	ErrInvalidOrderID        = entities.NewValidationError("order_id", "must not be empty")
	ErrInvalidActor          = entities.NewValidationError("actor", "must not be empty")
	ErrInvalidOrderStatus    = entities.NewValidationError("status", "unknown order status")
	ErrInvalidPaymentMethod  = entities.NewValidationError("method", "unknown payment method")
	ErrInvalidAmount         = entities.NewValidationError("amount", "must be greater than or equal to zero")
	ErrPaymentMethodDisabled = entities.NewValidationError("method", "payment method disabled in settings")
	ErrOrderCancelled        = entities.NewValidationError("status", "order is cancelled")
	ErrVehicleNotOwned       = entities.NewValidationError("vehicle_id", "vehicle does not belong to customer")
	ErrOrderConflict         = fmt.Errorf("work order modified concurrently: %w", entities.ErrConflict)
)

// CreateOrderInput carries a new work order. Items keep the unit price given
// by the caller; every service id must exist in the catalog.
type CreateOrderInput struct {
	CustomerID    string `validate:"required"`
	VehicleID     string `validate:"required"`
	Items         []entities.LineItem
	Discount      decimal.Decimal
	PaymentMethod entities.PaymentMethod `validate:"omitempty,oneof=dinheiro pix credito debito outro"`
	Tone          string
	AssignedTo    string
	ScheduledAt   *time.Time
	Notes         string
	Actor         string `validate:"required"`
}

// OrderPatch is a partial update. Nil fields are left untouched; a non-nil
// Items replaces the whole list.
type OrderPatch struct {
	CustomerID    *string
	VehicleID     *string
	Items         []entities.LineItem
	Discount      *decimal.Decimal
	Status        *entities.OrderStatus
	Tone          *string
	AssignedTo    *string
	ScheduledAt   *time.Time
	PaymentMethod *entities.PaymentMethod
	Notes         *string
}

// PaymentResult is what a payment leaves behind: the updated order, the cash
// entry and, for provider charges, the charge record.
type PaymentResult struct {
	Order  entities.WorkOrder      `json:"order"`
	Entry  entities.CashEntry      `json:"entry"`
	Charge *entities.PaymentCharge `json:"charge,omitempty"`
}

// MaterialResult pairs the order with the roll it consumed from.
type MaterialResult struct {
	Order entities.WorkOrder     `json:"order"`
	Roll  entities.InventoryRoll `json:"roll"`
}

// ReconcileIssue names a discrepancy between an order, its cash entries and
// its roll.
type ReconcileIssue string

const (
	IssuePaymentFlagWithoutEntry ReconcileIssue = "payment_flag_without_entry"
	IssueEntryWithoutPaymentFlag ReconcileIssue = "entry_without_payment_flag"
	IssueMultiplePayments        ReconcileIssue = "multiple_payments"
	IssueOutstandingBalance      ReconcileIssue = "outstanding_balance"
	IssueOverpaid                ReconcileIssue = "overpaid"
	IssueMissingRoll             ReconcileIssue = "missing_roll"
	IssueMetersWithoutRoll       ReconcileIssue = "meters_without_roll"
	IssueMaterialNotLinked       ReconcileIssue = "material_not_linked"
)

// Reconciliation is a read-only view of an order against the cash ledger and
// the inventory.
type Reconciliation struct {
	Order          entities.WorkOrder      `json:"order"`
	Payments       []entities.CashEntry    `json:"payments"`
	AmountReceived decimal.Decimal         `json:"amount_received"`
	Outstanding    decimal.Decimal         `json:"outstanding"`
	Roll           *entities.InventoryRoll `json:"roll,omitempty"`
	MetersUsed     float64                 `json:"meters_used"`
	Issues         []ReconcileIssue        `json:"issues"`
	Consistent     bool                    `json:"consistent"`
}

// IWorkOrderUseCase covers pricing and the lifecycle of work orders and the
// operations that tie an order to the inventory and the cash ledger.
//
// Cross-ledger operations (RecordPayment, ChargePayment, ConsumeMaterial) are
// independent writes; Reconcile reports what is out of step.

type IWorkOrderUseCase interface {
	Create(ctx context.Context, in CreateOrderInput) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	List(ctx context.Context) ([]entities.WorkOrder, error)
	GetByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.WorkOrder, error)
	GetByAssignedUser(ctx context.Context, userID string) ([]entities.WorkOrder, error)
	Update(ctx context.Context, id string, patch OrderPatch, actor, note string) (entities.WorkOrder, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, actor string) (entities.WorkOrder, error)
	RecordPayment(ctx context.Context, id string, amount decimal.Decimal, method entities.PaymentMethod, actor string) (PaymentResult, error)
	ChargePayment(ctx context.Context, id string, providerPayload json.RawMessage, actor string) (PaymentResult, error)
	ListCharges(ctx context.Context, id string) ([]entities.PaymentCharge, error)
	ConsumeMaterial(ctx context.Context, id, rollID string, meters float64, actor string) (MaterialResult, error)
	Reconcile(ctx context.Context, id string) (Reconciliation, error)
	Delete(ctx context.Context, id string) error
}

// GatewayOptions configures provider charges.
type GatewayOptions struct {
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

// WorkOrderDeps groups the collaborators of WorkOrderUseCase.
type WorkOrderDeps struct {
	Orders    interfaces.IWorkOrderRepository
	Customers interfaces.ICustomerRepository
	Vehicles  interfaces.IVehicleRepository
	Services  interfaces.IServiceItemRepository
	Charges   interfaces.IPaymentChargeRepository
	Gateway   interfaces.IPaymentGateway
	Inventory IInventoryUseCase
	Cash      ICashUseCase
	Settings  ISettingsUseCase

	Policy         entities.TransitionPolicy
	MaxAttempts    int
	GatewayOptions GatewayOptions
}

type WorkOrderUseCase struct {
	repo      interfaces.IWorkOrderRepository
	customers interfaces.ICustomerRepository
	vehicles  interfaces.IVehicleRepository
	services  interfaces.IServiceItemRepository
	charges   interfaces.IPaymentChargeRepository
	gateway   interfaces.IPaymentGateway
	inventory IInventoryUseCase
	cash      ICashUseCase
	settings  ISettingsUseCase

	policy      entities.TransitionPolicy
	maxAttempts int
	gatewayOpts GatewayOptions
	now         func() time.Time
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(deps WorkOrderDeps) *WorkOrderUseCase {
	policy := deps.Policy
	if policy == nil {
		policy = entities.PermissiveTransitions{}
	}
	attempts := deps.MaxAttempts
	if attempts < 1 {
		attempts = DefaultCASAttempts
	}
	return &WorkOrderUseCase{
		repo:        deps.Orders,
		customers:   deps.Customers,
		vehicles:    deps.Vehicles,
		services:    deps.Services,
		charges:     deps.Charges,
		gateway:     deps.Gateway,
		inventory:   deps.Inventory,
		cash:        deps.Cash,
		settings:    deps.Settings,
		policy:      policy,
		maxAttempts: attempts,
		gatewayOpts: deps.GatewayOptions,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *WorkOrderUseCase) Create(ctx context.Context, in CreateOrderInput) (entities.WorkOrder, error) {
	if err := validateInput(in); err != nil {
		return entities.WorkOrder{}, err
	}
	if err := entities.ValidateItems(in.Items); err != nil {
		return entities.WorkOrder{}, err
	}
	if err := entities.ValidateDiscount(in.Discount); err != nil {
		return entities.WorkOrder{}, err
	}

	customerID := strings.TrimSpace(in.CustomerID)
	vehicleID := strings.TrimSpace(in.VehicleID)
	if err := u.resolveReferences(ctx, customerID, vehicleID, in.Items); err != nil {
		log.Printf("[order][usecase] create rejected customer_id=%s vehicle_id=%s err=%v", customerID, vehicleID, err)
		return entities.WorkOrder{}, err
	}

	now := u.now()
	actor := strings.TrimSpace(in.Actor)
	o := entities.WorkOrder{
		ID:            uuid.NewString(),
		CustomerID:    customerID,
		VehicleID:     vehicleID,
		Items:         append([]entities.LineItem(nil), in.Items...),
		Tone:          strings.TrimSpace(in.Tone),
		AssignedTo:    strings.TrimSpace(in.AssignedTo),
		Status:        entities.OrderStatusAberta,
		ScheduledAt:   utcPtr(in.ScheduledAt),
		Discount:      in.Discount,
		PaymentMethod: in.PaymentMethod,
		Notes:         strings.TrimSpace(in.Notes),
		History: []entities.OrderEvent{
			{At: now, By: actor, Status: entities.OrderStatusAberta},
		},
		Version:   1,
		CreatedAt: now,
		CreatedBy: actor,
		UpdatedAt: now,
		UpdatedBy: actor,
	}
	o.Reprice()

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		log.Printf("[order][usecase] create failed order_id=%s err=%v", o.ID, err)
		return entities.WorkOrder{}, err
	}
	log.Printf("[order][usecase] order created order_id=%s customer_id=%s items=%d total=%s", created.ID, created.CustomerID, len(created.Items), created.Total.StringFixed(2))
	return created, nil
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if o.ID == "" {
		return entities.WorkOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *WorkOrderUseCase) List(ctx context.Context) ([]entities.WorkOrder, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortOrdersNewestFirst(orders)
	return orders, nil
}

func (u *WorkOrderUseCase) GetByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.WorkOrder, error) {
	if !status.IsValid() {
		return nil, ErrInvalidOrderStatus
	}
	orders, err := u.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	sortOrdersNewestFirst(orders)
	return orders, nil
}

func (u *WorkOrderUseCase) GetByAssignedUser(ctx context.Context, userID string) ([]entities.WorkOrder, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, entities.NewValidationError("assigned_to", "must not be empty")
	}
	orders, err := u.repo.ListByAssignedTo(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortOrdersNewestFirst(orders)
	return orders, nil
}

// Update applies patch, recomputing the total when items or discount change
// and checking status changes against the transition policy. A history event
// is appended when the status changes or a note is given.
func (u *WorkOrderUseCase) Update(ctx context.Context, id string, patch OrderPatch, actor, note string) (entities.WorkOrder, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return entities.WorkOrder{}, ErrInvalidActor
	}
	if patch.Items != nil {
		if err := entities.ValidateItems(patch.Items); err != nil {
			return entities.WorkOrder{}, err
		}
	}
	if patch.Discount != nil {
		if err := entities.ValidateDiscount(*patch.Discount); err != nil {
			return entities.WorkOrder{}, err
		}
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return entities.WorkOrder{}, ErrInvalidOrderStatus
	}
	if patch.PaymentMethod != nil && *patch.PaymentMethod != "" && !patch.PaymentMethod.IsValid() {
		return entities.WorkOrder{}, ErrInvalidPaymentMethod
	}
	if err := u.resolvePatchReferences(ctx, id, patch); err != nil {
		return entities.WorkOrder{}, err
	}
	note = strings.TrimSpace(note)

	return u.mutate(ctx, id, "update", func(o *entities.WorkOrder, now time.Time) error {
		statusChanged := false
		if patch.Status != nil && *patch.Status != o.Status {
			if err := u.policy.Allow(o.Status, *patch.Status); err != nil {
				return err
			}
			o.Status = *patch.Status
			statusChanged = true
			if o.Status == entities.OrderStatusConcluida && o.FinishedAt == nil {
				finished := now
				o.FinishedAt = &finished
			}
		}
		if patch.CustomerID != nil {
			o.CustomerID = strings.TrimSpace(*patch.CustomerID)
		}
		if patch.VehicleID != nil {
			o.VehicleID = strings.TrimSpace(*patch.VehicleID)
		}
		if patch.Items != nil {
			o.Items = append([]entities.LineItem(nil), patch.Items...)
		}
		if patch.Discount != nil {
			o.Discount = *patch.Discount
		}
		if patch.Items != nil || patch.Discount != nil {
			o.Reprice()
		}
		if patch.Tone != nil {
			o.Tone = strings.TrimSpace(*patch.Tone)
		}
		if patch.AssignedTo != nil {
			o.AssignedTo = strings.TrimSpace(*patch.AssignedTo)
		}
		if patch.ScheduledAt != nil {
			o.ScheduledAt = utcPtr(patch.ScheduledAt)
		}
		if patch.PaymentMethod != nil {
			o.PaymentMethod = *patch.PaymentMethod
		}
		if patch.Notes != nil {
			o.Notes = strings.TrimSpace(*patch.Notes)
		}

		if statusChanged || note != "" {
			ev := entities.OrderEvent{At: now, By: actor, Note: note}
			if statusChanged {
				ev.Status = o.Status
			}
			o.History = append(o.History, ev)
		}
		o.UpdatedBy = actor
		return nil
	})
}

func (u *WorkOrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, actor string) (entities.WorkOrder, error) {
	return u.Update(ctx, id, OrderPatch{Status: &status}, actor, "")
}

// RecordPayment books a receita in the cash ledger for the order and then
// flags the order as paid. A zero amount means the order total. A second
// payment is accepted and only logged; Reconcile reports it.
func (u *WorkOrderUseCase) RecordPayment(ctx context.Context, id string, amount decimal.Decimal, method entities.PaymentMethod, actor string) (PaymentResult, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return PaymentResult{}, ErrInvalidActor
	}
	if !method.IsValid() {
		return PaymentResult{}, ErrInvalidPaymentMethod
	}
	if amount.IsNegative() {
		return PaymentResult{}, ErrInvalidAmount
	}

	settings, err := u.settings.Get(ctx)
	if err != nil {
		return PaymentResult{}, err
	}
	if !settings.Payment.Allows(method) {
		log.Printf("[order][usecase] payment method disabled order_id=%s method=%s", id, method)
		return PaymentResult{}, ErrPaymentMethodDisabled
	}

	o, err := u.GetByID(ctx, id)
	if err != nil {
		return PaymentResult{}, err
	}
	return u.recordPayment(ctx, o, amount, method, actor)
}

func (u *WorkOrderUseCase) recordPayment(ctx context.Context, o entities.WorkOrder, amount decimal.Decimal, method entities.PaymentMethod, actor string) (PaymentResult, error) {
	if o.Status == entities.OrderStatusCancelada {
		return PaymentResult{}, ErrOrderCancelled
	}
	if amount.IsZero() {
		amount = o.Total
	}
	if o.PaymentReceived {
		log.Printf("[order][usecase] order already flagged as paid; recording another payment order_id=%s", o.ID)
	}

	entry, err := u.cash.RecordOrderPayment(ctx, o.ID, amount, method, actor)
	if err != nil {
		log.Printf("[order][usecase] cash entry failed order_id=%s err=%v", o.ID, err)
		return PaymentResult{}, err
	}

	updated, err := u.mutate(ctx, o.ID, "record-payment", func(w *entities.WorkOrder, now time.Time) error {
		received := now
		w.PaymentReceived = true
		w.PaymentMethod = method
		w.PaymentReceivedAt = &received
		w.UpdatedBy = actor
		w.History = append(w.History, entities.OrderEvent{
			At:   now,
			By:   actor,
			Note: fmt.Sprintf("Pagamento registrado: %s via %s", amount.StringFixed(2), method),
		})
		return nil
	})
	if err != nil {
		log.Printf("[order][usecase] cash entry recorded but order flag failed order_id=%s entry_id=%s err=%v", o.ID, entry.ID, err)
		return PaymentResult{Entry: entry}, err
	}
	log.Printf("[order][usecase] payment recorded order_id=%s entry_id=%s amount=%s method=%s", updated.ID, entry.ID, amount.StringFixed(2), method)
	return PaymentResult{Order: updated, Entry: entry}, nil
}

// ConsumeMaterial takes meters from the roll and links the roll to the order.
// Consuming again from the same roll accumulates; a different roll replaces
// the link.
func (u *WorkOrderUseCase) ConsumeMaterial(ctx context.Context, id, rollID string, meters float64, actor string) (MaterialResult, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return MaterialResult{}, ErrInvalidActor
	}
	rollID = strings.TrimSpace(rollID)
	if rollID == "" {
		return MaterialResult{}, ErrInvalidRollID
	}
	if !validLength(meters) {
		return MaterialResult{}, ErrInvalidLength
	}
	if _, err := u.GetByID(ctx, id); err != nil {
		return MaterialResult{}, err
	}

	roll, err := u.inventory.Consume(ctx, rollID, meters)
	if err != nil {
		log.Printf("[order][usecase] material consume failed order_id=%s roll_id=%s err=%v", id, rollID, err)
		return MaterialResult{}, err
	}

	updated, err := u.mutate(ctx, id, "consume-material", func(o *entities.WorkOrder, now time.Time) error {
		if o.RollID == rollID {
			o.MetersUsed += meters
		} else {
			o.RollID = rollID
			o.MetersUsed = meters
		}
		if o.Tone == "" {
			o.Tone = roll.Tone
		}
		o.UpdatedBy = actor
		o.History = append(o.History, entities.OrderEvent{
			At:   now,
			By:   actor,
			Note: fmt.Sprintf("Material: %.2fm do rolo %s", meters, rollID),
		})
		return nil
	})
	if err != nil {
		log.Printf("[order][usecase] roll consumed but order link failed order_id=%s roll_id=%s err=%v", id, rollID, err)
		return MaterialResult{Roll: roll}, err
	}
	return MaterialResult{Order: updated, Roll: roll}, nil
}

// Reconcile compares the order total with the cash entries referencing the
// order and checks the linked roll. It never writes.
func (u *WorkOrderUseCase) Reconcile(ctx context.Context, id string) (Reconciliation, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return Reconciliation{}, err
	}

	var (
		payments    []entities.CashEntry
		roll        *entities.InventoryRoll
		rollMissing bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		entries, err := u.cash.ListByOrder(gctx, o.ID)
		if err != nil {
			return err
		}
		payments = entries
		return nil
	})
	if o.RollID != "" {
		g.Go(func() error {
			r, err := u.inventory.GetByID(gctx, o.RollID)
			if errors.Is(err, entities.ErrNotFound) {
				rollMissing = true
				return nil
			}
			if err != nil {
				return err
			}
			roll = &r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Reconciliation{}, err
	}

	rec := Reconciliation{
		Order:          o,
		Payments:       payments,
		AmountReceived: decimal.Zero,
		Roll:           roll,
		MetersUsed:     o.MetersUsed,
		Issues:         []ReconcileIssue{},
	}
	if rec.Payments == nil {
		rec.Payments = []entities.CashEntry{}
	}

	receipts := 0
	for _, e := range payments {
		switch e.Type {
		case entities.CashEntryReceita:
			receipts++
			rec.AmountReceived = rec.AmountReceived.Add(e.Amount)
		case entities.CashEntryDespesa:
			rec.AmountReceived = rec.AmountReceived.Sub(e.Amount)
		}
	}
	rec.Outstanding = o.Total.Sub(rec.AmountReceived)

	if o.PaymentReceived && receipts == 0 {
		rec.Issues = append(rec.Issues, IssuePaymentFlagWithoutEntry)
	}
	if !o.PaymentReceived && receipts > 0 {
		rec.Issues = append(rec.Issues, IssueEntryWithoutPaymentFlag)
	}
	if receipts > 1 {
		rec.Issues = append(rec.Issues, IssueMultiplePayments)
	}
	if o.Status == entities.OrderStatusConcluida && rec.Outstanding.IsPositive() {
		rec.Issues = append(rec.Issues, IssueOutstandingBalance)
	}
	if rec.Outstanding.IsNegative() {
		rec.Issues = append(rec.Issues, IssueOverpaid)
	}
	if rollMissing {
		rec.Issues = append(rec.Issues, IssueMissingRoll)
	}
	if o.RollID == "" && o.MetersUsed > 0 {
		rec.Issues = append(rec.Issues, IssueMetersWithoutRoll)
	}
	if o.Status == entities.OrderStatusConcluida && o.RollID == "" {
		rec.Issues = append(rec.Issues, IssueMaterialNotLinked)
	}
	rec.Consistent = len(rec.Issues) == 0

	if !rec.Consistent {
		log.Printf("[order][usecase] reconcile order_id=%s issues=%v", o.ID, rec.Issues)
	}
	return rec, nil
}

// Delete removes the order. Consumed material and cash entries stay as they
// are.
func (u *WorkOrderUseCase) Delete(ctx context.Context, id string) error {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, o.ID); err != nil {
		log.Printf("[order][usecase] delete failed order_id=%s err=%v", o.ID, err)
		return err
	}
	log.Printf("[order][usecase] order deleted order_id=%s status=%s payment_received=%t roll_id=%s", o.ID, o.Status, o.PaymentReceived, o.RollID)
	return nil
}

// mutate performs a read-modify-write of one order guarded by its version.
func (u *WorkOrderUseCase) mutate(ctx context.Context, id, op string, apply func(o *entities.WorkOrder, now time.Time) error) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidOrderID
	}

	updated, err := retryOnConflict(ctx, "order", u.maxAttempts, ErrOrderConflict, func() (entities.WorkOrder, error) {
		o, err := u.GetByID(ctx, id)
		if err != nil {
			return entities.WorkOrder{}, err
		}
		now := u.now()
		if err := apply(&o, now); err != nil {
			return entities.WorkOrder{}, err
		}
		o.UpdatedAt = now
		return u.repo.Update(ctx, o)
	})
	if err != nil {
		if !errors.Is(err, entities.ErrNotFound) && !errors.Is(err, entities.ErrValidation) {
			log.Printf("[order][usecase] %s failed order_id=%s err=%v", op, id, err)
		}
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrOrderNotFound
	}
	log.Printf("[order][usecase] %s success order_id=%s status=%s total=%s version=%d", op, updated.ID, updated.Status, updated.Total.StringFixed(2), updated.Version)
	return updated, nil
}

// resolveReferences looks up the customer, the vehicle and every distinct
// service concurrently.
func (u *WorkOrderUseCase) resolveReferences(ctx context.Context, customerID, vehicleID string, items []entities.LineItem) error {
	g, gctx := errgroup.WithContext(ctx)

	var vehicle entities.Vehicle
	if customerID != "" {
		g.Go(func() error {
			c, err := u.customers.GetByID(gctx, customerID)
			if err != nil {
				return err
			}
			if c.ID == "" {
				return fmt.Errorf("%w: %s", ErrCustomerNotFound, customerID)
			}
			return nil
		})
	}
	if vehicleID != "" {
		g.Go(func() error {
			v, err := u.vehicles.GetByID(gctx, vehicleID)
			if err != nil {
				return err
			}
			if v.ID == "" {
				return fmt.Errorf("%w: %s", ErrVehicleNotFound, vehicleID)
			}
			vehicle = v
			return nil
		})
	}
	for _, serviceID := range distinctServiceIDs(items) {
		serviceID := serviceID
		g.Go(func() error {
			s, err := u.services.GetByID(gctx, serviceID)
			if err != nil {
				return err
			}
			if s.ID == "" {
				return fmt.Errorf("%w: %s", ErrServiceNotFound, serviceID)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if customerID != "" && vehicleID != "" && vehicle.CustomerID != customerID {
		return ErrVehicleNotOwned
	}
	return nil
}

// resolvePatchReferences checks ids introduced by a patch. When only one of
// customer or vehicle changes, ownership is checked against the stored order.
func (u *WorkOrderUseCase) resolvePatchReferences(ctx context.Context, id string, patch OrderPatch) error {
	if patch.CustomerID == nil && patch.VehicleID == nil && patch.Items == nil {
		return nil
	}

	customerID, vehicleID := "", ""
	if patch.CustomerID != nil || patch.VehicleID != nil {
		current, err := u.GetByID(ctx, id)
		if err != nil {
			return err
		}
		customerID, vehicleID = current.CustomerID, current.VehicleID
		if patch.CustomerID != nil {
			customerID = strings.TrimSpace(*patch.CustomerID)
			if customerID == "" {
				return ErrInvalidCustomerID
			}
		}
		if patch.VehicleID != nil {
			vehicleID = strings.TrimSpace(*patch.VehicleID)
			if vehicleID == "" {
				return ErrInvalidVehicleID
			}
		}
	}
	return u.resolveReferences(ctx, customerID, vehicleID, patch.Items)
}

func distinctServiceIDs(items []entities.LineItem) []string {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.ServiceID]; ok {
			continue
		}
		seen[it.ServiceID] = struct{}{}
		ids = append(ids, it.ServiceID)
	}
	return ids
}

func sortOrdersNewestFirst(orders []entities.WorkOrder) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
