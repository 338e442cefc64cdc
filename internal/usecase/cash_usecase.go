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
	"github.com/shopspring/decimal"
)

var (
	ErrCashEntryNotFound   = fmt.Errorf("cash entry %w", entities.ErrNotFound)
	ErrInvalidCashEntryID  = entities.NewValidationError("cash_entry_id", "must not be empty")
	ErrInvalidPeriod       = entities.NewValidationError("end", "must not be before start")
	ErrInvalidCashOrderRef = entities.NewValidationError("ref_order_id", "must not be empty")
)

// CreateCashEntryInput carries a new ledger line. A zero At means now.
type CreateCashEntryInput struct {
	Type       entities.CashEntryType `validate:"required,oneof=receita despesa"`
	Amount     decimal.Decimal
	Method     entities.PaymentMethod `validate:"omitempty,oneof=dinheiro pix credito debito outro"`
	RefOrderID string
	Notes      string
	At         time.Time
	By         string `validate:"required"`
}

// UpdateCashEntryInput is a partial update; nil fields are left untouched.
type UpdateCashEntryInput struct {
	Type       *entities.CashEntryType
	Amount     *decimal.Decimal
	Method     *entities.PaymentMethod
	RefOrderID *string
	Notes      *string
	At         *time.Time
}

// ICashUseCase is the cash ledger: receipts, expenses and period summaries.

type ICashUseCase interface {
	Create(ctx context.Context, in CreateCashEntryInput) (entities.CashEntry, error)
	GetByID(ctx context.Context, id string) (entities.CashEntry, error)
	List(ctx context.Context) ([]entities.CashEntry, error)
	ListByPeriod(ctx context.Context, start, end time.Time) ([]entities.CashEntry, error)
	ListByType(ctx context.Context, t entities.CashEntryType) ([]entities.CashEntry, error)
	ListByOrder(ctx context.Context, orderID string) ([]entities.CashEntry, error)
	Update(ctx context.Context, id string, in UpdateCashEntryInput) (entities.CashEntry, error)
	Delete(ctx context.Context, id string) error
	SummaryByPeriod(ctx context.Context, start, end time.Time) (entities.CashSummary, error)
	RecordOrderPayment(ctx context.Context, orderID string, amount decimal.Decimal, method entities.PaymentMethod, userID string) (entities.CashEntry, error)
}

type CashUseCase struct {
	repo interfaces.ICashEntryRepository
	now  func() time.Time
}

var _ ICashUseCase = (*CashUseCase)(nil)

func NewCashUseCase(repo interfaces.ICashEntryRepository) *CashUseCase {
	return &CashUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *CashUseCase) Create(ctx context.Context, in CreateCashEntryInput) (entities.CashEntry, error) {
	if err := validateInput(in); err != nil {
		return entities.CashEntry{}, err
	}

	now := u.now()
	at := in.At.UTC()
	if in.At.IsZero() {
		at = now
	}
	e := entities.CashEntry{
		ID:         uuid.NewString(),
		Type:       in.Type,
		Amount:     in.Amount,
		Method:     in.Method,
		RefOrderID: strings.TrimSpace(in.RefOrderID),
		Notes:      strings.TrimSpace(in.Notes),
		At:         at,
		By:         strings.TrimSpace(in.By),
		CreatedAt:  now,
	}
	if err := e.Validate(); err != nil {
		return entities.CashEntry{}, err
	}

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		log.Printf("[cash][usecase] create failed type=%s err=%v", e.Type, err)
		return entities.CashEntry{}, err
	}
	log.Printf("[cash][usecase] entry created entry_id=%s type=%s amount=%s method=%s ref_order_id=%s", created.ID, created.Type, created.Amount.StringFixed(2), created.Method, created.RefOrderID)
	return created, nil
}

func (u *CashUseCase) GetByID(ctx context.Context, id string) (entities.CashEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CashEntry{}, ErrInvalidCashEntryID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CashEntry{}, err
	}
	if e.ID == "" {
		return entities.CashEntry{}, ErrCashEntryNotFound
	}
	return e, nil
}

func (u *CashUseCase) List(ctx context.Context) ([]entities.CashEntry, error) {
	entries, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortEntriesNewestFirst(entries)
	return entries, nil
}

// ListByPeriod returns entries with start <= At <= end, newest first.
func (u *CashUseCase) ListByPeriod(ctx context.Context, start, end time.Time) ([]entities.CashEntry, error) {
	if end.Before(start) {
		return nil, ErrInvalidPeriod
	}
	entries, err := u.repo.ListByPeriod(ctx, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}
	sortEntriesNewestFirst(entries)
	return entries, nil
}

func (u *CashUseCase) ListByType(ctx context.Context, t entities.CashEntryType) ([]entities.CashEntry, error) {
	if !t.IsValid() {
		return nil, entities.NewValidationError("type", "must be receita or despesa")
	}
	entries, err := u.repo.ListByType(ctx, t)
	if err != nil {
		return nil, err
	}
	sortEntriesNewestFirst(entries)
	return entries, nil
}

func (u *CashUseCase) ListByOrder(ctx context.Context, orderID string) ([]entities.CashEntry, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidCashOrderRef
	}
	entries, err := u.repo.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	sortEntriesNewestFirst(entries)
	return entries, nil
}

func (u *CashUseCase) Update(ctx context.Context, id string, in UpdateCashEntryInput) (entities.CashEntry, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.CashEntry{}, err
	}

	if in.Type != nil {
		e.Type = *in.Type
	}
	if in.Amount != nil {
		e.Amount = *in.Amount
	}
	if in.Method != nil {
		e.Method = *in.Method
	}
	if in.RefOrderID != nil {
		e.RefOrderID = strings.TrimSpace(*in.RefOrderID)
	}
	if in.Notes != nil {
		e.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.At != nil {
		e.At = in.At.UTC()
	}
	if err := e.Validate(); err != nil {
		return entities.CashEntry{}, err
	}

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		log.Printf("[cash][usecase] update failed entry_id=%s err=%v", e.ID, err)
		return entities.CashEntry{}, err
	}
	if updated.ID == "" {
		return entities.CashEntry{}, ErrCashEntryNotFound
	}
	return updated, nil
}

func (u *CashUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		log.Printf("[cash][usecase] delete failed entry_id=%s err=%v", id, err)
		return err
	}
	log.Printf("[cash][usecase] entry deleted entry_id=%s", id)
	return nil
}

// SummaryByPeriod totals receitas and despesas with start <= At <= end.
func (u *CashUseCase) SummaryByPeriod(ctx context.Context, start, end time.Time) (entities.CashSummary, error) {
	start, end = start.UTC(), end.UTC()
	if end.Before(start) {
		return entities.CashSummary{}, ErrInvalidPeriod
	}
	entries, err := u.repo.ListByPeriod(ctx, start, end)
	if err != nil {
		log.Printf("[cash][usecase] summary failed start=%s end=%s err=%v", start.Format(time.RFC3339), end.Format(time.RFC3339), err)
		return entities.CashSummary{}, err
	}
	return entities.Summarize(entries, start, end), nil
}

// RecordOrderPayment books a receita linked to the order.
func (u *CashUseCase) RecordOrderPayment(ctx context.Context, orderID string, amount decimal.Decimal, method entities.PaymentMethod, userID string) (entities.CashEntry, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.CashEntry{}, ErrInvalidCashOrderRef
	}
	return u.Create(ctx, CreateCashEntryInput{
		Type:       entities.CashEntryReceita,
		Amount:     amount,
		Method:     method,
		RefOrderID: orderID,
		Notes:      orderPaymentNote(orderID),
		At:         u.now(),
		By:         userID,
	})
}

func orderPaymentNote(orderID string) string {
	short := orderID
	if len(short) > 6 {
		short = short[len(short)-6:]
	}
	return "Pagamento da OS #" + short
}

func sortEntriesNewestFirst(entries []entities.CashEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].At.After(entries[j].At)
	})
}
