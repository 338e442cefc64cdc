package response

import (
	"encoding/json"
	"testing"
	"time"

	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromCharge(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	p := entities.PaymentCharge{
		ID:                 "pay-1",
		OrderID:            "order-1",
		Amount:             decimal.NewFromInt(250),
		Method:             entities.PaymentMethodCredito,
		Date:               now,
		Status:             entities.ChargeStatusAprovado,
		ProviderPayloadRaw: raw,
		ProviderPayload:    payload,
	}

	res := FromCharge(p)
	if res.ID != "pay-1" || res.PaymentID != "pay-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.OrderID != "order-1" || res.Status != "aprovado" || res.Method != "credito" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.Date.Equal(now) || !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.MPPayloadRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.MPPayloadRaw)
	}
	if res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected parsed payload: %+v", res.MPPayload)
	}
	if len(FromCharges(nil)) != 0 {
		t.Fatalf("expected empty list")
	}
}

func TestFromOrder(t *testing.T) {
	o := entities.WorkOrder{
		ID:       "order-1",
		Items:    []entities.LineItem{{ServiceID: "s1", Quantity: 2, UnitPrice: decimal.NewFromInt(150)}},
		Discount: decimal.NewFromInt(50),
		Total:    decimal.NewFromInt(250),
		Status:   entities.OrderStatusAberta,
	}
	res := FromOrder(o)
	if !res.Subtotal.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected subtotal 300, got %s", res.Subtotal)
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(b, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["id"] != "order-1" || body["subtotal"] != "300" || body["total"] != "250" {
		t.Fatalf("unexpected body: %s", b)
	}

	empty := FromOrder(entities.WorkOrder{ID: "order-2"})
	if empty.Items == nil {
		t.Fatalf("items must serialize as an empty list")
	}
}

func TestFromPaymentResult(t *testing.T) {
	charge := entities.PaymentCharge{ID: "123", Status: entities.ChargeStatusAprovado}
	res := FromPaymentResult(usecase.PaymentResult{
		Order:  entities.WorkOrder{ID: "order-1", PaymentReceived: true},
		Entry:  entities.CashEntry{ID: "entry-1", RefOrderID: "order-1"},
		Charge: &charge,
	})
	if res.Order.ID != "order-1" || res.Entry.ID != "entry-1" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Charge == nil || res.Charge.ID != "123" {
		t.Fatalf("unexpected charge: %+v", res.Charge)
	}
	if FromPaymentResult(usecase.PaymentResult{}).Charge != nil {
		t.Fatalf("expected nil charge")
	}
}

func TestFromRoll(t *testing.T) {
	own := 20.0
	rolls := FromRolls([]entities.InventoryRoll{
		{ID: "a", AvailableLength: 5},
		{ID: "b", AvailableLength: 6},
		{ID: "c", AvailableLength: 15, LowStockThreshold: &own},
	}, 5)
	if !rolls[0].LowStock || rolls[1].LowStock || !rolls[2].LowStock {
		t.Fatalf("unexpected low stock flags: %+v", rolls)
	}
	if rolls[2].AlertThreshold != 20 || rolls[0].AlertThreshold != 5 {
		t.Fatalf("unexpected thresholds: %+v", rolls)
	}
}
