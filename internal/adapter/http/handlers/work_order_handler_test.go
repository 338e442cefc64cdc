package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_insufilm/internal/adapter/http/handlers/mocks"
	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(h *WorkOrderHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/orders", h.Create)
	r.GET("/v1/orders", h.List)
	r.GET("/v1/orders/:id", h.GetByID)
	r.PATCH("/v1/orders/:id", h.Update)
	r.PATCH("/v1/orders/:id/status", h.UpdateStatus)
	r.POST("/v1/orders/:id/payments", h.RecordPayment)
	r.POST("/v1/orders/:id/material", h.ConsumeMaterial)
	r.GET("/v1/orders/:id/reconciliation", h.Reconcile)
	r.DELETE("/v1/orders/:id", h.Delete)
	return r
}

func doJSON(r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWorkOrderHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		w := doJSON(newOrderRouter(NewWorkOrderHandler(uc, 5, false)), http.MethodPost, "/v1/orders", `{"vehicle_id":"v1"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		w := doJSON(newOrderRouter(NewWorkOrderHandler(uc, 5, false)), http.MethodPost, "/v1/orders", `{"customer_id":"c1","vehicle_id":"v1"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "MISSING_ACTOR" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid scheduled_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		w := doJSON(newOrderRouter(NewWorkOrderHandler(uc, 5, false)), http.MethodPost, "/v1/orders",
			`{"customer_id":"c1","vehicle_id":"v1","scheduled_at":"amanha","actor":"ana"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.CreateOrderInput) (entities.WorkOrder, error) {
			if in.Actor != "user-1" || len(in.Items) != 1 || in.Items[0].Quantity != 2 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.WorkOrder{
				ID:       "order-1",
				Items:    in.Items,
				Discount: in.Discount,
				Total:    entities.ComputeTotal(in.Items, in.Discount),
				Status:   entities.OrderStatusAberta,
			}, nil
		})

		w := doJSON(newOrderRouter(NewWorkOrderHandler(uc, 5, false)), http.MethodPost, "/v1/orders",
			`{"customer_id":"c1","vehicle_id":"v1","items":[{"service_id":"s1","quantity":2,"unit_price":150}],"discount":50}`,
			map[string]string{HeaderUserID: "user-1"})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total"] != "250" || body["subtotal"] != "300" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestWorkOrderHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWorkOrderUseCase(ctrl)
	r := newOrderRouter(NewWorkOrderHandler(uc, 5, false))

	uc.EXPECT().GetByStatus(gomock.Any(), entities.OrderStatusAberta).Return([]entities.WorkOrder{{ID: "a"}}, nil)
	uc.EXPECT().GetByAssignedUser(gomock.Any(), "inst-1").Return([]entities.WorkOrder{{ID: "b"}}, nil)
	uc.EXPECT().List(gomock.Any()).Return([]entities.WorkOrder{}, nil)

	for path, want := range map[string]int{
		"/v1/orders?status=aberta":       1,
		"/v1/orders?assigned_to=inst-1": 1,
		"/v1/orders":                     0,
	} {
		w := doJSON(r, http.MethodGet, path, "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != want {
			t.Fatalf("%s: unexpected body: %s", path, w.Body.String())
		}
	}
}

func TestWorkOrderHandler_GetAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWorkOrderUseCase(ctrl)
	r := newOrderRouter(NewWorkOrderHandler(uc, 5, false))

	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.WorkOrder{}, usecase.ErrOrderNotFound)
	if w := doJSON(r, http.MethodGet, "/v1/orders/missing", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	uc.EXPECT().Delete(gomock.Any(), "order-1").Return(nil)
	if w := doJSON(r, http.MethodDelete, "/v1/orders/order-1", "", nil); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestWorkOrderHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("patch with note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		uc.EXPECT().Update(gomock.Any(), "order-1", gomock.Any(), "ana", "cliente pediu G5").
			DoAndReturn(func(_ any, _ string, p usecase.OrderPatch, _, _ string) (entities.WorkOrder, error) {
				if p.Tone == nil || *p.Tone != "G5" || p.Items != nil {
					t.Fatalf("unexpected patch: %+v", p)
				}
				return entities.WorkOrder{ID: "order-1", Tone: "G5"}, nil
			})

		w := doJSON(newOrderRouter(NewWorkOrderHandler(uc, 5, false)), http.MethodPatch, "/v1/orders/order-1",
			`{"tone":"G5","change_note":"cliente pediu G5","actor":"ana"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), "order-1", entities.OrderStatusConcluida, "ana").Return(entities.WorkOrder{}, usecase.ErrOrderConflict)

		w := doJSON(newOrderRouter(NewWorkOrderHandler(uc, 5, false)), http.MethodPatch, "/v1/orders/order-1/status",
			`{"status":"concluida","actor":"ana"}`, nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_RecordPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("disabled method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		uc.EXPECT().RecordPayment(gomock.Any(), "order-1", gomock.Any(), entities.PaymentMethodOutro, "ana").
			Return(usecase.PaymentResult{}, usecase.ErrPaymentMethodDisabled)

		w := doJSON(newOrderRouter(NewWorkOrderHandler(uc, 5, false)), http.MethodPost, "/v1/orders/order-1/payments",
			`{"method":"outro","actor":"ana"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		uc.EXPECT().RecordPayment(gomock.Any(), "order-1", gomock.Any(), entities.PaymentMethodPix, "ana").
			DoAndReturn(func(_ any, _ string, amount decimal.Decimal, _ entities.PaymentMethod, _ string) (usecase.PaymentResult, error) {
				if !amount.Equal(decimal.NewFromInt(250)) {
					t.Fatalf("unexpected amount %s", amount)
				}
				return usecase.PaymentResult{
					Order: entities.WorkOrder{ID: "order-1", PaymentReceived: true},
					Entry: entities.CashEntry{ID: "entry-1", RefOrderID: "order-1", Type: entities.CashEntryReceita},
				}, nil
			})

		w := doJSON(newOrderRouter(NewWorkOrderHandler(uc, 5, false)), http.MethodPost, "/v1/orders/order-1/payments",
			`{"amount":"250","method":"pix","actor":"ana"}`, nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["entry"]["ref_order_id"] != "order-1" || body["order"]["payment_received"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestWorkOrderHandler_MaterialAndReconcile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWorkOrderUseCase(ctrl)
	r := newOrderRouter(NewWorkOrderHandler(uc, 5, false))

	uc.EXPECT().ConsumeMaterial(gomock.Any(), "order-1", "roll-1", 3.5, "ana").Return(usecase.MaterialResult{
		Order: entities.WorkOrder{ID: "order-1", RollID: "roll-1", MetersUsed: 3.5},
		Roll:  entities.InventoryRoll{ID: "roll-1", AvailableLength: 4},
	}, nil)
	w := doJSON(r, http.MethodPost, "/v1/orders/order-1/material", `{"roll_id":"roll-1","meters":3.5,"actor":"ana"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["roll"]["low_stock"] != true {
		t.Fatalf("expected low stock roll, got %s", w.Body.String())
	}

	uc.EXPECT().ConsumeMaterial(gomock.Any(), "order-1", "missing", 1.0, "ana").Return(usecase.MaterialResult{}, usecase.ErrRollNotFound)
	w = doJSON(r, http.MethodPost, "/v1/orders/order-1/material", `{"roll_id":"missing","meters":1,"actor":"ana"}`, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	uc.EXPECT().Reconcile(gomock.Any(), "order-1").Return(usecase.Reconciliation{
		Order:      entities.WorkOrder{ID: "order-1"},
		Issues:     []usecase.ReconcileIssue{usecase.IssueOutstandingBalance},
		Consistent: false,
	}, nil)
	w = doJSON(r, http.MethodGet, "/v1/orders/order-1/reconciliation", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var rec map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &rec)
	issues, _ := rec["issues"].([]any)
	if rec["consistent"] != false || len(issues) != 1 || issues[0] != "outstanding_balance" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
