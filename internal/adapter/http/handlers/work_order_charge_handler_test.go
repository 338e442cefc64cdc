package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"oficina_insufilm/internal/adapter/http/handlers/mocks"
	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestWorkOrderHandler_Charge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IWorkOrderUseCase, mock bool) *gin.Engine {
		h := NewWorkOrderHandler(uc, 5, mock)
		r := gin.New()
		r.POST("/v1/orders/:id/charge", h.Charge)
		return r
	}

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/charge", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		newRouter(uc, false).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back to empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		uc.EXPECT().ChargePayment(gomock.Any(), "order-1", json.RawMessage("{}"), "user-1").Return(usecase.PaymentResult{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/charge", bytes.NewBufferString("{"))
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		newRouter(uc, true).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/charge", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		w := httptest.NewRecorder()
		newRouter(uc, false).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		uc.EXPECT().ChargePayment(gomock.Any(), "order-1", gomock.Any(), "user-1").Return(usecase.PaymentResult{}, usecase.ErrOrderAlreadyPaid)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/charge", bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		newRouter(uc, false).ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success with envelope actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)

		now := time.Now().UTC()
		charge := entities.PaymentCharge{ID: "pay-1", OrderID: "order-1", Date: now, Status: entities.ChargeStatusAprovado}
		uc.EXPECT().ChargePayment(gomock.Any(), "order-1", json.RawMessage(`{"payment_method_id":"pix"}`), "ana").
			Return(usecase.PaymentResult{Order: entities.WorkOrder{ID: "order-1", PaymentReceived: true}, Charge: &charge}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/charge", bytes.NewBufferString(`{"mp_payload":{"payment_method_id":"pix"},"actor":"ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(uc, false).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		charged, _ := body["charge"].(map[string]any)
		if charged["payment_id"] != "pay-1" || charged["status"] != "aprovado" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestWorkOrderHandler_ListCharges(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc, 5, false)

		r := gin.New()
		r.GET("/v1/orders/:id/charges", h.ListCharges)

		uc.EXPECT().ListCharges(gomock.Any(), "order-1").Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1/charges", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc, 5, false)

		r := gin.New()
		r.GET("/v1/orders/:id/charges", h.ListCharges)

		uc.EXPECT().ListCharges(gomock.Any(), "order-1").Return([]entities.PaymentCharge{
			{ID: "latest", OrderID: "order-1"},
			{ID: "older", OrderID: "order-1"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1/charges", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[0]["payment_id"] != "latest" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestReadMPPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, _, err := readMPPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, _, err := readMPPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, _, err := readMPPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", string(payload), err)
	}

	if _, _, err := readMPPayload(makeCtx(`{"mp_payload":null}`)); err == nil {
		t.Fatalf("expected mp_payload empty error")
	}

	payload, _, err = readMPPayload(makeCtx(`{"mp_payload":"x"}`))
	if err != nil || string(payload) != `"x"` {
		t.Fatalf("expected wrapped string payload, got %s err=%v", payload, err)
	}

	payload, actor, err := readMPPayload(makeCtx(`{"mp_payload":{"a":1},"actor":"ana"}`))
	if err != nil || string(payload) != `{"a":1}` || actor != "ana" {
		t.Fatalf("expected wrapped payload and actor, got %s actor=%q err=%v", payload, actor, err)
	}

	payload, actor, err = readMPPayload(makeCtx(`{"payment_method_id":"pix"}`))
	if err != nil || string(payload) != `{"payment_method_id":"pix"}` || actor != "" {
		t.Fatalf("expected raw body payload, got %s err=%v", payload, err)
	}

	payload, _, err = readMPPayload(makeCtx(`[1]`))
	if err != nil || string(payload) != `[1]` {
		t.Fatalf("expected non-object body forwarded as-is, got %s err=%v", payload, err)
	}
}
