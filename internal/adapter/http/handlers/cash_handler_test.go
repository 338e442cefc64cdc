package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"oficina_insufilm/internal/adapter/http/handlers/mocks"
	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newCashRouter(h *CashHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/cash", h.Create)
	r.GET("/v1/cash", h.List)
	r.GET("/v1/cash/summary", h.Summary)
	r.GET("/v1/cash/orders/:order_id", h.ListByOrder)
	r.GET("/v1/cash/:id", h.GetByID)
	r.PATCH("/v1/cash/:id", h.Update)
	r.DELETE("/v1/cash/:id", h.Delete)
	return r
}

func TestCashHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICashUseCase(ctrl)
		w := doJSON(newCashRouter(NewCashHandler(uc)), http.MethodPost, "/v1/cash", `{"type":"despesa","amount":"80"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICashUseCase(ctrl)
		w := doJSON(newCashRouter(NewCashHandler(uc)), http.MethodPost, "/v1/cash",
			`{"type":"despesa","amount":"80","at":"ontem","by":"u1"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("actor from header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICashUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.CreateCashEntryInput) (entities.CashEntry, error) {
			if in.By != "u9" || in.Type != entities.CashEntryDespesa || !in.At.IsZero() {
				t.Fatalf("unexpected input: %+v", in)
			}
			if !in.Amount.Equal(decimal.NewFromInt(80)) {
				t.Fatalf("unexpected amount: %s", in.Amount)
			}
			return entities.CashEntry{ID: "e1", Type: in.Type, Amount: in.Amount, By: in.By, At: time.Now()}, nil
		})
		w := doJSON(newCashRouter(NewCashHandler(uc)), http.MethodPost, "/v1/cash",
			`{"type":"despesa","amount":"80","notes":"energia"}`, map[string]string{HeaderUserID: "u9"})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestCashHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICashUseCase(ctrl)
	r := newCashRouter(NewCashHandler(uc))

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC).Add(24*time.Hour - time.Nanosecond)
	uc.EXPECT().ListByPeriod(gomock.Any(), start, end).Return([]entities.CashEntry{{ID: "e1"}}, nil)
	if w := doJSON(r, http.MethodGet, "/v1/cash?start=2024-03-01&end=2024-03-31", "", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if w := doJSON(r, http.MethodGet, "/v1/cash?start=2024-03-01", "", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for half period, got %d", w.Code)
	}

	uc.EXPECT().ListByType(gomock.Any(), entities.CashEntryReceita).Return([]entities.CashEntry{}, nil)
	if w := doJSON(r, http.MethodGet, "/v1/cash?type=receita", "", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().List(gomock.Any()).Return([]entities.CashEntry{}, nil)
	if w := doJSON(r, http.MethodGet, "/v1/cash", "", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().ListByOrder(gomock.Any(), "order-1").Return([]entities.CashEntry{{ID: "e2", RefOrderID: "order-1"}}, nil)
	w := doJSON(r, http.MethodGet, "/v1/cash/orders/order-1", "", nil)
	var entries []entities.CashEntry
	_ = json.Unmarshal(w.Body.Bytes(), &entries)
	if w.Code != http.StatusOK || len(entries) != 1 || entries[0].RefOrderID != "order-1" {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}
}

func TestCashHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICashUseCase(ctrl)
	r := newCashRouter(NewCashHandler(uc))

	if w := doJSON(r, http.MethodGet, "/v1/cash/summary", "", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without period, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/v1/cash/summary?start=x&end=2024-03-31", "", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad date, got %d", w.Code)
	}

	uc.EXPECT().SummaryByPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.CashSummary{}, usecase.ErrInvalidPeriod)
	if w := doJSON(r, http.MethodGet, "/v1/cash/summary?start=2024-03-31&end=2024-03-01", "", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for reversed period, got %d", w.Code)
	}

	uc.EXPECT().SummaryByPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.CashSummary{
		TotalReceita: decimal.NewFromInt(500),
		TotalDespesa: decimal.NewFromInt(120),
		Balance:      decimal.NewFromInt(380),
		ByMethod:     map[entities.PaymentMethod]decimal.Decimal{entities.PaymentMethodPix: decimal.NewFromInt(500)},
	}, nil)
	w := doJSON(r, http.MethodGet, "/v1/cash/summary?start=2024-03-01T00:00:00Z&end=2024-03-31", "", nil)
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusOK || body["balance"] != "380" {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}
}

func TestCashHandler_UpdateDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICashUseCase(ctrl)
	r := newCashRouter(NewCashHandler(uc))

	uc.EXPECT().Update(gomock.Any(), "e1", gomock.Any()).DoAndReturn(func(_ any, _ string, in usecase.UpdateCashEntryInput) (entities.CashEntry, error) {
		if in.Method == nil || *in.Method != entities.PaymentMethodDinheiro || in.Type != nil {
			t.Fatalf("unexpected input: %+v", in)
		}
		return entities.CashEntry{ID: "e1", Method: *in.Method}, nil
	})
	if w := doJSON(r, http.MethodPatch, "/v1/cash/e1", `{"method":"dinheiro"}`, nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.CashEntry{}, usecase.ErrCashEntryNotFound)
	if w := doJSON(r, http.MethodGet, "/v1/cash/missing", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	uc.EXPECT().Delete(gomock.Any(), "e1").Return(nil)
	if w := doJSON(r, http.MethodDelete, "/v1/cash/e1", "", nil); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
