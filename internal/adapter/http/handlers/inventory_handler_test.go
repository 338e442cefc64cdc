package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"oficina_insufilm/internal/adapter/http/handlers/mocks"
	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newInventoryRouter(h *InventoryHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/inventory", h.Create)
	r.GET("/v1/inventory", h.List)
	r.GET("/v1/inventory/low-stock", h.LowStock)
	r.GET("/v1/inventory/:id", h.GetByID)
	r.PATCH("/v1/inventory/:id", h.Update)
	r.DELETE("/v1/inventory/:id", h.Delete)
	r.POST("/v1/inventory/:id/consume", h.Consume)
	r.POST("/v1/inventory/:id/restock", h.Restock)
	return r
}

func TestInventoryHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing tone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		w := doJSON(newInventoryRouter(NewInventoryHandler(uc, 5)), http.MethodPost, "/v1/inventory", `{"width":1.52}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation from usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.InventoryRoll{}, usecase.ErrInvalidThreshold)
		w := doJSON(newInventoryRouter(NewInventoryHandler(uc, 5)), http.MethodPost, "/v1/inventory",
			`{"tone":"G20","width":1.52,"total_length":30,"low_stock_threshold":-1}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.CreateRollInput) (entities.InventoryRoll, error) {
			return entities.InventoryRoll{ID: "roll-1", Tone: in.Tone, Width: in.Width, TotalLength: in.TotalLength, AvailableLength: in.TotalLength, Version: 1}, nil
		})
		w := doJSON(newInventoryRouter(NewInventoryHandler(uc, 5)), http.MethodPost, "/v1/inventory",
			`{"tone":"G20","width":1.52,"total_length":30,"cost":"899.90"}`, nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["available_length"] != 30.0 || body["low_stock"] != false || body["alert_threshold"] != 5.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInventoryHandler_ConsumeRestock(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInventoryUseCase(ctrl)
	r := newInventoryRouter(NewInventoryHandler(uc, 5))

	threshold := 10.0
	uc.EXPECT().Consume(gomock.Any(), "roll-1", 95.0).Return(entities.InventoryRoll{ID: "roll-1", TotalLength: 100, AvailableLength: 5, LowStockThreshold: &threshold}, nil)
	w := doJSON(r, http.MethodPost, "/v1/inventory/roll-1/consume", `{"meters":95}`, nil)
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusOK || body["low_stock"] != true {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}

	uc.EXPECT().Restock(gomock.Any(), "roll-1", 30.0, "nota 123").Return(entities.InventoryRoll{ID: "roll-1", TotalLength: 100, AvailableLength: 35, LowStockThreshold: &threshold}, nil)
	w = doJSON(r, http.MethodPost, "/v1/inventory/roll-1/restock", `{"meters":30,"note":"nota 123"}`, nil)
	body = nil
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusOK || body["low_stock"] != false || body["available_length"] != 35.0 {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}

	uc.EXPECT().Consume(gomock.Any(), "roll-1", 1.0).Return(entities.InventoryRoll{}, usecase.ErrRollConflict)
	if w := doJSON(r, http.MethodPost, "/v1/inventory/roll-1/consume", `{"meters":1}`, nil); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}

	uc.EXPECT().Consume(gomock.Any(), "missing", 1.0).Return(entities.InventoryRoll{}, usecase.ErrRollNotFound)
	if w := doJSON(r, http.MethodPost, "/v1/inventory/missing/consume", `{"meters":1}`, nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestInventoryHandler_LowStock(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInventoryUseCase(ctrl)
	r := newInventoryRouter(NewInventoryHandler(uc, 5))

	uc.EXPECT().GetLowStock(gomock.Any(), nil).Return([]entities.InventoryRoll{{ID: "a", AvailableLength: 2}}, nil)
	if w := doJSON(r, http.MethodGet, "/v1/inventory/low-stock", "", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().GetLowStock(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, threshold *float64) ([]entities.InventoryRoll, error) {
		if threshold == nil || *threshold != 6 {
			t.Fatalf("unexpected threshold %v", threshold)
		}
		return []entities.InventoryRoll{}, nil
	})
	if w := doJSON(r, http.MethodGet, "/v1/inventory/low-stock?threshold=6", "", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if w := doJSON(r, http.MethodGet, "/v1/inventory/low-stock?threshold=abc", "", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestInventoryHandler_UpdateDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInventoryUseCase(ctrl)
	r := newInventoryRouter(NewInventoryHandler(uc, 5))

	uc.EXPECT().Update(gomock.Any(), "roll-1", gomock.Any()).DoAndReturn(func(_ any, _ string, in usecase.UpdateRollInput) (entities.InventoryRoll, error) {
		if !in.ClearThreshold || in.Supplier == nil || *in.Supplier != "Fornecedor X" {
			t.Fatalf("unexpected input: %+v", in)
		}
		return entities.InventoryRoll{ID: "roll-1"}, nil
	})
	if w := doJSON(r, http.MethodPatch, "/v1/inventory/roll-1", `{"supplier":"Fornecedor X","clear_threshold":true}`, nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().GetByID(gomock.Any(), "roll-1").Return(entities.InventoryRoll{ID: "roll-1"}, nil)
	if w := doJSON(r, http.MethodGet, "/v1/inventory/roll-1", "", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().List(gomock.Any()).Return([]entities.InventoryRoll{}, nil)
	if w := doJSON(r, http.MethodGet, "/v1/inventory", "", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().Delete(gomock.Any(), "roll-1").Return(nil)
	if w := doJSON(r, http.MethodDelete, "/v1/inventory/roll-1", "", nil); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
