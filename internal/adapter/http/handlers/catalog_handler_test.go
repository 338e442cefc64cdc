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

func TestCustomerHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICustomerUseCase(ctrl)
	h := NewCustomerHandler(uc)
	r := gin.New()
	r.POST("/v1/customers", h.Create)
	r.GET("/v1/customers", h.List)
	r.GET("/v1/customers/:id", h.GetByID)
	r.PUT("/v1/customers/:id", h.Update)
	r.DELETE("/v1/customers/:id", h.Delete)

	if w := doJSON(r, http.MethodPost, "/v1/customers", `{"phone":"11999990000"}`, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without name, got %d", w.Code)
	}

	uc.EXPECT().Create(gomock.Any(), usecase.CustomerInput{Name: "Ana", Phone: "11999990000"}).
		Return(entities.Customer{ID: "c1", Name: "Ana", Phone: "11999990000"}, nil)
	if w := doJSON(r, http.MethodPost, "/v1/customers", `{"name":"Ana","phone":"11999990000"}`, nil); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	uc.EXPECT().Search(gomock.Any(), "ana").Return([]entities.Customer{{ID: "c1", Name: "Ana"}}, nil)
	w := doJSON(r, http.MethodGet, "/v1/customers?q=ana", "", nil)
	var found []entities.Customer
	_ = json.Unmarshal(w.Body.Bytes(), &found)
	if w.Code != http.StatusOK || len(found) != 1 {
		t.Fatalf("unexpected search response %d: %s", w.Code, w.Body.String())
	}

	uc.EXPECT().List(gomock.Any()).Return([]entities.Customer{}, nil)
	if w := doJSON(r, http.MethodGet, "/v1/customers", "", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Customer{}, usecase.ErrCustomerNotFound)
	if w := doJSON(r, http.MethodGet, "/v1/customers/missing", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	uc.EXPECT().Update(gomock.Any(), "c1", gomock.Any()).Return(entities.Customer{ID: "c1", Name: "Ana Maria"}, nil)
	if w := doJSON(r, http.MethodPut, "/v1/customers/c1", `{"name":"Ana Maria"}`, nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().Delete(gomock.Any(), "c1").Return(nil)
	if w := doJSON(r, http.MethodDelete, "/v1/customers/c1", "", nil); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestVehicleHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIVehicleUseCase(ctrl)
	h := NewVehicleHandler(uc)
	r := gin.New()
	r.POST("/v1/vehicles", h.Create)
	r.GET("/v1/vehicles", h.List)

	uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Vehicle{}, usecase.ErrCustomerNotFound)
	if w := doJSON(r, http.MethodPost, "/v1/vehicles", `{"customer_id":"nope","plate":"ABC1D23","brand":"Fiat","model":"Uno"}`, nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown owner, got %d", w.Code)
	}

	uc.EXPECT().ListByCustomer(gomock.Any(), "c1").Return([]entities.Vehicle{{ID: "v1", CustomerID: "c1"}}, nil)
	if w := doJSON(r, http.MethodGet, "/v1/vehicles?customer_id=c1", "", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().List(gomock.Any()).Return([]entities.Vehicle{}, nil)
	if w := doJSON(r, http.MethodGet, "/v1/vehicles", "", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestServiceHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIServiceCatalogUseCase(ctrl)
	h := NewServiceHandler(uc)
	r := gin.New()
	r.POST("/v1/services", h.Create)
	r.GET("/v1/services", h.List)

	uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.ServiceInput) (entities.ServiceItem, error) {
		if in.Active != nil || !in.BasePrice.Equal(decimal.RequireFromString("350.00")) {
			t.Fatalf("unexpected input: %+v", in)
		}
		return entities.ServiceItem{ID: "s1", Name: in.Name, BasePrice: in.BasePrice, Active: true}, nil
	})
	if w := doJSON(r, http.MethodPost, "/v1/services", `{"name":"Insulfilm completo","base_price":"350.00"}`, nil); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	uc.EXPECT().ListActive(gomock.Any()).Return([]entities.ServiceItem{{ID: "s1", Active: true}}, nil)
	if w := doJSON(r, http.MethodGet, "/v1/services?active=true", "", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().List(gomock.Any()).Return([]entities.ServiceItem{}, nil)
	if w := doJSON(r, http.MethodGet, "/v1/services", "", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestScheduleHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIScheduleUseCase(ctrl)
	h := NewScheduleHandler(uc)
	r := gin.New()
	r.POST("/v1/schedule", h.Create)
	r.GET("/v1/schedule", h.List)

	uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.ScheduleInput) (entities.ScheduleBlock, error) {
		wantEnd := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC).Add(24*time.Hour - time.Nanosecond)
		if !in.End.Equal(wantEnd) || in.InstallerID != "u2" {
			t.Fatalf("unexpected input: %+v", in)
		}
		return entities.ScheduleBlock{ID: "b1", Title: in.Title, Start: in.Start, End: in.End}, nil
	})
	body := `{"title":"Civic","start":"2024-03-05T09:00:00Z","end":"2024-03-05","installer_id":"u2"}`
	if w := doJSON(r, http.MethodPost, "/v1/schedule", body, nil); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	if w := doJSON(r, http.MethodPost, "/v1/schedule", `{"title":"Civic","start":"amanha","end":"2024-03-05"}`, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad start, got %d", w.Code)
	}

	uc.EXPECT().ListByPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.ScheduleBlock{}, nil)
	if w := doJSON(r, http.MethodGet, "/v1/schedule?start=2024-03-01&end=2024-03-07", "", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().ListByInstaller(gomock.Any(), "u2").Return([]entities.ScheduleBlock{}, nil)
	if w := doJSON(r, http.MethodGet, "/v1/schedule?installer_id=u2", "", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestSettingsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISettingsUseCase(ctrl)
	h := NewSettingsHandler(uc)
	r := gin.New()
	r.GET("/v1/settings", h.Get)
	r.PUT("/v1/settings", h.Update)

	uc.EXPECT().Get(gomock.Any()).Return(entities.DefaultSettings(), nil)
	w := doJSON(r, http.MethodGet, "/v1/settings", "", nil)
	var got entities.AppSettings
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if w.Code != http.StatusOK || got != entities.DefaultSettings() {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}

	if w := doJSON(r, http.MethodPut, "/v1/settings", `{"payment":{"pix":true}}`, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without shop name, got %d", w.Code)
	}

	want := entities.AppSettings{
		Payment: entities.PaymentConfig{Pix: true},
		Shop:    entities.ShopInfo{Name: "Insulfilm Centro"},
	}
	uc.EXPECT().Update(gomock.Any(), want).Return(want, nil)
	if w := doJSON(r, http.MethodPut, "/v1/settings", `{"payment":{"pix":true},"shop":{"name":"Insulfilm Centro"}}`, nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
