package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_insufilm/internal/adapter/http/dto/request"
	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase"

	"github.com/gin-gonic/gin"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		err  error
		code int
		body string
	}{
		{usecase.ErrInvalidOrderID, http.StatusBadRequest, "VALIDATION_ERROR"},
		{usecase.ErrInvalidProviderPayload, http.StatusBadRequest, "VALIDATION_ERROR"},
		{fmt.Errorf("x: %w", entities.ErrTransitionNotAllowed), http.StatusBadRequest, "VALIDATION_ERROR"},
		{request.ErrInvalidDate, http.StatusBadRequest, "INVALID_REQUEST"},
		{request.ErrInvalidPeriod, http.StatusBadRequest, "INVALID_REQUEST"},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest, "INVALID_REQUEST"},
		{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest, "PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND"},
		{usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest, "PAYMENT_PROVIDER_INVALID_USERS"},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized, "PAYMENT_PROVIDER_UNAUTHORIZED"},
		{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable, "PAYMENT_PROVIDER_UNAVAILABLE"},
		{usecase.ErrOrderNotFound, http.StatusNotFound, "ORDER_NOT_FOUND"},
		{usecase.ErrRollNotFound, http.StatusNotFound, "ROLL_NOT_FOUND"},
		{usecase.ErrCustomerNotFound, http.StatusNotFound, "CUSTOMER_NOT_FOUND"},
		{usecase.ErrVehicleNotFound, http.StatusNotFound, "VEHICLE_NOT_FOUND"},
		{usecase.ErrServiceNotFound, http.StatusNotFound, "SERVICE_NOT_FOUND"},
		{usecase.ErrCashEntryNotFound, http.StatusNotFound, "CASH_ENTRY_NOT_FOUND"},
		{usecase.ErrScheduleBlockNotFound, http.StatusNotFound, "SCHEDULE_BLOCK_NOT_FOUND"},
		{entities.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{usecase.ErrOrderAlreadyPaid, http.StatusConflict, "ORDER_ALREADY_PAID"},
		{usecase.ErrRollConflict, http.StatusConflict, "CONFLICT"},
		{entities.ErrVersionConflict, http.StatusConflict, "CONFLICT"},
		{errors.New("other"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		got := mapError(tc.err)
		if got.HTTPStatus != tc.code || got.Code != tc.body {
			t.Fatalf("for err %v expected %d/%s got %d/%s", tc.err, tc.code, tc.body, got.HTTPStatus, got.Code)
		}
	}
}

func TestActorFrom(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	if got := actorFrom(c, ""); got != "" {
		t.Fatalf("expected empty actor, got %q", got)
	}
	c.Request.Header.Set(HeaderUserID, " user-9 ")
	if got := actorFrom(c, ""); got != "user-9" {
		t.Fatalf("expected header actor, got %q", got)
	}
	if got := actorFrom(c, " ana "); got != "ana" {
		t.Fatalf("expected body actor, got %q", got)
	}
}
