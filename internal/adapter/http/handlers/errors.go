package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"oficina_insufilm/internal/adapter/http/dto/request"
	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase"
	"oficina_insufilm/pkg"

	"github.com/gin-gonic/gin"
)

// HeaderUserID carries the acting user when the body does not name one.
const HeaderUserID = "X-User-ID"

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errMissingActor   = pkg.NewDomainErrorSimple("MISSING_ACTOR", "actor or X-User-ID header is required", http.StatusBadRequest)
)

// mapError translates use case errors into the HTTP error contract.
func mapError(err error) *pkg.AppError {
	var verr entities.ValidationError
	switch {
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, request.ErrInvalidDate), errors.Is(err, request.ErrInvalidPeriod):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.As(err, &verr):
		return pkg.NewDomainError("VALIDATION_ERROR", verr.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRollNotFound):
		return pkg.NewDomainErrorSimple("ROLL_NOT_FOUND", "Inventory roll not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCashEntryNotFound):
		return pkg.NewDomainErrorSimple("CASH_ENTRY_NOT_FOUND", "Cash entry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrScheduleBlockNotFound):
		return pkg.NewDomainErrorSimple("SCHEDULE_BLOCK_NOT_FOUND", "Schedule block not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyPaid):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_PAID", "Work order already paid", http.StatusConflict)
	case errors.Is(err, entities.ErrConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Resource modified concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, area string, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[%s][handler] request failed path=%s err=%v", area, c.FullPath(), err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// actorFrom prefers the actor named in the body and falls back to the
// X-User-ID header.
func actorFrom(c *gin.Context, fromBody string) string {
	if v := strings.TrimSpace(fromBody); v != "" {
		return v
	}
	return strings.TrimSpace(c.GetHeader(HeaderUserID))
}
