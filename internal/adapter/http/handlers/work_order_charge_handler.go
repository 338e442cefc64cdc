package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"oficina_insufilm/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

// Charge godoc
// @Summary  Charge the order total through Mercado Pago
// @Description Body is the Mercado Pago payment request, bare or wrapped in mp_payload.
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id   path string                true "Order id"
// @Param    body body request.ChargeRequest true "Provider payload"
// @Success  200 {object} response.PaymentResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /orders/{id}/charge [post]
func (h *WorkOrderHandler) Charge(c *gin.Context) {
	orderID := c.Param("id")
	log.Printf("[payment][handler] charge start order_id=%s", orderID)
	mpPayload, actor, err := readMPPayload(c)
	if err != nil {
		if h.paymentMock {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload order_id=%s err=%v", orderID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload order_id=%s err=%v", orderID, err)
			writeAppError(c, errInvalidPayload)
			return
		}
	}
	actor = actorFrom(c, actor)
	if actor == "" {
		writeAppError(c, errMissingActor)
		return
	}

	res, err := h.usecase.ChargePayment(c.Request.Context(), orderID, mpPayload, actor)
	if err != nil {
		log.Printf("[payment][handler] charge failed order_id=%s err=%v", orderID, err)
		writeError(c, "payment", err)
		return
	}
	status := ""
	if res.Charge != nil {
		status = string(res.Charge.Status)
	}
	log.Printf("[payment][handler] charge success order_id=%s status=%s", orderID, status)

	c.JSON(http.StatusOK, response.FromPaymentResult(res))
}

// ListCharges returns the provider charges of an order, newest first.
func (h *WorkOrderHandler) ListCharges(c *gin.Context) {
	orderID := c.Param("id")
	charges, err := h.usecase.ListCharges(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] list charges failed order_id=%s err=%v", orderID, err)
		writeError(c, "payment", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCharges(charges))
}

// readMPPayload accepts either {"mp_payload": {...}, "actor": "..."} or the
// bare Mercado Pago request as the body.
func readMPPayload(c *gin.Context) (json.RawMessage, string, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, "", err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), "", nil
	}
	if !json.Valid(raw) {
		return nil, "", errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		var actor string
		if rawActor, ok := envelope["actor"]; ok {
			_ = json.Unmarshal(rawActor, &actor)
		}
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, "", errors.New("mp_payload cannot be empty")
			}
			return wrapped, actor, nil
		}
		return json.RawMessage(raw), "", nil
	}

	return json.RawMessage(raw), "", nil
}
