package handlers

import (
	"log"
	"net/http"

	"oficina_insufilm/internal/adapter/http/dto/request"
	"oficina_insufilm/internal/adapter/http/dto/response"
	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WorkOrderHandler handles HTTP requests for work orders (ordens de serviço),
// their payments and the material they consume.
type WorkOrderHandler struct {
	usecase          usecase.IWorkOrderUseCase
	defaultThreshold float64
	paymentMock      bool
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase, defaultThreshold float64, paymentMock bool) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc, defaultThreshold: defaultThreshold, paymentMock: paymentMock}
}

// Create godoc
// @Summary  Open a work order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    body body request.CreateOrderRequest true "Order"
// @Success  201 {object} response.OrderResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /orders [post]
func (h *WorkOrderHandler) Create(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	actor := actorFrom(c, payload.Actor)
	if actor == "" {
		writeAppError(c, errMissingActor)
		return
	}
	in, err := payload.ToInput(actor)
	if err != nil {
		writeError(c, "order", err)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, "order", err)
		return
	}
	log.Printf("[order][handler] created order_id=%s total=%s", created.ID, created.Total.StringFixed(2))
	c.JSON(http.StatusCreated, response.FromOrder(created))
}

// List returns orders newest first, filtered by ?status= or ?assigned_to=.
func (h *WorkOrderHandler) List(c *gin.Context) {
	var (
		orders []entities.WorkOrder
		err    error
	)
	switch {
	case c.Query("status") != "":
		orders, err = h.usecase.GetByStatus(c.Request.Context(), entities.OrderStatus(c.Query("status")))
	case c.Query("assigned_to") != "":
		orders, err = h.usecase.GetByAssignedUser(c.Request.Context(), c.Query("assigned_to"))
	default:
		orders, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		writeError(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *WorkOrderHandler) GetByID(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// Update godoc
// @Summary  Patch a work order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id   path string                     true "Order id"
// @Param    body body request.UpdateOrderRequest true "Patch"
// @Success  200 {object} response.OrderResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /orders/{id} [patch]
func (h *WorkOrderHandler) Update(c *gin.Context) {
	var payload request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	actor := actorFrom(c, payload.Actor)
	if actor == "" {
		writeAppError(c, errMissingActor)
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		writeError(c, "order", err)
		return
	}
	o, err := h.usecase.Update(c.Request.Context(), c.Param("id"), patch, actor, payload.ChangeNote)
	if err != nil {
		writeError(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *WorkOrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	actor := actorFrom(c, payload.Actor)
	if actor == "" {
		writeAppError(c, errMissingActor)
		return
	}
	o, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.OrderStatus(payload.Status), actor)
	if err != nil {
		writeError(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// RecordPayment godoc
// @Summary  Record a received payment
// @Description Amount 0 books the order total. Creates a receita cash entry.
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id   path string                       true "Order id"
// @Param    body body request.RecordPaymentRequest true "Payment"
// @Success  201 {object} response.PaymentResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /orders/{id}/payments [post]
func (h *WorkOrderHandler) RecordPayment(c *gin.Context) {
	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	actor := actorFrom(c, payload.Actor)
	if actor == "" {
		writeAppError(c, errMissingActor)
		return
	}
	res, err := h.usecase.RecordPayment(c.Request.Context(), c.Param("id"), payload.Amount, entities.PaymentMethod(payload.Method), actor)
	if err != nil {
		writeError(c, "order", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromPaymentResult(res))
}

func (h *WorkOrderHandler) ConsumeMaterial(c *gin.Context) {
	var payload request.ConsumeMaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	actor := actorFrom(c, payload.Actor)
	if actor == "" {
		writeAppError(c, errMissingActor)
		return
	}
	res, err := h.usecase.ConsumeMaterial(c.Request.Context(), c.Param("id"), payload.RollID, payload.Meters, actor)
	if err != nil {
		writeError(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromMaterialResult(res, h.defaultThreshold))
}

func (h *WorkOrderHandler) Reconcile(c *gin.Context) {
	rec, err := h.usecase.Reconcile(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *WorkOrderHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, "order", err)
		return
	}
	c.Status(http.StatusNoContent)
}
