package handlers

import (
	"log"
	"net/http"
	"strconv"

	"oficina_insufilm/internal/adapter/http/dto/request"
	"oficina_insufilm/internal/adapter/http/dto/response"
	"oficina_insufilm/internal/usecase"
	"oficina_insufilm/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidThresholdQuery = pkg.NewDomainErrorSimple("INVALID_REQUEST", "threshold must be a number", http.StatusBadRequest)

// InventoryHandler handles HTTP requests for film rolls.
type InventoryHandler struct {
	usecase          usecase.IInventoryUseCase
	defaultThreshold float64
}

func NewInventoryHandler(uc usecase.IInventoryUseCase, defaultThreshold float64) *InventoryHandler {
	return &InventoryHandler{usecase: uc, defaultThreshold: defaultThreshold}
}

// Create godoc
// @Summary  Register a film roll
// @Tags     inventory
// @Accept   json
// @Produce  json
// @Param    body body request.CreateRollRequest true "Roll"
// @Success  201 {object} response.RollResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /inventory [post]
func (h *InventoryHandler) Create(c *gin.Context) {
	var payload request.CreateRollRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, "inventory", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromRoll(created, h.defaultThreshold))
}

func (h *InventoryHandler) List(c *gin.Context) {
	rolls, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, "inventory", err)
		return
	}
	c.JSON(http.StatusOK, response.FromRolls(rolls, h.defaultThreshold))
}

func (h *InventoryHandler) GetByID(c *gin.Context) {
	roll, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "inventory", err)
		return
	}
	c.JSON(http.StatusOK, response.FromRoll(roll, h.defaultThreshold))
}

func (h *InventoryHandler) Update(c *gin.Context) {
	var payload request.UpdateRollRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	roll, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, "inventory", err)
		return
	}
	c.JSON(http.StatusOK, response.FromRoll(roll, h.defaultThreshold))
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, "inventory", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Consume godoc
// @Summary  Consume metres from a roll
// @Tags     inventory
// @Accept   json
// @Produce  json
// @Param    id   path string                 true "Roll id"
// @Param    body body request.ConsumeRequest true "Metres"
// @Success  200 {object} response.RollResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /inventory/{id}/consume [post]
func (h *InventoryHandler) Consume(c *gin.Context) {
	var payload request.ConsumeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	roll, err := h.usecase.Consume(c.Request.Context(), c.Param("id"), payload.Meters)
	if err != nil {
		writeError(c, "inventory", err)
		return
	}
	c.JSON(http.StatusOK, response.FromRoll(roll, h.defaultThreshold))
}

func (h *InventoryHandler) Restock(c *gin.Context) {
	var payload request.RestockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	roll, err := h.usecase.Restock(c.Request.Context(), c.Param("id"), payload.Meters, payload.Note)
	if err != nil {
		writeError(c, "inventory", err)
		return
	}
	c.JSON(http.StatusOK, response.FromRoll(roll, h.defaultThreshold))
}

// LowStock lists rolls at or below their alert level. ?threshold= replaces
// the default used for rolls without a threshold of their own.
func (h *InventoryHandler) LowStock(c *gin.Context) {
	var threshold *float64
	if raw := c.Query("threshold"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Printf("[inventory][handler] invalid threshold query value=%q", raw)
			writeAppError(c, errInvalidThresholdQuery)
			return
		}
		threshold = &v
	}
	rolls, err := h.usecase.GetLowStock(c.Request.Context(), threshold)
	if err != nil {
		writeError(c, "inventory", err)
		return
	}
	c.JSON(http.StatusOK, response.FromRolls(rolls, h.defaultThreshold))
}
