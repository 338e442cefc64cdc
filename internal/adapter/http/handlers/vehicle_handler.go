package handlers

import (
	"net/http"

	"oficina_insufilm/internal/adapter/http/dto/request"
	"oficina_insufilm/internal/usecase"

	"github.com/gin-gonic/gin"
)

// VehicleHandler handles HTTP requests for customer vehicles.
type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

func (h *VehicleHandler) Create(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, "vehicle", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// List returns every vehicle, or the ones of ?customer_id=.
func (h *VehicleHandler) List(c *gin.Context) {
	if customerID := c.Query("customer_id"); customerID != "" {
		found, err := h.usecase.ListByCustomer(c.Request.Context(), customerID)
		if err != nil {
			writeError(c, "vehicle", err)
			return
		}
		c.JSON(http.StatusOK, found)
		return
	}
	all, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, "vehicle", err)
		return
	}
	c.JSON(http.StatusOK, all)
}

func (h *VehicleHandler) GetByID(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "vehicle", err)
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *VehicleHandler) Update(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, "vehicle", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *VehicleHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, "vehicle", err)
		return
	}
	c.Status(http.StatusNoContent)
}
