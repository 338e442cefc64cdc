package handlers

import (
	"net/http"

	"oficina_insufilm/internal/adapter/http/dto/request"
	"oficina_insufilm/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ServiceHandler handles HTTP requests for the service catalog.
type ServiceHandler struct {
	usecase usecase.IServiceCatalogUseCase
}

func NewServiceHandler(uc usecase.IServiceCatalogUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, "service", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// List returns the catalog; ?active=true limits it to active services.
func (h *ServiceHandler) List(c *gin.Context) {
	if c.Query("active") == "true" {
		active, err := h.usecase.ListActive(c.Request.Context())
		if err != nil {
			writeError(c, "service", err)
			return
		}
		c.JSON(http.StatusOK, active)
		return
	}
	all, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, "service", err)
		return
	}
	c.JSON(http.StatusOK, all)
}

func (h *ServiceHandler) GetByID(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "service", err)
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, "service", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, "service", err)
		return
	}
	c.Status(http.StatusNoContent)
}
