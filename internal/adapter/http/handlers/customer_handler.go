package handlers

import (
	"net/http"

	"oficina_insufilm/internal/adapter/http/dto/request"
	"oficina_insufilm/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// Create godoc
// @Summary  Create customer
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    body body request.CustomerRequest true "Customer"
// @Success  201 {object} entities.Customer
// @Failure  400 {object} pkg.HTTPError
// @Router   /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, "customer", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// List returns all customers ordered by name, or the ones matching ?q=.
func (h *CustomerHandler) List(c *gin.Context) {
	if term := c.Query("q"); term != "" {
		found, err := h.usecase.Search(c.Request.Context(), term)
		if err != nil {
			writeError(c, "customer", err)
			return
		}
		c.JSON(http.StatusOK, found)
		return
	}
	all, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, "customer", err)
		return
	}
	c.JSON(http.StatusOK, all)
}

func (h *CustomerHandler) GetByID(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "customer", err)
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, "customer", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, "customer", err)
		return
	}
	c.Status(http.StatusNoContent)
}
