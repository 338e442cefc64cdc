package handlers

import (
	"net/http"

	"oficina_insufilm/internal/adapter/http/dto/request"
	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler handles HTTP requests for installer schedule blocks.
type ScheduleHandler struct {
	usecase usecase.IScheduleUseCase
}

func NewScheduleHandler(uc usecase.IScheduleUseCase) *ScheduleHandler {
	return &ScheduleHandler{usecase: uc}
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	var payload request.ScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, "schedule", err)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, "schedule", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// List returns blocks by start time, filtered by ?start=&end= or
// ?installer_id=.
func (h *ScheduleHandler) List(c *gin.Context) {
	var (
		blocks []entities.ScheduleBlock
		err    error
	)
	switch {
	case c.Query("start") != "" || c.Query("end") != "":
		start, end, perr := request.ParsePeriod(c.Query("start"), c.Query("end"))
		if perr != nil {
			writeError(c, "schedule", perr)
			return
		}
		blocks, err = h.usecase.ListByPeriod(c.Request.Context(), start, end)
	case c.Query("installer_id") != "":
		blocks, err = h.usecase.ListByInstaller(c.Request.Context(), c.Query("installer_id"))
	default:
		blocks, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		writeError(c, "schedule", err)
		return
	}
	c.JSON(http.StatusOK, blocks)
}

func (h *ScheduleHandler) GetByID(c *gin.Context) {
	block, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "schedule", err)
		return
	}
	c.JSON(http.StatusOK, block)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	var payload request.ScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, "schedule", err)
		return
	}
	block, err := h.usecase.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, "schedule", err)
		return
	}
	c.JSON(http.StatusOK, block)
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, "schedule", err)
		return
	}
	c.Status(http.StatusNoContent)
}
