package handlers

import (
	"net/http"

	"oficina_insufilm/internal/adapter/http/dto/request"
	"oficina_insufilm/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SettingsHandler exposes the single settings document.
type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		writeError(c, "settings", err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var payload request.SettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	s, err := h.usecase.Update(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, "settings", err)
		return
	}
	c.JSON(http.StatusOK, s)
}
