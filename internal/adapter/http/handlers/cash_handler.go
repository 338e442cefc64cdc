package handlers

import (
	"net/http"

	"oficina_insufilm/internal/adapter/http/dto/request"
	"oficina_insufilm/internal/domain/entities"
	"oficina_insufilm/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CashHandler handles HTTP requests for the cash ledger.
type CashHandler struct {
	usecase usecase.ICashUseCase
}

func NewCashHandler(uc usecase.ICashUseCase) *CashHandler {
	return &CashHandler{usecase: uc}
}

// Create godoc
// @Summary  Book a cash entry
// @Tags     cash
// @Accept   json
// @Produce  json
// @Param    body body request.CreateCashEntryRequest true "Entry"
// @Success  201 {object} entities.CashEntry
// @Failure  400 {object} pkg.HTTPError
// @Router   /cash [post]
func (h *CashHandler) Create(c *gin.Context) {
	var payload request.CreateCashEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	by := actorFrom(c, payload.By)
	if by == "" {
		writeAppError(c, errMissingActor)
		return
	}
	in, err := payload.ToInput(by)
	if err != nil {
		writeError(c, "cash", err)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, "cash", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// List returns entries newest first. ?start=&end= limits them to a period and
// ?type= to receitas or despesas.
func (h *CashHandler) List(c *gin.Context) {
	var (
		entries []entities.CashEntry
		err     error
	)
	switch {
	case c.Query("start") != "" || c.Query("end") != "":
		start, end, perr := request.ParsePeriod(c.Query("start"), c.Query("end"))
		if perr != nil {
			writeError(c, "cash", perr)
			return
		}
		entries, err = h.usecase.ListByPeriod(c.Request.Context(), start, end)
	case c.Query("type") != "":
		entries, err = h.usecase.ListByType(c.Request.Context(), entities.CashEntryType(c.Query("type")))
	default:
		entries, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		writeError(c, "cash", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *CashHandler) ListByOrder(c *gin.Context) {
	entries, err := h.usecase.ListByOrder(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		writeError(c, "cash", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Summary godoc
// @Summary  Totals of a period
// @Description Both ends are inclusive; a bare end date covers the whole day.
// @Tags     cash
// @Produce  json
// @Param    start query string true "RFC3339 or YYYY-MM-DD"
// @Param    end   query string true "RFC3339 or YYYY-MM-DD"
// @Success  200 {object} entities.CashSummary
// @Failure  400 {object} pkg.HTTPError
// @Router   /cash/summary [get]
func (h *CashHandler) Summary(c *gin.Context) {
	start, end, err := request.ParsePeriod(c.Query("start"), c.Query("end"))
	if err != nil {
		writeError(c, "cash", err)
		return
	}
	summary, err := h.usecase.SummaryByPeriod(c.Request.Context(), start, end)
	if err != nil {
		writeError(c, "cash", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *CashHandler) GetByID(c *gin.Context) {
	entry, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "cash", err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *CashHandler) Update(c *gin.Context) {
	var payload request.UpdateCashEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, "cash", err)
		return
	}
	entry, err := h.usecase.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, "cash", err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *CashHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, "cash", err)
		return
	}
	c.Status(http.StatusNoContent)
}
