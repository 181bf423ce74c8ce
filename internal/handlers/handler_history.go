package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/domain"
	portssvc "github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/ports/services"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/dto"
)

// historyHandler handles HTTP requests for currency rate history.
type historyHandler struct {
	historyService portssvc.HistorySvcFacade
}

// newHistoryHandler creates a new historyHandler.
func newHistoryHandler(hs portssvc.HistorySvcFacade) *historyHandler {
	return &historyHandler{historyService: hs}
}

// getHistory returns up to the last 14 observations for a currency, optionally
// ending at ?endDate=YYYY-MM-DD instead of today.
func (h *historyHandler) getHistory(c *gin.Context) {
	code, err := domain.ParseCurrencyCode(c.Param("code"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	var anchor *domain.ExchangeDate
	if raw := c.Query("endDate"); raw != "" {
		parsed, err := domain.ParseExchangeDate(raw)
		if err != nil {
			respondWithError(c, err)
			return
		}
		anchor = &parsed
	}

	history, err := h.historyService.History(c.Request.Context(), code, anchor)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToHistoryResponse(history))
}
