package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/ports/services"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/dto"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/middleware"
)

// ratesHandler handles HTTP requests for the stored rate snapshot.
type ratesHandler struct {
	ratesService portssvc.RatesSvcFacade
	syncService  portssvc.RateSyncSvcFacade
}

// newRatesHandler creates a new ratesHandler.
func newRatesHandler(rs portssvc.RatesSvcFacade, ss portssvc.RateSyncSvcFacade) *ratesHandler {
	return &ratesHandler{ratesService: rs, syncService: ss}
}

// registerRatesRoutes registers routes for reading and refreshing rates.
func registerRatesRoutes(rg *gin.RouterGroup, rs portssvc.RatesSvcFacade, ss portssvc.RateSyncSvcFacade, hs portssvc.HistorySvcFacade) {
	h := newRatesHandler(rs, ss)
	hh := newHistoryHandler(hs)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.listRates)
		rates.GET("/spreads", h.listRatesWithSpreads)
		rates.POST("/update", h.updateRates)
		rates.GET("/:code/history", hh.getHistory)
	}
}

// listRates returns the stored last-rates snapshot.
func (h *ratesHandler) listRates(c *gin.Context) {
	entries, err := h.ratesService.CurrentRates(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rates": dto.ToListRateResponse(entries)})
}

// listRatesWithSpreads returns the snapshot with derived buy/sell rates.
func (h *ratesHandler) listRatesWithSpreads(c *gin.Context) {
	entries, err := h.ratesService.RatesWithSpreads(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rates": dto.ToListRateWithSpreadsResponse(entries)})
}

// updateRates triggers one synchronization run against the upstream source.
func (h *ratesHandler) updateRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to update rates")

	entries, err := h.syncService.SyncRates(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Rates updated", slog.Int("count", len(entries)))
	c.JSON(http.StatusOK, gin.H{"updated": len(entries), "rates": dto.ToListRateResponse(entries)})
}
