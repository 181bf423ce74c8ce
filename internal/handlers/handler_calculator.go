package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/apperrors"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/domain"
	portssvc "github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/core/ports/services"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/dto"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/middleware"
)

// calculatorHandler handles HTTP requests for currency conversions.
type calculatorHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

// newCalculatorHandler creates a new calculatorHandler.
func newCalculatorHandler(cs portssvc.ConversionSvcFacade) *calculatorHandler {
	return &calculatorHandler{conversionService: cs}
}

// registerCalculatorRoutes registers conversion routes.
func registerCalculatorRoutes(rg *gin.RouterGroup, cs portssvc.ConversionSvcFacade) {
	h := newCalculatorHandler(cs)

	calculator := rg.Group("/calculator")
	{
		calculator.POST("/convert", h.convert)
	}
}

// convert performs one conversion between two currencies.
func (h *calculatorHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error()))
		return
	}

	operation, err := domain.ParseOperation(req.OperationType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Received conversion request",
		slog.String("from", req.FromCurrency),
		slog.String("to", req.ToCurrency),
		slog.String("operation", string(operation)),
	)

	conv, err := h.conversionService.Convert(c.Request.Context(), req.Amount, req.FromCurrency, req.ToCurrency, operation)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToConvertResponse(conv))
}
