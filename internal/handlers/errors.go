package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/apperrors"
	"github.com/ChSylwia/kantor-walut-zadanie-rekrutacyjne/internal/middleware"
)

// respondWithError maps a service error onto an HTTP status and JSON body.
func respondWithError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrOperationUnavailable):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrCurrencyUnavailable):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrInsufficientTables),
		errors.Is(err, apperrors.ErrUpstream),
		errors.Is(err, apperrors.ErrMaxRetries):
		status = http.StatusBadGateway
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.String("error", err.Error()))
	} else {
		logger.Warn("Request rejected", slog.String("error", err.Error()), slog.Int("status", status))
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
