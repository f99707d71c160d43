package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tickercast/internal/domain/dto"
	"github.com/guttosm/tickercast/internal/domain/models"
	"github.com/guttosm/tickercast/internal/logger"
)

// StatusFor maps a failure kind to the HTTP status returned to clients.
// Errors without a kind are internal errors.
func StatusFor(kind models.Kind) int {
	switch kind {
	case models.KindInvalidRequest:
		return http.StatusBadRequest
	case models.KindInvalidSymbol, models.KindUnsupportedSymbol, models.KindFitFailed:
		return http.StatusUnprocessableEntity
	case models.KindNoHistory:
		return http.StatusNotFound
	case models.KindFetchFailed, models.KindSearchFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// MessageFor renders the user-facing message for err.
func MessageFor(err error) string {
	var f *models.Failure
	if !errors.As(err, &f) {
		return "Internal server error"
	}
	switch f.Kind {
	case models.KindInvalidRequest:
		if f.Err != nil {
			return "Invalid request: " + f.Err.Error()
		}
		return "Invalid request"
	case models.KindInvalidSymbol:
		return fmt.Sprintf("Invalid stock symbol: %s. Please check the symbol and try again.", f.Symbol)
	case models.KindUnsupportedSymbol:
		return fmt.Sprintf("The symbol '%s' is not supported. Please try a different symbol.", f.Symbol)
	case models.KindNoHistory:
		return fmt.Sprintf("No historical data found for symbol: %s. Please try another symbol.", f.Symbol)
	case models.KindFetchFailed:
		return fmt.Sprintf("Error fetching data for symbol %s.", f.Symbol)
	case models.KindSearchFailed:
		return "Error searching for stock symbols."
	case models.KindFitFailed:
		return fmt.Sprintf("Could not build a forecast for %s.", f.Symbol)
	default:
		return "Internal server error"
	}
}

// ErrorHandler renders the last error attached with c.Error as an
// ErrorResponse, unless a handler already wrote a body.
//
// Usage:
//
//	router.Use(middleware.ErrorHandler)
//	...
//	if err != nil { _ = c.Error(err); return }
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}
	err := c.Errors.Last().Err
	status := StatusFor(models.KindOf(err))
	if status >= http.StatusInternalServerError {
		logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	}
	c.JSON(status, dto.NewErrorResponse(MessageFor(err), err))
}

// AbortWithError stops the chain and writes an ErrorResponse with the given
// status and message.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
