package marketdata

import (
	"context"

	"github.com/guttosm/tickercast/internal/domain/models"
	"github.com/guttosm/tickercast/internal/logger"
)

// QuoteSource is the part of Provider the validator needs.
type QuoteSource interface {
	Quote(ctx context.Context, symbol string) (*models.Quote, error)
}

// Validator decides whether a ticker resolves to live pricing.
type Validator struct {
	quotes QuoteSource
}

// NewValidator creates a Validator backed by quotes.
func NewValidator(quotes QuoteSource) *Validator {
	return &Validator{quotes: quotes}
}

// Validate reports whether the provider has a live price for symbol. Every
// failure, including a missing price field, yields false.
func (v *Validator) Validate(ctx context.Context, symbol string) bool {
	if symbol == "" {
		return false
	}
	q, err := v.quotes.Quote(ctx, symbol)
	if err != nil {
		logger.L().Debug().Str("symbol", symbol).Err(err).Msg("symbol probe failed")
		return false
	}
	return q != nil && q.HasPrice
}
