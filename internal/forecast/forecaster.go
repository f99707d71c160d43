package forecast

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/guttosm/tickercast/internal/domain/models"
	"github.com/guttosm/tickercast/internal/logger"
	"github.com/guttosm/tickercast/internal/metrics"
)

// Predictor produces a forecast for a normalised series.
type Predictor interface {
	Forecast(ctx context.Context, input []models.ForecastInput, horizon int) (*models.Forecast, error)
}

// Forecaster fits an additive trend + seasonality model per call. It holds
// no state between calls.
type Forecaster struct {
	opts Options
	log  zerolog.Logger
}

// New creates a Forecaster with the given options.
func New(opts Options) *Forecaster {
	return &Forecaster{opts: opts, log: logger.Component("forecast")}
}

// Forecast fits the model on input and predicts every history timestamp
// plus horizon calendar days after the last one. The result has
// len(input)+horizon points. Fit problems are reported as a single
// KindFitFailed failure; no partial output is returned.
func (f *Forecaster) Forecast(ctx context.Context, input []models.ForecastInput, horizon int) (*models.Forecast, error) {
	if horizon < 1 {
		return nil, models.NewFailure(models.KindInvalidRequest, "", fmt.Errorf("horizon must be positive, got %d", horizon))
	}
	if err := ctx.Err(); err != nil {
		return nil, models.NewFailure(models.KindFitFailed, "", err)
	}

	start := time.Now()
	ts := make([]time.Time, len(input))
	ys := make([]float64, len(input))
	for i, in := range input {
		ts[i] = in.Timestamp
		ys[i] = in.Value
	}

	m, err := fit(f.opts, ts, ys)
	if err != nil {
		return nil, models.NewFailure(models.KindFitFailed, "", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, models.NewFailure(models.KindFitFailed, "", err)
	}

	last := ts[len(ts)-1]
	all := make([]time.Time, 0, len(ts)+horizon)
	all = append(all, ts...)
	for d := 1; d <= horizon; d++ {
		all = append(all, last.AddDate(0, 0, d))
	}

	yhat, half := m.predict(all)
	points := make([]models.ForecastPoint, len(all))
	for i, t := range all {
		points[i] = models.ForecastPoint{
			Timestamp: t,
			Predicted: yhat[i],
			Lower:     yhat[i] - half[i],
			Upper:     yhat[i] + half[i],
		}
	}

	elapsed := time.Since(start)
	metrics.ObserveFit(elapsed)
	f.log.Debug().
		Int("history", len(input)).
		Int("horizon", horizon).
		Int("changepoints", len(m.changepoints)).
		Float64("sigma", m.sigma*m.yScale).
		Dur("elapsed", elapsed).
		Msg("forecast fitted")

	return &models.Forecast{Points: points, HistoryLen: len(input), Horizon: horizon}, nil
}
