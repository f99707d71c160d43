package marketdata

import (
	"time"

	"github.com/guttosm/tickercast/internal/domain/models"
)

// Normalize projects a price series onto (date, close) rows for the
// forecaster. Timestamps lose their zone: each bar's exchange wall-clock time
// is kept as-is and re-expressed in UTC. N bars always yield N rows in the
// same order.
func Normalize(series *models.PriceSeries) []models.ForecastInput {
	if series == nil {
		return nil
	}
	out := make([]models.ForecastInput, len(series.Bars))
	for i, b := range series.Bars {
		out[i] = models.ForecastInput{
			Timestamp: StripZone(b.Time),
			Value:     b.Close,
		}
	}
	return out
}

// StripZone keeps t's wall clock and drops its location.
func StripZone(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
