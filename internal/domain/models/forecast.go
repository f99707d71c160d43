package models

import "time"

// ForecastInput is one (timestamp, value) observation fed to the forecaster.
// Timestamp is timezone-naive: the exchange wall-clock date expressed in UTC.
type ForecastInput struct {
	Timestamp time.Time `json:"ds"`
	Value     float64   `json:"y"`
}

// ForecastPoint is one predicted row with its confidence interval.
type ForecastPoint struct {
	Timestamp time.Time `json:"ds"`
	Predicted float64   `json:"yhat"`
	Lower     float64   `json:"yhat_lower"`
	Upper     float64   `json:"yhat_upper"`
}

// Forecast covers every history timestamp followed by Horizon future days.
//
// swagger:model Forecast
type Forecast struct {
	Points     []ForecastPoint `json:"points"`
	HistoryLen int             `json:"history_len" example:"250"`
	Horizon    int             `json:"horizon" example:"30"`
}

// Last returns the final forecast point, or false if the forecast is empty.
func (f *Forecast) Last() (ForecastPoint, bool) {
	if f == nil || len(f.Points) == 0 {
		return ForecastPoint{}, false
	}
	return f.Points[len(f.Points)-1], true
}

// Future returns only the rows past the end of history.
func (f *Forecast) Future() []ForecastPoint {
	if f == nil || f.HistoryLen >= len(f.Points) {
		return nil
	}
	return f.Points[f.HistoryLen:]
}
