package dto

import (
	"time"

	"github.com/guttosm/tickercast/internal/domain/models"
)

// SearchResponse is returned by GET /api/v1/symbols/search.
//
// Message is set when the query produced no live symbols; Error is set when
// the search backend failed. Results is never null.
type SearchResponse struct {
	Query   string                `json:"query" example:"reliance"`
	Results []models.SearchResult `json:"results"`
	Message string                `json:"message,omitempty" example:"No valid companies found. Please try a different search query."`
	Error   string                `json:"error,omitempty"`
}

// ValidateResponse is returned by GET /api/v1/symbols/{symbol}/validate.
type ValidateResponse struct {
	Symbol string `json:"symbol" example:"AAPL"`
	Valid  bool   `json:"valid" example:"true"`
}

// Candle is one OHLC row for the candlestick chart.
type Candle struct {
	Date   string  `json:"date" example:"2024-03-01"`
	Open   float64 `json:"open" example:"101.2"`
	High   float64 `json:"high" example:"103.9"`
	Low    float64 `json:"low" example:"100.4"`
	Close  float64 `json:"close" example:"102.7"`
	Volume float64 `json:"volume" example:"1250000"`
}

// HistoryResponse is returned by GET /api/v1/history/{symbol}.
type HistoryResponse struct {
	Symbol   string   `json:"symbol" example:"TCS.NS"`
	Name     string   `json:"name,omitempty" example:"Tata Consultancy Services Limited"`
	Currency string   `json:"currency,omitempty" example:"INR"`
	Period   string   `json:"period" example:"1y"`
	Candles  []Candle `json:"candles"`
}

// ForecastRow is one forecast point with a date-only timestamp.
type ForecastRow struct {
	Date      string  `json:"date" example:"2024-04-01"`
	Predicted float64 `json:"yhat" example:"105.3"`
	Lower     float64 `json:"yhat_lower" example:"98.1"`
	Upper     float64 `json:"yhat_upper" example:"112.6"`
	Future    bool    `json:"future" example:"true"`
}

// AnalysisResponse is returned by GET /api/v1/analysis.
type AnalysisResponse struct {
	Selection models.Selection   `json:"selection"`
	Company   models.CompanyInfo `json:"company"`
	Market    models.MarketData  `json:"market"`
	Candles   []Candle           `json:"candles"`
	Forecast  []ForecastRow      `json:"forecast"`
	Summary   models.Summary     `json:"summary"`
}

const dateLayout = "2006-01-02"

// CandlesFrom converts a price series to chart rows. Dates are the exchange
// calendar dates.
func CandlesFrom(series *models.PriceSeries) []Candle {
	if series == nil {
		return []Candle{}
	}
	out := make([]Candle, len(series.Bars))
	for i, b := range series.Bars {
		out[i] = Candle{
			Date:   b.Time.Format(dateLayout),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		}
	}
	return out
}

// NewHistoryResponse builds the history payload for series.
func NewHistoryResponse(series *models.PriceSeries) HistoryResponse {
	return HistoryResponse{
		Symbol:   series.Symbol,
		Name:     series.Name,
		Currency: series.Currency,
		Period:   string(series.Period),
		Candles:  CandlesFrom(series),
	}
}

// NewAnalysisResponse flattens an analysis into chart-ready rows.
func NewAnalysisResponse(a *models.Analysis) AnalysisResponse {
	resp := AnalysisResponse{
		Selection: a.Selection,
		Company:   a.Company,
		Market:    a.Market,
		Candles:   CandlesFrom(a.Series),
		Forecast:  []ForecastRow{},
		Summary:   a.Summary,
	}
	if a.Forecast != nil {
		resp.Forecast = make([]ForecastRow, len(a.Forecast.Points))
		for i, p := range a.Forecast.Points {
			resp.Forecast[i] = ForecastRow{
				Date:      formatDate(p.Timestamp),
				Predicted: p.Predicted,
				Lower:     p.Lower,
				Upper:     p.Upper,
				Future:    i >= a.Forecast.HistoryLen,
			}
		}
	}
	return resp
}

func formatDate(t time.Time) string { return t.Format(dateLayout) }
