package models

import "time"

// PriceBar is one daily OHLC candle.
type PriceBar struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// PriceSeries is the daily history of one ticker, ascending by Time with a
// single bar per trading day. Bar times carry the exchange's UTC offset.
//
// swagger:model PriceSeries
type PriceSeries struct {
	Symbol   string     `json:"symbol" example:"RELIANCE.BSE"`
	Name     string     `json:"name" example:"Reliance Industries Limited"`
	Currency string     `json:"currency" example:"INR"`
	Exchange string     `json:"exchange" example:"BSE"`
	Period   Period     `json:"period" example:"1y"`
	Bars     []PriceBar `json:"bars"`
}

// Len returns the number of bars.
func (s *PriceSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Bars)
}

// Quote is the metadata returned by the live-price probe.
type Quote struct {
	Symbol    string  `json:"symbol"`
	LongName  string  `json:"long_name,omitempty"`
	ShortName string  `json:"short_name,omitempty"`
	Currency  string  `json:"currency,omitempty"`
	Exchange  string  `json:"exchange,omitempty"`
	Price     float64 `json:"price"`
	HasPrice  bool    `json:"has_price"`
}

// Name returns the most descriptive company name available, falling back to
// the symbol itself.
func (q *Quote) Name() string {
	switch {
	case q == nil:
		return ""
	case q.LongName != "":
		return q.LongName
	case q.ShortName != "":
		return q.ShortName
	default:
		return q.Symbol
	}
}

// Period selects how much daily history to fetch.
type Period string

const (
	Period1Y  Period = "1y"
	Period2Y  Period = "2y"
	Period5Y  Period = "5y"
	Period10Y Period = "10y"
	PeriodMax Period = "max"
)

// Periods lists the supported history periods in dropdown order.
func Periods() []Period {
	return []Period{Period1Y, Period2Y, Period5Y, Period10Y, PeriodMax}
}

// Valid reports whether p is one of the supported periods.
func (p Period) Valid() bool {
	for _, v := range Periods() {
		if p == v {
			return true
		}
	}
	return false
}
