package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Selection is what the user picked for one analysis: the resolved ticker, the
// market suffix, the history period and the forecast horizon in days. It lives
// for a single request and is echoed back so the page can render from it.
type Selection struct {
	Symbol  string `json:"symbol" example:"TCS.NS"`
	Market  string `json:"market,omitempty" example:".NS"`
	Period  Period `json:"period" example:"1y"`
	Horizon int    `json:"horizon" example:"30"`
}

// NotAvailable stands in for profile fields the provider did not return.
const NotAvailable = "N/A"

// CompanyInfo is the descriptive block shown above the charts. Sector and
// Industry are NotAvailable when the profile lookup yields nothing.
type CompanyInfo struct {
	Name     string `json:"name" example:"Tata Consultancy Services Limited"`
	Sector   string `json:"sector" example:"Technology"`
	Industry string `json:"industry" example:"Information Technology Services"`
	Currency string `json:"currency,omitempty" example:"INR"`
	Exchange string `json:"exchange,omitempty" example:"NSI"`
}

// Profile is the company classification published by the market-data
// provider. Either field may be empty.
type Profile struct {
	Sector   string
	Industry string
}

// MarketData holds the latest close and its change against the previous one.
type MarketData struct {
	CurrentPrice  decimal.Decimal `json:"current_price" swaggertype:"number" example:"4012.55"`
	ChangePercent decimal.Decimal `json:"change_percent" swaggertype:"number" example:"-0.42"`
	AsOf          time.Time       `json:"as_of"`
}

// Summary compares the last observed close with the final predicted value.
type Summary struct {
	LastPrice      decimal.Decimal `json:"last_price" swaggertype:"number" example:"4012.55"`
	PredictedPrice decimal.Decimal `json:"predicted_price" swaggertype:"number" example:"4102.10"`
	ChangePercent  decimal.Decimal `json:"change_percent" swaggertype:"number" example:"2.23"`
	TargetDate     time.Time       `json:"target_date"`
}

// Analysis is the complete result of the analyse action.
type Analysis struct {
	Selection Selection    `json:"selection"`
	Company   CompanyInfo  `json:"company"`
	Market    MarketData   `json:"market"`
	Series    *PriceSeries `json:"series"`
	Forecast  *Forecast    `json:"forecast"`
	Summary   Summary      `json:"summary"`
}
