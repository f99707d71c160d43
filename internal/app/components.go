package app

import (
	"fmt"

	"github.com/guttosm/tickercast/config"
	"github.com/guttosm/tickercast/internal/forecast"
	"github.com/guttosm/tickercast/internal/marketdata"
	"github.com/guttosm/tickercast/internal/markets"
	"github.com/guttosm/tickercast/internal/search"
	"github.com/guttosm/tickercast/internal/service"
	"github.com/guttosm/tickercast/internal/upstream"
)

// userAgent is sent to the market-data provider, which rejects requests
// without one.
const userAgent = "Mozilla/5.0 (compatible; tickercast/1.0)"

// Components are the collaborators shared by the API server and the
// one-shot analyze mode.
type Components struct {
	Service service.AnalysisService
	Catalog *markets.Catalog

	clients []*upstream.Client
}

// Close releases idle upstream connections.
func (c *Components) Close() {
	for _, cl := range c.clients {
		cl.CloseIdleConnections()
	}
}

// BuildComponents wires the search, market-data and forecast clients from cfg.
//
// Returns an error if a required setting is missing; nothing is dialled here.
func BuildComponents(cfg config.Config) (*Components, error) {
	if cfg.Finnhub.APIKey == "" {
		return nil, fmt.Errorf("finnhub api key is not configured")
	}
	if cfg.Finnhub.BaseURL == "" || cfg.Yahoo.BaseURL == "" {
		return nil, fmt.Errorf("upstream base urls are not configured")
	}

	timeout := upstream.WithTimeout(cfg.Upstream.Timeout)
	if cfg.Upstream.Timeout <= 0 {
		timeout = func(*upstream.Client) {}
	}
	finnhubAPI := upstream.New("finnhub", cfg.Finnhub.BaseURL, timeout)
	yahooAPI := upstream.New("yahoo", cfg.Yahoo.BaseURL, timeout, upstream.WithUserAgent(userAgent))

	catalog := markets.Default()
	yahoo := marketdata.NewYahooClient(yahooAPI)

	svc := service.NewAnalysisService(service.Deps{
		Searcher:    search.NewClient(finnhubAPI, cfg.Finnhub.APIKey, catalog),
		Validator:   marketdata.NewValidator(yahoo),
		Provider:    yahoo,
		Predictor:   forecast.New(forecast.DefaultOptions()),
		Profiles:    yahoo,
		Catalog:     catalog,
		Parallelism: cfg.Validation.Parallelism,
	})

	return &Components{
		Service: svc,
		Catalog: catalog,
		clients: []*upstream.Client{finnhubAPI, yahooAPI},
	}, nil
}
