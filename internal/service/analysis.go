package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/tickercast/internal/domain/models"
	"github.com/guttosm/tickercast/internal/forecast"
	"github.com/guttosm/tickercast/internal/logger"
	"github.com/guttosm/tickercast/internal/marketdata"
	"github.com/guttosm/tickercast/internal/markets"
	"github.com/guttosm/tickercast/internal/search"
)

// Defaults applied when a request leaves a field empty.
const (
	DefaultPeriod  = models.Period1Y
	DefaultHorizon = 30
)

// AnalysisService composes search, validation, history and forecasting.
// Each call is independent; nothing is cached between calls.
type AnalysisService interface {
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
	Validate(ctx context.Context, symbol string) bool
	History(ctx context.Context, symbol string, period models.Period) (*models.PriceSeries, error)
	Analyze(ctx context.Context, req AnalyzeRequest) (*models.Analysis, error)
	Markets() []models.Market
}

// SymbolValidator is satisfied by *marketdata.Validator.
type SymbolValidator interface {
	Validate(ctx context.Context, symbol string) bool
}

// ProfileSource is satisfied by *marketdata.YahooClient.
type ProfileSource interface {
	Profile(ctx context.Context, symbol string) (*models.Profile, error)
}

// AnalyzeRequest carries the dashboard inputs for one analysis.
//
//   - Symbol: manually typed ticker; wins over Selected when set.
//   - Selected: ticker picked from the company dropdown.
//   - Market: optional suffix (".NS", ".BSE", ...) appended to the ticker.
type AnalyzeRequest struct {
	Symbol   string
	Selected string
	Market   string
	Period   models.Period
	Horizon  int
}

// Deps groups the collaborators of the analysis service.
type Deps struct {
	Searcher    search.Searcher
	Validator   SymbolValidator
	Provider    marketdata.Provider
	Predictor   forecast.Predictor
	Profiles    ProfileSource // optional; nil leaves sector and industry N/A
	Catalog     *markets.Catalog
	Parallelism int // concurrent validation probes after a search
}

type analysisService struct {
	deps Deps
}

// NewAnalysisService builds the service. A Parallelism below one is treated as one.
func NewAnalysisService(deps Deps) AnalysisService {
	if deps.Parallelism < 1 {
		deps.Parallelism = 1
	}
	return &analysisService{deps: deps}
}

// Search returns the candidates for query that have live pricing, in the
// order the search API returned them. A search failure yields an empty list
// plus the failure.
func (s *analysisService) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	candidates, err := s.deps.Searcher.Search(ctx, query)
	if err != nil {
		logger.L().Warn().Str("query", query).Err(err).Msg("symbol search failed")
		return []models.SearchResult{}, err
	}
	if len(candidates) == 0 {
		return []models.SearchResult{}, nil
	}

	valid := make([]bool, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.deps.Parallelism)
	for i, c := range candidates {
		g.Go(func() error {
			valid[i] = s.deps.Validator.Validate(gctx, c.Symbol)
			return nil
		})
	}
	_ = g.Wait()

	out := make([]models.SearchResult, 0, len(candidates))
	for i, c := range candidates {
		if valid[i] {
			out = append(out, c)
		}
	}
	logger.L().Info().
		Str("query", query).
		Int("candidates", len(candidates)).
		Int("valid", len(out)).
		Msg("symbol search")
	return out, nil
}

// Validate reports whether symbol has live pricing.
func (s *analysisService) Validate(ctx context.Context, symbol string) bool {
	return s.deps.Validator.Validate(ctx, normalizeSymbol(symbol))
}

// History fetches the daily bars of symbol for period.
func (s *analysisService) History(ctx context.Context, symbol string, period models.Period) (*models.PriceSeries, error) {
	symbol = normalizeSymbol(symbol)
	if err := checkSymbol(symbol); err != nil {
		return nil, err
	}
	if period == "" {
		period = DefaultPeriod
	}
	return s.deps.Provider.FetchHistory(ctx, symbol, period)
}

// Analyze resolves the ticker, fetches its history and forecasts it. The
// forecaster is only invoked once history was fetched successfully.
func (s *analysisService) Analyze(ctx context.Context, req AnalyzeRequest) (*models.Analysis, error) {
	sel, err := s.selection(req)
	if err != nil {
		return nil, err
	}
	log := logger.L().With().Str("symbol", sel.Symbol).Str("period", string(sel.Period)).Int("horizon", sel.Horizon).Logger()

	series, err := s.deps.Provider.FetchHistory(ctx, sel.Symbol, sel.Period)
	if err != nil {
		log.Warn().Err(err).Msg("history fetch failed")
		return nil, err
	}

	input := marketdata.Normalize(series)
	fc, err := s.deps.Predictor.Forecast(ctx, input, sel.Horizon)
	if err != nil {
		log.Warn().Err(err).Msg("forecast failed")
		return nil, withSymbol(err, sel.Symbol)
	}

	analysis := &models.Analysis{
		Selection: sel,
		Company:   s.company(ctx, series),
		Market:    marketData(series),
		Series:    series,
		Forecast:  fc,
		Summary:   summarize(input, fc),
	}
	log.Info().Int("bars", series.Len()).Int("points", len(fc.Points)).Msg("analysis complete")
	return analysis, nil
}

// company builds the info block for series. A failed profile lookup only
// costs the sector and industry, which fall back to N/A.
func (s *analysisService) company(ctx context.Context, series *models.PriceSeries) models.CompanyInfo {
	info := models.CompanyInfo{
		Name:     series.Name,
		Sector:   models.NotAvailable,
		Industry: models.NotAvailable,
		Currency: series.Currency,
		Exchange: series.Exchange,
	}
	if info.Name == "" {
		info.Name = series.Symbol
	}
	if s.deps.Profiles == nil {
		return info
	}
	p, err := s.deps.Profiles.Profile(ctx, series.Symbol)
	if err != nil {
		logger.L().Debug().Str("symbol", series.Symbol).Err(err).Msg("profile lookup failed")
		return info
	}
	if p.Sector != "" {
		info.Sector = p.Sector
	}
	if p.Industry != "" {
		info.Industry = p.Industry
	}
	return info
}

// Markets lists the optional market dropdown.
func (s *analysisService) Markets() []models.Market {
	return s.deps.Catalog.Markets
}

// selection turns the raw request into a validated Selection.
func (s *analysisService) selection(req AnalyzeRequest) (models.Selection, error) {
	if !s.deps.Catalog.KnownSuffix(req.Market) {
		return models.Selection{}, models.NewFailure(models.KindInvalidRequest, "", fmt.Errorf("unknown market suffix %q", req.Market))
	}
	symbol, err := ResolveSymbol(req.Symbol, req.Selected, req.Market)
	if err != nil {
		return models.Selection{}, err
	}

	period := req.Period
	if period == "" {
		period = DefaultPeriod
	}
	if !period.Valid() {
		return models.Selection{}, models.NewFailure(models.KindInvalidRequest, symbol, fmt.Errorf("unsupported period %q", period))
	}

	horizon := req.Horizon
	if horizon == 0 {
		horizon = DefaultHorizon
	}
	if horizon < 1 {
		return models.Selection{}, models.NewFailure(models.KindInvalidRequest, symbol, fmt.Errorf("horizon must be positive, got %d", horizon))
	}

	return models.Selection{Symbol: symbol, Market: req.Market, Period: period, Horizon: horizon}, nil
}

// ResolveSymbol picks the manual ticker over the dropdown selection and
// appends the market suffix unless the ticker already ends with it.
func ResolveSymbol(manual, selected, suffix string) (string, error) {
	symbol := normalizeSymbol(manual)
	if symbol == "" {
		symbol = strings.TrimSpace(selected)
	}
	if symbol == "" {
		return "", models.NewFailure(models.KindInvalidRequest, "", errors.New("enter a stock symbol or select a company"))
	}
	suffix = strings.ToUpper(strings.TrimSpace(suffix))
	if suffix != "" && !strings.HasSuffix(strings.ToUpper(symbol), suffix) {
		symbol += suffix
	}
	if err := checkSymbol(symbol); err != nil {
		return "", err
	}
	return symbol, nil
}

// withSymbol fills in the symbol of a failure raised by a component that
// does not know it.
func withSymbol(err error, symbol string) error {
	var f *models.Failure
	if errors.As(err, &f) && f.Symbol == "" {
		return models.NewFailure(f.Kind, symbol, f.Err)
	}
	return err
}

func normalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func checkSymbol(symbol string) error {
	if symbol == "" {
		return models.NewFailure(models.KindInvalidRequest, "", errors.New("symbol is required"))
	}
	if strings.Contains(symbol, ":") {
		return models.NewFailure(models.KindUnsupportedSymbol, symbol, errors.New("exchange-prefixed symbols are not supported"))
	}
	return nil
}

func round2(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// marketData reports the last close and its percent change from the
// previous close.
func marketData(series *models.PriceSeries) models.MarketData {
	bars := series.Bars
	last := bars[len(bars)-1]
	md := models.MarketData{CurrentPrice: round2(last.Close), ChangePercent: decimal.Zero, AsOf: last.Time}
	if len(bars) > 1 {
		if prev := bars[len(bars)-2].Close; prev != 0 {
			md.ChangePercent = round2((last.Close/prev - 1) * 100)
		}
	}
	return md
}

// summarize compares the last observed value with the final prediction.
func summarize(input []models.ForecastInput, fc *models.Forecast) models.Summary {
	lastObs := input[len(input)-1].Value
	end, _ := fc.Last()
	sum := models.Summary{
		LastPrice:      round2(lastObs),
		PredictedPrice: round2(end.Predicted),
		ChangePercent:  decimal.Zero,
		TargetDate:     end.Timestamp,
	}
	if lastObs != 0 {
		sum.ChangePercent = round2((end.Predicted - lastObs) / lastObs * 100)
	}
	return sum
}
