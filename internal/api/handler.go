package api

import (
	"net/http"
	"strings"

	"github.com/creasty/defaults"
	"github.com/gin-gonic/gin"

	"github.com/guttosm/tickercast/internal/domain/dto"
	"github.com/guttosm/tickercast/internal/domain/models"
	"github.com/guttosm/tickercast/internal/middleware"
	"github.com/guttosm/tickercast/internal/service"
)

const noValidStocksMessage = "No valid companies found. Please try a different search query."

// Handler serves the /api/v1 endpoints. Failures are attached with c.Error
// and rendered by middleware.ErrorHandler.
type Handler struct {
	svc service.AnalysisService
}

// NewHandler constructs a Handler backed by svc.
func NewHandler(svc service.AnalysisService) *Handler {
	return &Handler{svc: svc}
}

// AnalysisQuery holds the query parameters of GET /api/v1/analysis.
type AnalysisQuery struct {
	Symbol   string `form:"symbol"`
	Selected string `form:"selected"`
	Market   string `form:"market"`
	Period   string `form:"period" default:"1y" binding:"period"`
	Horizon  int    `form:"horizon" default:"30" binding:"min=1,max=365"`
}

// HistoryQuery holds the query parameters of GET /api/v1/history/{symbol}.
type HistoryQuery struct {
	Period string `form:"period" default:"1y" binding:"period"`
}

// bindQuery applies struct defaults, then overlays the request query and
// validates it.
func bindQuery(c *gin.Context, dst any) error {
	if err := defaults.Set(dst); err != nil {
		return err
	}
	if err := c.ShouldBindQuery(dst); err != nil {
		return models.NewFailure(models.KindInvalidRequest, "", err)
	}
	return nil
}

// SearchSymbols godoc
// @Summary      Search stock symbols
// @Description  Queries the symbol search API, drops exchange-prefixed symbols and keeps only those with live pricing
// @Tags         symbols
// @Produce      json
// @Param        q    query     string  true  "Free-text company name or ticker" example(reliance)
// @Success      200  {object}  dto.SearchResponse  "Matches (possibly empty, with message)"
// @Failure      502  {object}  dto.SearchResponse  "Search backend failure"
// @Router       /api/v1/symbols/search [get]
func (h *Handler) SearchSymbols(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	resp := dto.SearchResponse{Query: q, Results: []models.SearchResult{}}
	if q == "" {
		c.JSON(http.StatusOK, resp)
		return
	}

	results, err := h.svc.Search(c.Request.Context(), q)
	if err != nil {
		resp.Error = middleware.MessageFor(err)
		c.JSON(middleware.StatusFor(models.KindOf(err)), resp)
		return
	}
	resp.Results = results
	if len(results) == 0 {
		resp.Message = noValidStocksMessage
	}
	c.JSON(http.StatusOK, resp)
}

// ValidateSymbol godoc
// @Summary      Validate a symbol
// @Description  Reports whether the market-data provider has a live price for the symbol
// @Tags         symbols
// @Produce      json
// @Param        symbol  path      string  true  "Ticker" example(TCS.NS)
// @Success      200     {object}  dto.ValidateResponse
// @Router       /api/v1/symbols/{symbol}/validate [get]
func (h *Handler) ValidateSymbol(c *gin.Context) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	c.JSON(http.StatusOK, dto.ValidateResponse{
		Symbol: symbol,
		Valid:  h.svc.Validate(c.Request.Context(), symbol),
	})
}

// ListMarkets godoc
// @Summary      List markets
// @Description  Returns the market dropdown entries and the suffix each appends to a ticker
// @Tags         reference
// @Produce      json
// @Success      200  {array}  models.Market
// @Router       /api/v1/markets [get]
func (h *Handler) ListMarkets(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Markets())
}

// ListPeriods godoc
// @Summary      List history periods
// @Tags         reference
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/v1/periods [get]
func (h *Handler) ListPeriods(c *gin.Context) {
	c.JSON(http.StatusOK, models.Periods())
}

// GetHistory godoc
// @Summary      Price history
// @Description  Daily OHLC bars for the symbol over the requested period
// @Tags         analysis
// @Produce      json
// @Param        symbol  path      string  true   "Ticker" example(AAPL)
// @Param        period  query     string  false  "History period" Enums(1y,2y,5y,10y,max) default(1y)
// @Success      200     {object}  dto.HistoryResponse
// @Failure      400     {object}  dto.ErrorResponse  "Invalid request"
// @Failure      404     {object}  dto.ErrorResponse  "No history"
// @Failure      422     {object}  dto.ErrorResponse  "Invalid or unsupported symbol"
// @Failure      502     {object}  dto.ErrorResponse  "Market-data failure"
// @Router       /api/v1/history/{symbol} [get]
func (h *Handler) GetHistory(c *gin.Context) {
	var q HistoryQuery
	if err := bindQuery(c, &q); err != nil {
		_ = c.Error(err)
		return
	}
	series, err := h.svc.History(c.Request.Context(), c.Param("symbol"), models.Period(q.Period))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewHistoryResponse(series))
}

// GetAnalysis godoc
// @Summary      Analyse and forecast a stock
// @Description  Resolves the ticker (manual symbol wins over the selected one, market suffix appended), fetches history and returns candles, forecast with 80% interval and summary metrics
// @Tags         analysis
// @Produce      json
// @Param        symbol    query     string  false  "Manually entered ticker" example(TCS)
// @Param        selected  query     string  false  "Ticker chosen from search results" example(RELIANCE.BSE)
// @Param        market    query     string  false  "Market suffix" example(.NS)
// @Param        period    query     string  false  "History period" Enums(1y,2y,5y,10y,max) default(1y)
// @Param        horizon   query     int     false  "Forecast horizon in days" minimum(1) maximum(365) default(30)
// @Success      200       {object}  dto.AnalysisResponse
// @Failure      400       {object}  dto.ErrorResponse  "Invalid request"
// @Failure      404       {object}  dto.ErrorResponse  "No history"
// @Failure      422       {object}  dto.ErrorResponse  "Invalid symbol or forecast failure"
// @Failure      502       {object}  dto.ErrorResponse  "Market-data failure"
// @Router       /api/v1/analysis [get]
func (h *Handler) GetAnalysis(c *gin.Context) {
	var q AnalysisQuery
	if err := bindQuery(c, &q); err != nil {
		_ = c.Error(err)
		return
	}

	a, err := h.svc.Analyze(c.Request.Context(), service.AnalyzeRequest{
		Symbol:   q.Symbol,
		Selected: q.Selected,
		Market:   q.Market,
		Period:   models.Period(q.Period),
		Horizon:  q.Horizon,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAnalysisResponse(a))
}
