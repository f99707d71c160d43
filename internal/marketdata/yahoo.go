package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/guttosm/tickercast/internal/domain/models"
	"github.com/guttosm/tickercast/internal/upstream"
)

// Provider is the market-data boundary used by the rest of the application.
type Provider interface {
	Quote(ctx context.Context, symbol string) (*models.Quote, error)
	FetchHistory(ctx context.Context, symbol string, period models.Period) (*models.PriceSeries, error)
}

// YahooClient implements Provider on top of the Yahoo Finance chart API.
type YahooClient struct {
	api *upstream.Client
}

// NewYahooClient wraps an upstream client rooted at the Yahoo query host.
func NewYahooClient(api *upstream.Client) *YahooClient {
	return &YahooClient{api: api}
}

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []yahooResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

type yahooResult struct {
	Meta struct {
		Symbol             string   `json:"symbol"`
		Currency           string   `json:"currency"`
		ExchangeName       string   `json:"exchangeName"`
		FullExchangeName   string   `json:"fullExchangeName"`
		LongName           string   `json:"longName"`
		ShortName          string   `json:"shortName"`
		RegularMarketPrice *float64 `json:"regularMarketPrice"`
		GMTOffset          int      `json:"gmtoffset"`
		Timezone           string   `json:"timezone"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Open   []*float64 `json:"open"`
			High   []*float64 `json:"high"`
			Low    []*float64 `json:"low"`
			Close  []*float64 `json:"close"`
			Volume []*float64 `json:"volume"`
		} `json:"quote"`
	} `json:"indicators"`
}

var errUnknownSymbol = errors.New("symbol not found")

// chart fetches one chart document. Unknown symbols come back as
// KindInvalidSymbol, anything else that goes wrong as KindFetchFailed.
func (c *YahooClient) chart(ctx context.Context, symbol, rng string) (*yahooResult, error) {
	params := url.Values{"interval": {"1d"}, "range": {rng}}
	status, body, err := c.api.Get(ctx, "/v8/finance/chart/"+url.PathEscape(symbol), params)
	if err != nil {
		return nil, models.NewFailure(models.KindFetchFailed, symbol, err)
	}

	var doc yahooChart
	if decodeErr := json.Unmarshal(body, &doc); decodeErr != nil {
		if status == http.StatusNotFound {
			return nil, models.NewFailure(models.KindInvalidSymbol, symbol, errUnknownSymbol)
		}
		if status != http.StatusOK {
			return nil, models.NewFailure(models.KindFetchFailed, symbol, &upstream.StatusError{Service: c.api.Service(), Code: status, Body: body})
		}
		return nil, models.NewFailure(models.KindFetchFailed, symbol, fmt.Errorf("yahoo decode: %w", decodeErr))
	}

	if e := doc.Chart.Error; e != nil {
		if status == http.StatusNotFound || strings.EqualFold(e.Code, "Not Found") {
			return nil, models.NewFailure(models.KindInvalidSymbol, symbol, fmt.Errorf("%w: %s", errUnknownSymbol, e.Description))
		}
		return nil, models.NewFailure(models.KindFetchFailed, symbol, fmt.Errorf("yahoo api error: %s: %s", e.Code, e.Description))
	}
	if status != http.StatusOK {
		return nil, models.NewFailure(models.KindFetchFailed, symbol, &upstream.StatusError{Service: c.api.Service(), Code: status, Body: body})
	}
	if len(doc.Chart.Result) == 0 {
		return nil, models.NewFailure(models.KindInvalidSymbol, symbol, errUnknownSymbol)
	}
	return &doc.Chart.Result[0], nil
}

type yahooSummary struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile struct {
				Sector   string `json:"sector"`
				Industry string `json:"industry"`
			} `json:"assetProfile"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// Profile fetches the sector and industry of symbol from the quote summary
// assetProfile module. A symbol without a profile yields an empty Profile;
// transport, status and decode problems are KindFetchFailed.
func (c *YahooClient) Profile(ctx context.Context, symbol string) (*models.Profile, error) {
	var doc yahooSummary
	params := url.Values{"modules": {"assetProfile"}}
	if err := c.api.GetJSON(ctx, "/v10/finance/quoteSummary/"+url.PathEscape(symbol), params, &doc); err != nil {
		return nil, models.NewFailure(models.KindFetchFailed, symbol, err)
	}
	if e := doc.QuoteSummary.Error; e != nil {
		return nil, models.NewFailure(models.KindFetchFailed, symbol, fmt.Errorf("yahoo api error: %s: %s", e.Code, e.Description))
	}
	if len(doc.QuoteSummary.Result) == 0 {
		return &models.Profile{}, nil
	}
	ap := doc.QuoteSummary.Result[0].AssetProfile
	return &models.Profile{Sector: ap.Sector, Industry: ap.Industry}, nil
}

// Quote probes the provider's metadata for symbol.
func (c *YahooClient) Quote(ctx context.Context, symbol string) (*models.Quote, error) {
	res, err := c.chart(ctx, symbol, "1d")
	if err != nil {
		return nil, err
	}
	return quoteFromMeta(symbol, res), nil
}

// FetchHistory returns the daily bars for period. It fails with
// KindInvalidSymbol when the provider does not know the symbol or reports no
// live price, and with KindNoHistory when the series is empty.
func (c *YahooClient) FetchHistory(ctx context.Context, symbol string, period models.Period) (*models.PriceSeries, error) {
	if !period.Valid() {
		return nil, models.NewFailure(models.KindInvalidRequest, symbol, fmt.Errorf("unsupported period %q", period))
	}

	res, err := c.chart(ctx, symbol, string(period))
	if err != nil {
		return nil, err
	}
	q := quoteFromMeta(symbol, res)
	if !q.HasPrice {
		return nil, models.NewFailure(models.KindInvalidSymbol, symbol, errors.New("no live price"))
	}

	bars := parseBars(res)
	if len(bars) == 0 {
		return nil, models.NewFailure(models.KindNoHistory, symbol, errors.New("empty price series"))
	}

	return &models.PriceSeries{
		Symbol:   symbol,
		Name:     q.Name(),
		Currency: q.Currency,
		Exchange: q.Exchange,
		Period:   period,
		Bars:     bars,
	}, nil
}

func quoteFromMeta(symbol string, res *yahooResult) *models.Quote {
	m := res.Meta
	q := &models.Quote{
		Symbol:    symbol,
		LongName:  m.LongName,
		ShortName: m.ShortName,
		Currency:  m.Currency,
		Exchange:  m.FullExchangeName,
	}
	if q.Exchange == "" {
		q.Exchange = m.ExchangeName
	}
	if m.RegularMarketPrice != nil {
		q.Price = *m.RegularMarketPrice
		q.HasPrice = true
	}
	return q
}

// parseBars converts the columnar chart payload to one bar per exchange-local
// trading date, ascending. Bars without a close are skipped; when a date
// appears twice the later bar wins.
func parseBars(res *yahooResult) []models.PriceBar {
	if len(res.Indicators.Quote) == 0 {
		return nil
	}
	q := res.Indicators.Quote[0]
	loc := time.FixedZone(res.Meta.Timezone, res.Meta.GMTOffset)

	byDate := make(map[time.Time]models.PriceBar, len(res.Timestamp))
	for i, ts := range res.Timestamp {
		c, ok := at(q.Close, i)
		if !ok {
			continue
		}
		local := time.Unix(ts, 0).In(loc)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

		bar := models.PriceBar{Time: day, Close: c, Open: c, High: c, Low: c}
		if v, ok := at(q.Open, i); ok {
			bar.Open = v
		}
		if v, ok := at(q.High, i); ok {
			bar.High = v
		}
		if v, ok := at(q.Low, i); ok {
			bar.Low = v
		}
		if v, ok := at(q.Volume, i); ok {
			bar.Volume = v
		}
		byDate[day] = bar
	}

	bars := make([]models.PriceBar, 0, len(byDate))
	for _, b := range byDate {
		bars = append(bars, b)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars
}

func at(vals []*float64, i int) (float64, bool) {
	if i >= len(vals) || vals[i] == nil {
		return 0, false
	}
	return *vals[i], true
}
