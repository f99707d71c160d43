//go:build integration
// +build integration

package api_test

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/guttosm/tickercast/config"
	"github.com/guttosm/tickercast/internal/app"
	"github.com/guttosm/tickercast/internal/domain/dto"
)

// fakeYahoo serves a chart document with 400 trading days for every symbol
// except ZZZINVALID.
func fakeYahoo(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/v10/finance/quoteSummary/") {
			_, _ = w.Write([]byte(`{"quoteSummary":{"result":[{"assetProfile":{"sector":"Technology","industry":"Information Technology Services"}}],"error":null}}`))
			return
		}
		symbol := strings.TrimPrefix(r.URL.Path, "/v8/finance/chart/")
		if symbol == "ZZZINVALID" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`))
			return
		}
		start := time.Date(2023, 1, 2, 9, 15, 0, 0, time.UTC)
		var ts []string
		var closes []string
		for i := 0; i < 400; i++ {
			ts = append(ts, fmt.Sprint(start.AddDate(0, 0, i).Unix()))
			closes = append(closes, fmt.Sprintf("%.2f", 100+0.1*float64(i)+3*math.Sin(float64(i)/7)))
		}
		fmt.Fprintf(w, `{"chart":{"result":[{"meta":{"symbol":%q,"currency":"INR","exchangeName":"NSI","longName":"Test Co","regularMarketPrice":140.0,"gmtoffset":19800},"timestamp":[%s],"indicators":{"quote":[{"close":[%s]}]}}],"error":null}}`,
			symbol, strings.Join(ts, ","), strings.Join(closes, ","))
	}))
}

func fakeFinnhub(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("token") != "it-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"count":3,"result":[
			{"symbol":"TCS.NS","description":"TATA CONSULTANCY SERV LT","displaySymbol":"TCS.NS","type":"Common Stock"},
			{"symbol":"NSE:TCS","description":"TATA CONSULTANCY","displaySymbol":"NSE:TCS","type":"Common Stock"},
			{"symbol":"ZZZINVALID","description":"GONE","displaySymbol":"ZZZINVALID","type":"Common Stock"}]}`))
	}))
}

func TestIntegration_SearchAndAnalyze(t *testing.T) {
	yahoo := fakeYahoo(t)
	defer yahoo.Close()
	finnhub := fakeFinnhub(t)
	defer finnhub.Close()

	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	config.AppConfig = config.Config{}
	config.AppConfig.Finnhub.APIKey = "it-key"
	config.AppConfig.Finnhub.BaseURL = finnhub.URL
	config.AppConfig.Yahoo.BaseURL = yahoo.URL
	config.AppConfig.Upstream.Timeout = 5 * time.Second
	config.AppConfig.Validation.Parallelism = 2

	router, cleanup, err := app.InitializeApp()
	if err != nil {
		t.Fatalf("init app: %v", err)
	}
	defer cleanup()

	// search: colon symbol dropped, invalid symbol filtered
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/symbols/search?q=tcs", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("search status=%d body=%s", w.Code, w.Body.String())
	}
	var search dto.SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &search); err != nil {
		t.Fatalf("search json: %v", err)
	}
	if len(search.Results) != 1 || search.Results[0].DisplayName != "TATA CONSULTANCY SERV LT - National Stock Exchange" {
		t.Fatalf("unexpected search results: %+v", search.Results)
	}

	// analysis with market suffix
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/analysis?symbol=tcs&market=.NS&horizon=14", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("analysis status=%d body=%s", w.Code, w.Body.String())
	}
	var out dto.AnalysisResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("analysis json: %v", err)
	}
	if out.Selection.Symbol != "TCS.NS" || len(out.Candles) != 400 || len(out.Forecast) != 414 {
		t.Fatalf("unexpected analysis: symbol=%s candles=%d forecast=%d", out.Selection.Symbol, len(out.Candles), len(out.Forecast))
	}
	if out.Company.Sector != "Technology" || out.Company.Industry != "Information Technology Services" {
		t.Fatalf("unexpected company: %+v", out.Company)
	}
	for _, row := range out.Forecast {
		if row.Lower > row.Predicted || row.Predicted > row.Upper {
			t.Fatalf("bounds out of order on %s", row.Date)
		}
	}

	// invalid symbol never reaches the forecaster
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/analysis?symbol=ZZZINVALID", nil))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid symbol status=%d", w.Code)
	}
}
