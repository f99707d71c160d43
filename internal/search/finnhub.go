package search

import (
	"context"
	"net/url"
	"strings"

	"github.com/guttosm/tickercast/internal/domain/models"
	"github.com/guttosm/tickercast/internal/markets"
	"github.com/guttosm/tickercast/internal/upstream"
)

// Searcher finds ticker symbols for a free-text company name.
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
}

// Client queries the Finnhub symbol search endpoint.
type Client struct {
	api     *upstream.Client
	token   string
	catalog *markets.Catalog
}

// NewClient creates a Finnhub search client. The token is sent as the
// "token" query parameter on every call.
func NewClient(api *upstream.Client, token string, catalog *markets.Catalog) *Client {
	return &Client{api: api, token: token, catalog: catalog}
}

type fhSymbol struct {
	Symbol        string `json:"symbol"`
	Description   string `json:"description"`
	DisplaySymbol string `json:"displaySymbol"`
	Type          string `json:"type"`
}

type fhSearchResponse struct {
	Count  int        `json:"count"`
	Result []fhSymbol `json:"result"`
}

// Search returns the matching symbols in provider order. Symbols containing
// ':' are dropped because the market-data provider cannot resolve them.
//
// On any transport, status or decode failure Search returns an empty,
// non-nil slice together with a KindSearchFailed failure.
func (c *Client) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	results := []models.SearchResult{}
	query = strings.TrimSpace(query)
	if query == "" {
		return results, nil
	}

	var resp fhSearchResponse
	params := url.Values{"q": {query}, "token": {c.token}}
	if err := c.api.GetJSON(ctx, "/search", params, &resp); err != nil {
		return results, models.NewFailure(models.KindSearchFailed, "", err)
	}

	for _, item := range resp.Result {
		if item.Symbol == "" || strings.Contains(item.Symbol, ":") {
			continue
		}
		results = append(results, models.SearchResult{
			Symbol:      item.Symbol,
			DisplayName: item.Description + " - " + c.catalog.Label(item.Symbol),
		})
	}
	return results, nil
}
