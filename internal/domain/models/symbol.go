package models

// SearchResult is a single symbol-search hit.
//
// Fields:
//   - Symbol: ticker as understood by the market-data provider (e.g. "RELIANCE.BSE").
//   - DisplayName: company description followed by an exchange annotation,
//     e.g. "RELIANCE INDUSTRIES LTD - Bombay Stock Exchange".
//
// swagger:model SearchResult
type SearchResult struct {
	Symbol      string `json:"symbol" example:"RELIANCE.BSE"`
	DisplayName string `json:"display_name" example:"RELIANCE INDUSTRIES LTD - Bombay Stock Exchange"`
}

// Market is one entry of the optional stock-market dropdown. An empty Suffix
// leaves the ticker untouched.
type Market struct {
	Name   string `json:"name" yaml:"name" example:"National Stock Exchange (NSE)"`
	Suffix string `json:"suffix" yaml:"suffix" example:".NS"`
}
