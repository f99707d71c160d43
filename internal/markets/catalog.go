package markets

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/guttosm/tickercast/internal/domain/models"
)

//go:embed markets.yaml
var embedded []byte

// LabelRule maps a ticker suffix to a human-readable exchange name.
type LabelRule struct {
	Suffix string `yaml:"suffix"`
	Label  string `yaml:"label"`
}

// Catalog holds the exchange label table and the market dropdown.
type Catalog struct {
	DefaultLabel string          `yaml:"default_label"`
	Labels       []LabelRule     `yaml:"labels"`
	Markets      []models.Market `yaml:"markets"`
}

// Parse decodes a catalog from YAML and checks it is usable.
func Parse(b []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse market catalog: %w", err)
	}
	if c.DefaultLabel == "" {
		return nil, fmt.Errorf("market catalog: default_label is required")
	}
	for i, r := range c.Labels {
		if !strings.HasPrefix(r.Suffix, ".") || r.Label == "" {
			return nil, fmt.Errorf("market catalog: invalid label rule #%d: %+v", i, r)
		}
	}
	return &c, nil
}

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	c, err := Parse(embedded)
	if err != nil {
		panic(err)
	}
	return c
}

// Label returns the exchange annotation for symbol. Matching is on the
// symbol's suffix, so "SHOP.TO" does not pick up the ".T" rule.
func (c *Catalog) Label(symbol string) string {
	s := strings.ToUpper(symbol)
	for _, r := range c.Labels {
		if strings.HasSuffix(s, strings.ToUpper(r.Suffix)) {
			return r.Label
		}
	}
	return c.DefaultLabel
}

// Suffix returns the suffix configured for the named market, or false if the
// name is unknown.
func (c *Catalog) Suffix(name string) (string, bool) {
	for _, m := range c.Markets {
		if m.Name == name {
			return m.Suffix, true
		}
	}
	return "", false
}

// KnownSuffix reports whether suffix belongs to any dropdown market. The empty
// suffix is always known.
func (c *Catalog) KnownSuffix(suffix string) bool {
	if suffix == "" {
		return true
	}
	for _, m := range c.Markets {
		if strings.EqualFold(m.Suffix, suffix) {
			return true
		}
	}
	return false
}
