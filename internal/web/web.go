// Package web serves the single-page dashboard. Charts are drawn in the
// browser from the JSON API; the server only fills in the dropdown options.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tickercast/internal/domain/models"
)

//go:embed templates/*.html
var templates embed.FS

// Horizon slider bounds in days.
const (
	MinHorizon     = 7
	MaxHorizon     = 90
	DefaultHorizon = 30
)

// PageData is rendered into the dashboard template.
type PageData struct {
	Markets        []models.Market
	Periods        []models.Period
	DefaultPeriod  models.Period
	MinHorizon     int
	MaxHorizon     int
	DefaultHorizon int
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(templates, "templates/*.html")
}

// Dashboard renders index.html. The engine must have been given Templates()
// through SetHTMLTemplate.
func Dashboard(marketList []models.Market) gin.HandlerFunc {
	data := PageData{
		Markets:        marketList,
		Periods:        models.Periods(),
		DefaultPeriod:  models.Period1Y,
		MinHorizon:     MinHorizon,
		MaxHorizon:     MaxHorizon,
		DefaultHorizon: DefaultHorizon,
	}
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", data)
	}
}
