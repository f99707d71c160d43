package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tickercast/config"
	"github.com/guttosm/tickercast/internal/api"
)

// componentsBuilder is an indirection for unit tests.
var componentsBuilder = BuildComponents

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the upstream clients and analysis service via BuildComponents().
//   - Creates the HTTP handler layer and the Gin router.
//   - Registers health and readiness probes.
//   - Provides a cleanup function releasing idle upstream connections.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	comps, err := componentsBuilder(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize components: %w", err)
	}

	handler := api.NewHandler(comps.Service)

	router, err := api.NewRouter(handler, api.RouterOptions{RequestTimeout: cfg.Server.RequestTimeout})
	if err != nil {
		comps.Close()
		return nil, nil, fmt.Errorf("failed to build router: %w", err)
	}

	healthHandler := api.NewHealthHandler(
		api.Check{Name: "market_catalog", Fn: func(context.Context) error {
			if comps.Catalog == nil || len(comps.Catalog.Markets) == 0 {
				return errors.New("market catalog is empty")
			}
			return nil
		}},
	)
	healthHandler.Register(router)

	return router, comps.Close, nil
}
