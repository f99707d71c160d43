package api

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/tickercast/internal/metrics"
	"github.com/guttosm/tickercast/internal/middleware"
	"github.com/guttosm/tickercast/internal/web"
)

// DefaultRequestTimeout bounds a request when no timeout is configured.
const DefaultRequestTimeout = 60 * time.Second

// RouterOptions tunes NewRouter.
type RouterOptions struct {
	// RequestTimeout is applied to every request context. Zero means
	// DefaultRequestTimeout.
	RequestTimeout time.Duration
	// Pages overrides the dashboard templates; nil uses web.Templates().
	Pages *template.Template
}

// NewRouter builds the gin engine: global middlewares, request timeout,
// swagger, metrics, the dashboard page and the /api/v1 routes.
//
// Health and readiness endpoints are registered by app.InitializeApp.
func NewRouter(handler *Handler, opts RouterOptions) (*gin.Engine, error) {
	if err := RegisterValidators(); err != nil {
		return nil, err
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = DefaultRequestTimeout
	}
	pages := opts.Pages
	if pages == nil {
		var err error
		if pages, err = web.Templates(); err != nil {
			return nil, err
		}
	}

	router := gin.New()
	router.SetHTMLTemplate(pages)

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Metrics(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), opts.RequestTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	router.NoRoute(func(c *gin.Context) {
		middleware.AbortWithError(c, http.StatusNotFound, "Route not found", nil)
	})

	// ─── Docs & metrics ───────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ─── Dashboard ────────────────────────────────
	router.GET("/", web.Dashboard(handler.svc.Markets()))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		v1.GET("/symbols/search", handler.SearchSymbols)
		v1.GET("/symbols/:symbol/validate", handler.ValidateSymbol)
		v1.GET("/markets", handler.ListMarkets)
		v1.GET("/periods", handler.ListPeriods)
		v1.GET("/history/:symbol", handler.GetHistory)
		v1.GET("/analysis", handler.GetAnalysis)
	}

	return router, nil
}
