package main

//
//  @title           tickercast API
//  @version         1.0
//  @description     Stock symbol search, price history and time-series forecasting.
//  @termsOfService  https://github.com/guttosm/tickercast
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/tickercast
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        symbols
//  @tag.description Symbol search and validation
//
//  @tag.name        analysis
//  @tag.description Price history and forecasts
//
//  @tag.name        reference
//  @tag.description Dropdown reference data
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/tickercast/config"
	_ "github.com/guttosm/tickercast/docs" // swagger docs
	"github.com/guttosm/tickercast/internal/app"
	"github.com/guttosm/tickercast/internal/domain/dto"
	"github.com/guttosm/tickercast/internal/domain/models"
	"github.com/guttosm/tickercast/internal/logger"
	"github.com/guttosm/tickercast/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      90 * time.Second, // analysis requests may take up to REQUEST_TIMEOUT
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., idle upstream connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runAnalyze performs one analysis and writes it to out as indented JSON.
func runAnalyze(ctx context.Context, svc service.AnalysisService, req service.AnalyzeRequest, out io.Writer) error {
	a, err := svc.Analyze(ctx, req)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", req.Symbol, err)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.NewAnalysisResponse(a))
}

// analyzeCommand wires the components from cfg and runs one analysis.
func analyzeCommand(ctx context.Context, cfg config.Config, req service.AnalyzeRequest, out io.Writer) error {
	comps, err := app.BuildComponents(cfg)
	if err != nil {
		return err
	}
	defer comps.Close()

	if cfg.Server.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Server.RequestTimeout)
		defer cancel()
	}
	return runAnalyze(ctx, comps.Service, req, out)
}

// main is the entry point of the tickercast application.
//
// Modes (selected via --mode flag):
//   - api:     Starts the HTTP API and dashboard.
//   - analyze: Runs one analysis and prints it as JSON.
//
// Flags:
//   - --mode:    Execution mode ("api" or "analyze"). Default: "api".
//   - --port:    Port for the API server. Defaults to SERVER_PORT.
//   - --symbol:  Ticker to analyze (analyze mode).
//   - --market:  Optional market suffix such as ".NS" (analyze mode).
//   - --period:  History period: 1y, 2y, 5y, 10y or max (analyze mode).
//   - --horizon: Forecast horizon in days (analyze mode).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	mode := flag.String("mode", "api", "Mode: api or analyze")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	symbol := flag.String("symbol", "", "Ticker to analyze")
	market := flag.String("market", "", "Market suffix, e.g. .NS")
	period := flag.String("period", string(service.DefaultPeriod), "History period: 1y, 2y, 5y, 10y, max")
	horizon := flag.Int("horizon", service.DefaultHorizon, "Forecast horizon in days")
	flag.Parse()

	switch *mode {
	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "analyze":
		req := service.AnalyzeRequest{Symbol: *symbol, Market: *market, Period: models.Period(*period), Horizon: *horizon}
		if err := analyzeCommand(ctx, config.AppConfig, req, os.Stdout); err != nil {
			logger.L().Fatal().Err(err).Msg("analysis failed")
		}

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
