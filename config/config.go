package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	FINNHUB_API_KEY=xxxxxxxx
//	FINNHUB_BASE_URL=https://finnhub.io/api/v1
//	YAHOO_BASE_URL=https://query1.finance.yahoo.com
//	HTTP_CLIENT_TIMEOUT=30s
//	VALIDATION_PARALLELISM=4
//	REQUEST_TIMEOUT=60s
type Config struct {
	Server     ServerConfig     // HTTP server configuration
	Finnhub    FinnhubConfig    // Symbol search API
	Yahoo      YahooConfig      // Market-data provider
	Upstream   UpstreamConfig   // Shared outbound HTTP settings
	Validation ValidationConfig // Search candidate validation
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string        // The TCP port the HTTP server will listen on (e.g., "8080")
	RequestTimeout time.Duration // Per-request deadline applied by the router
}

// FinnhubConfig configures the symbol search client. APIKey is required.
type FinnhubConfig struct {
	APIKey  string
	BaseURL string
}

// YahooConfig configures the chart API client.
type YahooConfig struct {
	BaseURL string
}

// UpstreamConfig applies to every outbound HTTP client.
type UpstreamConfig struct {
	Timeout time.Duration
}

// ValidationConfig bounds how many search candidates are probed at once.
type ValidationConfig struct {
	Parallelism int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If FINNHUB_API_KEY (or any other required value) is missing,
//     validateConfig() terminates the app with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("REQUEST_TIMEOUT", "60s")

	viper.SetDefault("FINNHUB_API_KEY", "")
	viper.SetDefault("FINNHUB_BASE_URL", "https://finnhub.io/api/v1")
	viper.SetDefault("YAHOO_BASE_URL", "https://query1.finance.yahoo.com")
	viper.SetDefault("HTTP_CLIENT_TIMEOUT", "30s")
	viper.SetDefault("VALIDATION_PARALLELISM", 4)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			RequestTimeout: viper.GetDuration("REQUEST_TIMEOUT"),
		},
		Finnhub: FinnhubConfig{
			APIKey:  viper.GetString("FINNHUB_API_KEY"),
			BaseURL: viper.GetString("FINNHUB_BASE_URL"),
		},
		Yahoo: YahooConfig{
			BaseURL: viper.GetString("YAHOO_BASE_URL"),
		},
		Upstream: UpstreamConfig{
			Timeout: viper.GetDuration("HTTP_CLIENT_TIMEOUT"),
		},
		Validation: ValidationConfig{
			Parallelism: viper.GetInt("VALIDATION_PARALLELISM"),
		},
	}

	validateConfig()
}

// validateConfig terminates the application when required variables are
// missing, so a misconfigured deployment fails at startup rather than on the
// first search.
func validateConfig() {
	if missing := missingKeys(AppConfig); len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}

// missingKeys returns the environment keys whose values are unusable.
func missingKeys(cfg Config) []string {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Finnhub.APIKey == "" {
		missing = append(missing, "FINNHUB_API_KEY")
	}
	if cfg.Finnhub.BaseURL == "" {
		missing = append(missing, "FINNHUB_BASE_URL")
	}
	if cfg.Yahoo.BaseURL == "" {
		missing = append(missing, "YAHOO_BASE_URL")
	}
	if cfg.Upstream.Timeout <= 0 {
		missing = append(missing, "HTTP_CLIENT_TIMEOUT")
	}
	if cfg.Validation.Parallelism < 1 {
		missing = append(missing, "VALIDATION_PARALLELISM")
	}
	return missing
}
