package config

import (
	"os"
	"os/exec"
	"reflect"
	"testing"
	"time"
)

// TestLoadConfig_Defaults verifies that defaults are applied when only the API key is set.
func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"SERVER_PORT", "REQUEST_TIMEOUT", "FINNHUB_BASE_URL", "YAHOO_BASE_URL", "HTTP_CLIENT_TIMEOUT", "VALIDATION_PARALLELISM"} {
		_ = os.Unsetenv(k)
	}
	t.Setenv("FINNHUB_API_KEY", "test-token")

	LoadConfig()

	if AppConfig.Server.Port != "8080" {
		t.Fatalf("expected default SERVER_PORT=8080, got %q", AppConfig.Server.Port)
	}
	if AppConfig.Server.RequestTimeout != 60*time.Second {
		t.Fatalf("unexpected request timeout: %v", AppConfig.Server.RequestTimeout)
	}
	if AppConfig.Finnhub.APIKey != "test-token" || AppConfig.Finnhub.BaseURL != "https://finnhub.io/api/v1" {
		t.Fatalf("unexpected finnhub config: %+v", AppConfig.Finnhub)
	}
	if AppConfig.Yahoo.BaseURL != "https://query1.finance.yahoo.com" {
		t.Fatalf("unexpected yahoo config: %+v", AppConfig.Yahoo)
	}
	if AppConfig.Upstream.Timeout != 30*time.Second || AppConfig.Validation.Parallelism != 4 {
		t.Fatalf("unexpected upstream/validation: %+v %+v", AppConfig.Upstream, AppConfig.Validation)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("FINNHUB_API_KEY", "k")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "5s")
	t.Setenv("VALIDATION_PARALLELISM", "2")

	LoadConfig()

	if AppConfig.Server.Port != "9090" || AppConfig.Upstream.Timeout != 5*time.Second || AppConfig.Validation.Parallelism != 2 {
		t.Fatalf("env overrides not applied: %+v", AppConfig)
	}
}

func TestMissingKeys(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "complete",
			cfg: Config{
				Server:     ServerConfig{Port: "8080"},
				Finnhub:    FinnhubConfig{APIKey: "k", BaseURL: "http://f"},
				Yahoo:      YahooConfig{BaseURL: "http://y"},
				Upstream:   UpstreamConfig{Timeout: time.Second},
				Validation: ValidationConfig{Parallelism: 1},
			},
			want: nil,
		},
		{
			name: "missing api key only",
			cfg: Config{
				Server:     ServerConfig{Port: "8080"},
				Finnhub:    FinnhubConfig{BaseURL: "http://f"},
				Yahoo:      YahooConfig{BaseURL: "http://y"},
				Upstream:   UpstreamConfig{Timeout: time.Second},
				Validation: ValidationConfig{Parallelism: 1},
			},
			want: []string{"FINNHUB_API_KEY"},
		},
		{
			name: "empty",
			cfg:  Config{},
			want: []string{"SERVER_PORT", "FINNHUB_API_KEY", "FINNHUB_BASE_URL", "YAHOO_BASE_URL", "HTTP_CLIENT_TIMEOUT", "VALIDATION_PARALLELISM"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := missingKeys(tc.cfg); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("missingKeys()=%v, want %v", got, tc.want)
			}
		})
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig triggers a fatal exit
// when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
