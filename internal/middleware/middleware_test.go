package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/tickercast/internal/domain/models"
	"github.com/guttosm/tickercast/internal/metrics"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler)
	r.GET("/", func(c *gin.Context) { _ = c.Error(assertErr{}) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != 500 {
		t.Fatalf("code=%d", w.Code)
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "boom" }

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RecoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != 500 {
		t.Fatalf("code=%d", w.Code)
	}
}

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/err", func(c *gin.Context) {
		AbortWithError(c, http.StatusBadRequest, "bad stuff", assertErr{})
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/err", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct == "" {
		t.Fatalf("expected content-type set")
	}
}

func TestErrorHandler_MapsFailureKinds(t *testing.T) {
	cases := []struct {
		kind   models.Kind
		status int
	}{
		{models.KindInvalidRequest, http.StatusBadRequest},
		{models.KindInvalidSymbol, http.StatusUnprocessableEntity},
		{models.KindUnsupportedSymbol, http.StatusUnprocessableEntity},
		{models.KindNoHistory, http.StatusNotFound},
		{models.KindFetchFailed, http.StatusBadGateway},
		{models.KindSearchFailed, http.StatusBadGateway},
		{models.KindFitFailed, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(ErrorHandler)
			r.GET("/", func(c *gin.Context) {
				_ = c.Error(models.NewFailure(tc.kind, "ZZZ", assertErr{}))
			})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if !strings.Contains(w.Body.String(), `"kind":"`+string(tc.kind)+`"`) {
				t.Fatalf("body missing kind: %s", w.Body.String())
			}
		})
	}
}

func TestErrorHandler_SkipsWrittenResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler)
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "partial")
		_ = c.Error(assertErr{})
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK || w.Body.String() != "partial" {
		t.Fatalf("code=%d body=%q", w.Code, w.Body.String())
	}
}

func TestMessageFor_IncludesSymbol(t *testing.T) {
	msg := MessageFor(models.NewFailure(models.KindInvalidSymbol, "ZZZINVALID", nil))
	if !strings.Contains(msg, "ZZZINVALID") {
		t.Fatalf("message %q does not name the symbol", msg)
	}
	if MessageFor(assertErr{}) != "Internal server error" {
		t.Fatalf("plain errors should be internal")
	}
}

func TestMetrics_RecordsRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics())
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/42", nil))

	w := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()
	if !strings.Contains(body, `route="/items/:id"`) {
		t.Fatalf("metrics output missing route template")
	}
	if strings.Contains(body, `route="/items/42"`) {
		t.Fatalf("metrics output must not contain raw paths")
	}
}

func TestLevelFor(t *testing.T) {
	if levelFor(200) != zerolog.InfoLevel || levelFor(404) != zerolog.WarnLevel || levelFor(502) != zerolog.ErrorLevel {
		t.Fatalf("unexpected level mapping")
	}
}
