package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zeit/config"
	"zeit/infras/otel/mocks"
	"zeit/internal/domains/worldtime/model"
	"zeit/internal/domains/worldtime/service"
	"zeit/internal/handlers/worldtime"
	"zeit/shared/cache"
	"zeit/shared/clock"
	"zeit/shared/ratelimit"
	"zeit/transport/http/middleware"
	"zeit/transport/http/router"
)

type stack struct {
	mux     chi.Router
	clock   *clock.Mock
	cache   cache.ReportCache
	limiter ratelimit.Limiter
}

func newStack(t *testing.T, mutate func(cfg *config.Config)) *stack {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "zeit"
	cfg.App.CORS.AllowedOrigins = []string{"*"}
	cfg.App.CORS.AllowedMethods = []string{"GET", "OPTIONS"}
	cfg.App.CORS.AllowedHeaders = []string{"Content-Type"}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 100
	cfg.App.RateLimiter.WindowSeconds = 60
	cfg.App.RateLimiter.MaxClients = 64
	cfg.App.Cache.FreshnessMillis = 1000
	cfg.App.Cache.MaxEntries = 64

	if mutate != nil {
		mutate(cfg)
	}

	ot := mocks.NewOtel()
	clk := clock.NewMock(time.Date(2025, 1, 15, 3, 30, 0, 0, time.UTC))

	reportCache := cache.NewMemoryCache(cfg, clk, ot)
	limiter := ratelimit.NewMemoryLimiter(cfg, clk, ot)

	t.Cleanup(reportCache.Stop)
	t.Cleanup(limiter.Stop)

	handler := worldtime.New(service.New(ot), reportCache, limiter, clk, cfg, ot)

	r := router.New(
		router.DomainHandlers{WorldTime: handler},
		middleware.NewAppMiddleware(ot, cfg),
		cfg,
	)

	mux := chi.NewRouter()
	r.SetupRoutes(mux)

	return &stack{mux: mux, clock: clk, cache: reportCache, limiter: limiter}
}

func (s *stack) get(target, clientIP string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	r.Header.Set("Origin", "https://example.com")
	if clientIP != "" {
		r.Header.Set("X-Forwarded-For", clientIP)
	}

	recorder := httptest.NewRecorder()
	s.mux.ServeHTTP(recorder, r)

	return recorder
}

func TestCORSHeadersOnEveryResponse(t *testing.T) {
	s := newStack(t, nil)

	success := s.get("/api?timezone=UTC", "203.0.113.7")
	assert.Equal(t, http.StatusOK, success.Code)
	assert.Equal(t, "*", success.Header().Get("Access-Control-Allow-Origin"))

	failure := s.get("/api?timezone=Mars/Phobos", "203.0.113.7")
	assert.Equal(t, http.StatusBadRequest, failure.Code)
	assert.Equal(t, "*", failure.Header().Get("Access-Control-Allow-Origin"))
}

func TestPreflightThroughFullStack(t *testing.T) {
	s := newStack(t, nil)

	r := httptest.NewRequest(http.MethodOptions, "/api", nil)
	r.Header.Set("Origin", "https://example.com")
	r.Header.Set("Access-Control-Request-Method", http.MethodGet)

	recorder := httptest.NewRecorder()
	s.mux.ServeHTTP(recorder, r)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())
	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, recorder.Header().Get("Access-Control-Allow-Methods"), "GET")
}

func TestRepeatRequestWithinWindowIsByteIdentical(t *testing.T) {
	s := newStack(t, nil)

	first := s.get("/api?timezone=Pacific/Auckland", "203.0.113.7")
	require.Equal(t, http.StatusOK, first.Code)

	s.clock.Advance(500 * time.Millisecond)

	second := s.get("/api?timezone=Pacific/Auckland", "203.0.113.7")
	require.Equal(t, http.StatusOK, second.Code)

	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
}

func TestRepeatRequestAfterWindowCarriesNewTimestamp(t *testing.T) {
	s := newStack(t, nil)

	first := s.get("/api?timezone=Pacific/Auckland", "203.0.113.7")
	require.Equal(t, http.StatusOK, first.Code)

	s.clock.Advance(1500 * time.Millisecond)

	second := s.get("/api?timezone=Pacific/Auckland", "203.0.113.7")
	require.Equal(t, http.StatusOK, second.Code)

	var firstReport, secondReport model.TimeReport
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &firstReport))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &secondReport))

	assert.Equal(t, firstReport.UnixMillis+1500, secondReport.UnixMillis)
}

func TestParameterOrderSharesOneCacheEntry(t *testing.T) {
	s := newStack(t, nil)

	first := s.get("/api?timezone=Pacific/Auckland&format=long", "203.0.113.7")
	second := s.get("/api?format=long&timezone=Pacific/Auckland", "203.0.113.7")

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
	assert.Equal(t, 1, s.cache.Len())
}

func TestRateLimitExhaustionThroughFullStack(t *testing.T) {
	s := newStack(t, func(cfg *config.Config) {
		cfg.App.RateLimiter.MaxRequests = 2
		// Distinct zones defeat the cache so every request reaches the
		// limiter.
	})

	zones := []string{"UTC", "GMT", "CET"}

	for i, zone := range zones[:2] {
		recorder := s.get("/api?timezone="+zone, "203.0.113.7")
		assert.Equal(t, http.StatusOK, recorder.Code, "request %d", i+1)
	}

	rejected := s.get("/api?timezone="+zones[2], "203.0.113.7")
	assert.Equal(t, http.StatusTooManyRequests, rejected.Code)
	assert.JSONEq(t, `{"error":"Rate limit exceeded. Please try again later."}`, rejected.Body.String())

	// Another client is unaffected.
	other := s.get("/api?timezone="+zones[2], "198.51.100.9")
	assert.Equal(t, http.StatusOK, other.Code)
}

func TestDocsRouteIsMounted(t *testing.T) {
	s := newStack(t, nil)

	recorder := s.get("/docs/index.html", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
}
