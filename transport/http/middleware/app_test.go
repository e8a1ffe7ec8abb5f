package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"zeit/config"
	"zeit/infras/otel/mocks"
	"zeit/transport/http/middleware"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:     "forwarded-for single hop",
			headers:  map[string]string{"X-Forwarded-For": "203.0.113.7"},
			expected: "203.0.113.7",
		},
		{
			name:     "forwarded-for takes first hop",
			headers:  map[string]string{"X-Forwarded-For": "203.0.113.7, 198.51.100.9, 10.0.0.1"},
			expected: "203.0.113.7",
		},
		{
			name: "forwarded-for beats real-ip",
			headers: map[string]string{
				"X-Forwarded-For": "203.0.113.7",
				"X-Real-IP":       "198.51.100.9",
			},
			expected: "203.0.113.7",
		},
		{
			name:     "real-ip fallback",
			headers:  map[string]string{"X-Real-IP": " 198.51.100.9 "},
			expected: "198.51.100.9",
		},
		{
			name:       "remote addr fallback",
			remoteAddr: "192.0.2.4:51334",
			expected:   "192.0.2.4:51334",
		},
		{
			name:     "unknown bucket when nothing identifies the client",
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api", nil)
			r.RemoteAddr = tt.remoteAddr
			for name, value := range tt.headers {
				r.Header.Set(name, value)
			}

			assert.Equal(t, tt.expected, middleware.ClientIP(r))
		})
	}
}

func TestRequestIDGeneratesWhenAbsent(t *testing.T) {
	m := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{})

	handler := m.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api", nil))

	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

func TestRequestIDEchoesInbound(t *testing.T) {
	m := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{})

	handler := m.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/api", nil)
	r.Header.Set("X-Request-ID", "req-42")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, r)

	assert.Equal(t, "req-42", recorder.Header().Get("X-Request-ID"))
}
