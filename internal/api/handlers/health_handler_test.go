package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/medpub/app-busca-medica/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkerFunc func(ctx context.Context) error

func (f checkerFunc) Health(ctx context.Context) error { return f(ctx) }

var (
	healthy   = checkerFunc(func(context.Context) error { return nil })
	unhealthy = checkerFunc(func(context.Context) error { return errors.New("down") })
)

func serveHealth(t *testing.T, h *HealthHandler, path string) (int, HealthResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/liveness", h.Liveness)
	r.GET("/readiness", h.Readiness)
	r.GET("/health", h.Health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var resp HealthResponse
	decode(t, w, &resp)
	return w.Code, resp
}

func TestHealthHandler_Liveness(t *testing.T) {
	h := NewHealthHandler(map[string]services.HealthChecker{"typesense": unhealthy}, nil)

	code, resp := serveHealth(t, h, "/liveness")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "alive", resp.Status)
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name     string
		required map[string]services.HealthChecker
		optional map[string]services.HealthChecker
		code     int
		status   string
	}{
		{
			name:     "todas disponíveis",
			required: map[string]services.HealthChecker{"typesense": healthy},
			code:     http.StatusOK,
			status:   "ready",
		},
		{
			name:     "obrigatória indisponível",
			required: map[string]services.HealthChecker{"typesense": unhealthy, "query_log": healthy},
			code:     http.StatusServiceUnavailable,
			status:   "not_ready",
		},
		{
			name:     "opcional não afeta readiness",
			required: map[string]services.HealthChecker{"typesense": healthy},
			optional: map[string]services.HealthChecker{"query_log": unhealthy},
			code:     http.StatusOK,
			status:   "ready",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := serveHealth(t, NewHealthHandler(tt.required, tt.optional), "/readiness")
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.status, resp.Status)
		})
	}
}

func TestHealthHandler_Health(t *testing.T) {
	h := NewHealthHandler(
		map[string]services.HealthChecker{"typesense": healthy},
		map[string]services.HealthChecker{"query_log": unhealthy},
	)

	code, resp := serveHealth(t, h, "/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, map[string]string{"typesense": "ok", "query_log": "failed"}, resp.Checks)
	assert.Contains(t, resp.Error, "query_log")

	h = NewHealthHandler(
		map[string]services.HealthChecker{"typesense": unhealthy, "content": unhealthy},
		nil,
	)
	code, resp = serveHealth(t, h, "/health")
	require.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "dependências indisponíveis: content, typesense", resp.Error)
}
