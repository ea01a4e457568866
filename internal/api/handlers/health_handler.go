package handlers

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medpub/app-busca-medica/internal/services"
)

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct {
	required map[string]services.HealthChecker
	optional map[string]services.HealthChecker
}

// NewHealthHandler cria um novo handler de health check.
// Dependências obrigatórias definem o readiness; as opcionais só aparecem no /health.
func NewHealthHandler(required, optional map[string]services.HealthChecker) *HealthHandler {
	return &HealthHandler{
		required: required,
		optional: optional,
	}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Verifica se a aplicação está viva (sem checagem de dependências externas)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe endpoint
// @Description Verifica se a aplicação está pronta para receber tráfego (valida o Typesense)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "ready",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if failed := runChecks(ctx, h.required, response.Checks); len(failed) > 0 {
		response.Status = "not_ready"
		response.Error = "dependências indisponíveis: " + strings.Join(failed, ", ")
	}

	statusCode := http.StatusOK
	if response.Status == "not_ready" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Health godoc
// @Summary Comprehensive health check endpoint
// @Description Verifica a saúde completa da aplicação, incluindo o log de buscas (para monitoramento externo de uptime)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "healthy",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	failed := runChecks(ctx, h.required, response.Checks)
	degraded := runChecks(ctx, h.optional, response.Checks)

	switch {
	case len(failed) > 0:
		response.Status = "unhealthy"
		response.Error = "dependências indisponíveis: " + strings.Join(failed, ", ")
	case len(degraded) > 0:
		response.Status = "degraded"
		response.Error = "dependências opcionais indisponíveis: " + strings.Join(degraded, ", ")
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// runChecks executa as checagens e preenche o mapa; retorna as que falharam, ordenadas
func runChecks(ctx context.Context, checks map[string]services.HealthChecker, out map[string]string) []string {
	var failed []string
	for name, checker := range checks {
		if err := checker.Health(ctx); err != nil {
			out[name] = "failed"
			failed = append(failed, name)
			continue
		}
		out[name] = "ok"
	}
	sort.Strings(failed)
	return failed
}
