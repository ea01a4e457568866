package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medpub/app-busca-medica/internal/models"
	"github.com/medpub/app-busca-medica/internal/services"
)

const (
	maxTrendingDays  = 90
	maxTrendingHours = 24 * 30
)

// TrendingHandler gerencia os endpoints de tópicos e conteúdos em alta
type TrendingHandler struct {
	recommendations *services.RecommendationService
	topics          services.TopicsProvider
	windowDays      int
	contentHours    int
	defaultLimit    int
}

// NewTrendingHandler cria um novo handler de tendências
func NewTrendingHandler(recommendations *services.RecommendationService, topics services.TopicsProvider, windowDays, contentHours, defaultLimit int) *TrendingHandler {
	return &TrendingHandler{
		recommendations: recommendations,
		topics:          topics,
		windowDays:      windowDays,
		contentHours:    contentHours,
		defaultLimit:    defaultLimit,
	}
}

// Topics godoc
// @Summary Tópicos em alta
// @Description Agrupa o log de buscas da janela por query normalizada e retorna até 20 tópicos com pelo menos 3 buscas, com categoria, taxa de crescimento e termos relacionados.
// @Tags trending
// @Produce json
// @Param days query int false "Janela em dias (máximo: 90)" default(7)
// @Success 200 {object} models.TrendingTopicsResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/trending/topics [get]
func (h *TrendingHandler) Topics(c *gin.Context) {
	days, ok := queryInt(c, "days", h.windowDays, 1, maxTrendingDays)
	if !ok {
		return
	}

	topics, err := h.topics.Topics(c.Request.Context(), days)
	if err != nil {
		respondError(c, "Erro ao calcular tópicos em alta", err)
		return
	}

	c.JSON(http.StatusOK, models.TrendingTopicsResponse{
		WindowDays: days,
		Topics:     topics,
	})
}

// Content godoc
// @Summary Conteúdos em alta
// @Description Ordena conteúdos por engajamento, volume de buscas relacionadas nas últimas horas, recência e velocidade de engajamento.
// @Tags trending
// @Produce json
// @Param hours query int false "Janela do volume de buscas em horas (máximo: 720)" default(72)
// @Param limit query int false "Quantidade de resultados (máximo: 50)" default(10)
// @Success 200 {object} models.TrendingContentResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/trending/content [get]
func (h *TrendingHandler) Content(c *gin.Context) {
	hours, ok := queryInt(c, "hours", h.contentHours, 1, maxTrendingHours)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", h.defaultLimit, 1, maxRecommendationLimit)
	if !ok {
		return
	}

	resp, err := h.recommendations.TrendingContent(c.Request.Context(), hours, limit)
	if err != nil {
		respondError(c, "Erro ao calcular conteúdos em alta", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
