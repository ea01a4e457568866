package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	middlewares "github.com/medpub/app-busca-medica/internal/middleware"
	"github.com/medpub/app-busca-medica/internal/models"
	"github.com/medpub/app-busca-medica/internal/services"
)

const maxRecommendationLimit = 50

// RecommendationHandler gerencia recomendações personalizadas e de conteúdo similar
type RecommendationHandler struct {
	recommendations *services.RecommendationService
	validator       *validator.Validate
	defaultLimit    int
}

// NewRecommendationHandler cria um novo handler de recomendações
func NewRecommendationHandler(recommendations *services.RecommendationService, defaultLimit int) *RecommendationHandler {
	if defaultLimit <= 0 {
		defaultLimit = services.DefaultRecommendationLimit
	}
	return &RecommendationHandler{
		recommendations: recommendations,
		validator:       validator.New(),
		defaultLimit:    defaultLimit,
	}
}

// Recommend godoc
// @Summary Recomendações personalizadas
// @Description Ordena conteúdos recentes pela afinidade com o perfil (especialidades, formatos preferidos e nível de leitura). Sem especialidades no corpo, usa as do header X-User-Specialties.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param body body models.RecommendationRequest true "Perfil e limite"
// @Param X-User-Specialties header string false "Especialidades do usuário, separadas por vírgula"
// @Success 200 {object} models.RecommendationResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/recommendations [post]
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var request models.RecommendationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}

	if err := h.validator.Struct(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validação falhou: " + err.Error()})
		return
	}

	profile := request.Profile.ToProfile()
	if len(profile.Specialties) == 0 {
		profile.Specialties = middlewares.GetUserSpecialties(c)
	}

	limit := request.Limit
	if limit == 0 {
		limit = h.defaultLimit
	}

	resp, err := h.recommendations.Personalized(c.Request.Context(), &profile, limit)
	if err != nil {
		respondError(c, "Erro ao gerar recomendações", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Similar godoc
// @Summary Conteúdos similares
// @Description Retorna conteúdos parecidos com o informado, pela similaridade de tags, especialidades, tipo, especialidade do autor e dificuldade.
// @Tags recommendations
// @Produce json
// @Param id path string true "ID do conteúdo"
// @Param limit query int false "Quantidade de resultados (máximo: 50)" default(10)
// @Success 200 {object} models.RecommendationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/content/{id}/similar [get]
func (h *RecommendationHandler) Similar(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID do conteúdo é obrigatório"})
		return
	}

	limit, ok := queryInt(c, "limit", h.defaultLimit, 1, maxRecommendationLimit)
	if !ok {
		return
	}

	resp, err := h.recommendations.Similar(c.Request.Context(), id, limit)
	if err != nil {
		respondError(c, "Erro ao buscar conteúdos similares", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
