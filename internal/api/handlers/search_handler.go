package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/medpub/app-busca-medica/internal/constants"
	middlewares "github.com/medpub/app-busca-medica/internal/middleware"
	"github.com/medpub/app-busca-medica/internal/models"
	"github.com/medpub/app-busca-medica/internal/services"
)

// SearchHandler gerencia os endpoints de busca, sugestões e log de buscas
type SearchHandler struct {
	searchService *services.SearchService
	validator     *validator.Validate
	defaultLimit  int
}

// NewSearchHandler cria um novo handler de busca
func NewSearchHandler(searchService *services.SearchService, defaultLimit int) *SearchHandler {
	if defaultLimit <= 0 {
		defaultLimit = models.DefaultSearchLimit
	}
	return &SearchHandler{
		searchService: searchService,
		validator:     validator.New(),
		defaultLimit:  defaultLimit,
	}
}

// Search godoc
// @Summary Busca de conteúdo médico
// @Description Expande a query com siglas e sinônimos médicos, busca até 100 candidatos, pontua por relevância e retorna os melhores. As especialidades do header X-User-Specialties aumentam o score de conteúdos da mesma área.
// @Tags search
// @Accept json
// @Produce json
// @Param q query string true "Texto da busca" example(heart attack)
// @Param type query string false "Tipo: ARTICLE, VIDEO, CASE_STUDY, CONFERENCE"
// @Param access query string false "Acesso: FREE, PAID, CME"
// @Param specialty query string false "Especialidade" example(cardiology)
// @Param limit query int false "Quantidade de resultados (máximo: 100)" default(20)
// @Param X-User-ID header string false "ID do usuário"
// @Param X-User-Specialties header string false "Especialidades do usuário, separadas por vírgula"
// @Success 200 {object} models.SearchResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Parâmetros inválidos",
			"details": err.Error(),
		})
		return
	}

	if req.Specialty != "" {
		req.Specialty = strings.ToLower(strings.TrimSpace(req.Specialty))
		if !constants.IsValidSpecialty(req.Specialty) {
			respondError(c, "Parâmetros inválidos", models.ErrInvalidSpecialty)
			return
		}
	}
	if req.Limit == 0 {
		req.Limit = h.defaultLimit
	}

	req.UserID = middlewares.GetUserID(c)
	req.UserSpecialties = middlewares.GetUserSpecialties(c)

	result, err := h.searchService.Search(c.Request.Context(), &req)
	if err != nil {
		respondError(c, "Erro ao executar busca", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Suggestions godoc
// @Summary Sugestões de autocomplete
// @Description Sugere termos do vocabulário médico e buscas recentes do usuário (X-User-ID). Retorna no máximo 8 sugestões.
// @Tags search
// @Produce json
// @Param q query string true "Prefixo digitado" example(hyp)
// @Param X-User-ID header string false "ID do usuário"
// @Success 200 {object} models.SuggestionResponse
// @Router /api/v1/search/suggestions [get]
func (h *SearchHandler) Suggestions(c *gin.Context) {
	q := c.Query("q")
	suggestions := h.searchService.Suggest(c.Request.Context(), q, middlewares.GetUserID(c))

	c.JSON(http.StatusOK, models.SuggestionResponse{
		Query:       q,
		Suggestions: suggestions,
	})
}

// LogQuery godoc
// @Summary Registra uma busca
// @Description Registra no log de buscas uma query executada pelo cliente. O log alimenta tópicos e conteúdos em alta.
// @Tags search
// @Accept json
// @Produce json
// @Param body body models.QueryLogRequest true "Busca executada"
// @Param X-User-ID header string false "ID do usuário"
// @Success 201 {object} models.SearchQueryLogEntry
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/search/log [post]
func (h *SearchHandler) LogQuery(c *gin.Context) {
	var request models.QueryLogRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}

	if err := h.validator.Struct(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validação falhou: " + err.Error()})
		return
	}

	entry, err := h.searchService.LogQuery(c.Request.Context(), middlewares.GetUserID(c), &request)
	if err != nil {
		respondError(c, "Erro ao registrar busca", err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}
