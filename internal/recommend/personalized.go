package recommend

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/medpub/app-busca-medica/internal/models"
)

// Pesos da recomendação personalizada
const (
	SpecialtyAffinity      = 50.0
	PreferredTypeAffinity  = 30.0
	ReadingLevelAffinity   = 20.0
	EngagementWeight       = 0.3
	EngagementCap          = 15.0
	RatingWeight           = 3.0
	RatingCap              = 15.0
	SeenPenalty            = -25.0
	FreshPopularBonus      = 10.0
	FreshWindow            = 7 * 24 * time.Hour
	FreshEngagementMinimum = 50.0
)

const (
	// PersonalizedReason é o motivo fixo devolvido com as recomendações personalizadas
	PersonalizedReason = "Based on your specialties, preferred formats and reading level"
	// PersonalizedConfidence é a confiança fixa quando há recomendações
	PersonalizedConfidence = 0.85
)

// Personalized recomenda conteúdos de acordo com o perfil do usuário
type Personalized struct {
	now func() time.Time
}

// NewPersonalized cria um recomendador personalizado. now nil usa time.Now.
func NewPersonalized(now func() time.Time) *Personalized {
	if now == nil {
		now = time.Now
	}
	return &Personalized{now: now}
}

// Score calcula o score de afinidade de um candidato com o perfil
func (p *Personalized) Score(profile *models.UserProfile, item *models.ContentItem) float64 {
	score := 0.0

	if containsAny(profile.Specialties, item.Specialties) {
		score += SpecialtyAffinity
	}
	if containsType(profile.PreferredContentTypes, item.Type) {
		score += PreferredTypeAffinity
	}
	if profile.ReadingLevel != "" && item.Difficulty == profile.ReadingLevel {
		score += ReadingLevelAffinity
	}

	score += math.Min(item.Metrics.EngagementScore*EngagementWeight, EngagementCap)
	score += math.Min(item.Metrics.Rating*RatingWeight, RatingCap)

	// Conteúdo já visto é penalizado, mas não excluído
	if containsString(profile.InteractionHistory, item.ID) {
		score += SeenPenalty
	}

	if p.now().Sub(item.PublishedAt) < FreshWindow && item.Metrics.EngagementScore > FreshEngagementMinimum {
		score += FreshPopularBonus
	}

	return score
}

// Recommend ordena os candidatos por afinidade e retorna os `limit` primeiros.
// Empates preservam a ordem de entrada.
func (p *Personalized) Recommend(profile *models.UserProfile, candidates []models.ContentItem, limit int) models.RecommendationResponse {
	if profile == nil {
		profile = &models.UserProfile{}
	}

	scored := make([]scoredCandidate, len(candidates))
	for i := range candidates {
		scored[i] = scoredCandidate{index: i, score: p.Score(profile, &candidates[i])}
	}

	return models.RecommendationResponse{
		Recommendations: topN(scored, candidates, limit),
		Reason:          PersonalizedReason,
		Confidence:      confidenceFor(len(candidates), limit, PersonalizedConfidence),
	}
}

type scoredCandidate struct {
	index int
	score float64
}

// topN ordena de forma estável e copia os `limit` primeiros candidatos
func topN(scored []scoredCandidate, candidates []models.ContentItem, limit int) []models.ContentItem {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if limit < 0 {
		limit = 0
	}
	if len(scored) > limit {
		scored = scored[:limit]
	}

	out := make([]models.ContentItem, 0, len(scored))
	for _, s := range scored {
		out = append(out, candidates[s.index])
	}
	return out
}

func confidenceFor(candidates, limit int, confidence float64) float64 {
	if candidates == 0 || limit <= 0 {
		return 0.0
	}
	return confidence
}

// containsAny compara especialidades sem diferenciar maiúsculas
func containsAny(set, values []string) bool {
	for _, v := range values {
		for _, s := range set {
			if strings.EqualFold(s, v) {
				return true
			}
		}
	}
	return false
}

func containsString(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

func containsType(set []models.ContentType, t models.ContentType) bool {
	for _, s := range set {
		if s == t {
			return true
		}
	}
	return false
}
