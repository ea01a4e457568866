package recommend

import (
	"math"
	"strings"
	"time"

	"github.com/medpub/app-busca-medica/internal/models"
)

// Pesos do score de tendência
const (
	SearchVolumeMultiplier = 2.0
	SearchVolumeCap        = 50.0
	TrendRecencyWindow     = 24.0 // horas
	TrendRecencyBase       = 30.0
	TrendRecencyDecay      = 1.25 // por hora
	VelocityMultiplier     = 5.0
	VelocityCap            = 25.0
)

// TrendBreakdown detalha a composição do score de tendência
type TrendBreakdown struct {
	Engagement   float64
	SearchVolume float64
	Recency      float64
	Velocity     float64
}

// Total retorna o score final de tendência
func (b TrendBreakdown) Total() float64 {
	return b.Engagement + b.SearchVolume + b.Recency + b.Velocity
}

// TrendingRanker ranqueia conteúdos em alta
type TrendingRanker struct {
	now func() time.Time
}

// NewTrendingRanker cria um novo ranker de tendências. now nil usa time.Now.
func NewTrendingRanker(now func() time.Time) *TrendingRanker {
	if now == nil {
		now = time.Now
	}
	return &TrendingRanker{now: now}
}

// Breakdown calcula o score de tendência de um conteúdo
func (r *TrendingRanker) Breakdown(volumes []models.SearchVolume, item *models.ContentItem) TrendBreakdown {
	b := TrendBreakdown{Engagement: item.Metrics.EngagementScore}

	matched := 0
	title := strings.ToLower(item.Title)
	for _, v := range volumes {
		if matchesVolume(strings.ToLower(strings.TrimSpace(v.Query)), title, item.Tags) {
			matched += v.Count
		}
	}
	b.SearchVolume = math.Min(float64(matched)*SearchVolumeMultiplier, SearchVolumeCap)

	hoursOld := r.now().Sub(item.PublishedAt).Hours()

	// Sem clamp: publicação com data futura fica acima da base
	if hoursOld <= TrendRecencyWindow {
		b.Recency = TrendRecencyBase - hoursOld*TrendRecencyDecay
	}

	b.Velocity = math.Min(item.Metrics.EngagementScore/math.Max(hoursOld, 1)*VelocityMultiplier, VelocityCap)

	return b
}

// Score retorna o score total de tendência
func (r *TrendingRanker) Score(volumes []models.SearchVolume, item *models.ContentItem) float64 {
	return r.Breakdown(volumes, item).Total()
}

// Rank ordena os candidatos pelo score de tendência e retorna os `limit` primeiros
func (r *TrendingRanker) Rank(volumes []models.SearchVolume, candidates []models.ContentItem, limit int) []models.ContentItem {
	scored := make([]scoredCandidate, len(candidates))
	for i := range candidates {
		scored[i] = scoredCandidate{index: i, score: r.Score(volumes, &candidates[i])}
	}
	return topN(scored, candidates, limit)
}

// matchesVolume: a tag casa em qualquer direção; o título só quando contém a query
func matchesVolume(query, title string, tags []string) bool {
	if query == "" {
		return false
	}
	for _, tag := range tags {
		t := strings.ToLower(strings.TrimSpace(tag))
		if t == "" {
			continue
		}
		if strings.Contains(query, t) || strings.Contains(t, query) {
			return true
		}
	}
	return strings.Contains(title, query)
}
