package ranking

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/medpub/app-busca-medica/internal/models"
	"github.com/medpub/app-busca-medica/internal/search/query"
)

// Pesos do score de relevância
const (
	TitleQueryBoost     = 100.0
	TitleTermBoost      = 80.0
	TagMatchBoost       = 50.0
	ContentTermBoost    = 10.0
	SpecialtyMatchBoost = 30.0

	QualityMultiplier    = 10.0
	QualityCap           = 50.0
	EngagementMultiplier = 0.5
	EngagementCap        = 25.0

	RecencyWindowDays  = 30.0
	RecencyBase        = 20.0
	RecencyDecayPerDay = 0.67
)

// RelevanceBreakdown detalha cada componente do score de relevância
type RelevanceBreakdown struct {
	TitleQuery float64
	TitleTerms float64
	Tags       float64
	Content    float64
	Specialty  float64
	Quality    float64
	Engagement float64
	Recency    float64
	Final      int
}

// Sum retorna a soma dos componentes antes do arredondamento
func (b RelevanceBreakdown) Sum() float64 {
	return b.TitleQuery + b.TitleTerms + b.Tags + b.Content + b.Specialty +
		b.Quality + b.Engagement + b.Recency
}

// ScoredItem associa um conteúdo ao seu score; o item original não é alterado
type ScoredItem struct {
	Item      *models.ContentItem
	Breakdown RelevanceBreakdown
}

// RelevanceScorer calcula a relevância de um conteúdo para uma query.
// O casamento de termos usa substring (sem fronteira de palavra).
type RelevanceScorer struct {
	expander *query.Expander
	now      func() time.Time
}

// NewRelevanceScorer cria um novo scorer. now nil usa time.Now.
func NewRelevanceScorer(expander *query.Expander, now func() time.Time) *RelevanceScorer {
	if expander == nil {
		expander = query.NewExpander(nil)
	}
	if now == nil {
		now = time.Now
	}
	return &RelevanceScorer{
		expander: expander,
		now:      now,
	}
}

// Score expande a query e calcula o score inteiro do conteúdo
func (s *RelevanceScorer) Score(q string, item *models.ContentItem, userSpecialties []string) int {
	return s.Breakdown(s.expander.ExpandQuery(q), item, userSpecialties).Final
}

// Breakdown calcula o score de uma query já expandida, componente a componente
func (s *RelevanceScorer) Breakdown(expanded *query.ExpandedQuery, item *models.ContentItem, userSpecialties []string) RelevanceBreakdown {
	var b RelevanceBreakdown

	title := strings.ToLower(item.Title)
	content := strings.ToLower(item.Content)

	if strings.Contains(title, expanded.Normalized) {
		b.TitleQuery = TitleQueryBoost
	}

	for _, term := range expanded.Terms {
		if strings.Contains(title, term) {
			b.TitleTerms += TitleTermBoost
		}
		if strings.Contains(content, term) {
			b.Content += ContentTermBoost
		}
	}

	for _, tag := range item.Tags {
		lowerTag := strings.ToLower(tag)
		for _, term := range expanded.Terms {
			if strings.Contains(lowerTag, term) {
				b.Tags += TagMatchBoost
				break
			}
		}
	}

	if len(userSpecialties) > 0 && intersects(userSpecialties, item.Specialties) {
		b.Specialty = SpecialtyMatchBoost
	}

	b.Quality = math.Min(item.Metrics.Rating*QualityMultiplier, QualityCap)
	b.Engagement = math.Min(item.Metrics.EngagementScore*EngagementMultiplier, EngagementCap)
	b.Recency = s.recency(item.PublishedAt)

	b.Final = roundHalfUp(b.Sum())
	return b
}

// recency pode ficar negativo perto do fim da janela de 30 dias
func (s *RelevanceScorer) recency(publishedAt time.Time) float64 {
	days := s.now().Sub(publishedAt).Hours() / 24
	if days < RecencyWindowDays {
		return RecencyBase - days*RecencyDecayPerDay
	}
	return 0
}

// ScoreAll pontua todos os candidatos e devolve em ordem decrescente de score.
// Empates preservam a ordem de entrada.
func (s *RelevanceScorer) ScoreAll(expanded *query.ExpandedQuery, items []models.ContentItem, userSpecialties []string) []ScoredItem {
	scored := make([]ScoredItem, len(items))
	for i := range items {
		scored[i] = ScoredItem{
			Item:      &items[i],
			Breakdown: s.Breakdown(expanded, &items[i], userSpecialties),
		}
	}
	RankScored(scored)
	return scored
}

// RankScored ordena por score final, decrescente e estável
func RankScored(scored []ScoredItem) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Breakdown.Final > scored[j].Breakdown.Final
	})
}

// intersects verifica se há algum elemento em comum (case-insensitive)
func intersects(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := lowerSet(a)
	for _, v := range b {
		if set[strings.ToLower(v)] {
			return true
		}
	}
	return false
}

func lowerSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = true
	}
	return set
}

// roundHalfUp arredonda .5 para cima, inclusive em valores negativos (-2.5 -> -2)
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
