// Package analytics detecta tópicos em alta e agrega volume de buscas
// a partir do log de queries.
package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/medpub/app-busca-medica/internal/models"
	"github.com/medpub/app-busca-medica/internal/search/vocabulary"
)

const (
	// MinTopicSearches é o mínimo de buscas para uma query virar tópico
	MinTopicSearches = 3
	// MaxTopics limita o número de tópicos retornados
	MaxTopics = 20
	// MaxRelatedTerms limita os termos relacionados por tópico
	MaxRelatedTerms = 5
	// DefaultWindowDays é usado quando a janela informada não é positiva
	DefaultWindowDays = 7
	// NewTopicGrowthRate é o crescimento atribuído quando não há buscas na primeira metade da janela
	NewTopicGrowthRate = 100.0
)

// TrendDetector agrupa o log de buscas em tópicos em alta
type TrendDetector struct {
	vocab *vocabulary.Vocabulary
	now   func() time.Time
}

// NewTrendDetector cria um novo detector. Vocabulário nil usa o padrão; now nil usa time.Now.
func NewTrendDetector(vocab *vocabulary.Vocabulary, now func() time.Time) *TrendDetector {
	if vocab == nil {
		vocab = vocabulary.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &TrendDetector{vocab: vocab, now: now}
}

// queryGroup acumula as buscas de uma query normalizada
type queryGroup struct {
	query        string
	count        int
	recentCount  int
	earlierCount int
	totalResults int
}

// avgResults é calculado para diagnóstico, não faz parte do tópico
func (g *queryGroup) avgResults() float64 {
	if g.count == 0 {
		return 0
	}
	return float64(g.totalResults) / float64(g.count)
}

func (g *queryGroup) growthRate() float64 {
	if g.earlierCount > 0 {
		return (float64(g.recentCount)/float64(g.earlierCount) - 1) * 100
	}
	return NewTopicGrowthRate
}

// Detect retorna até MaxTopics tópicos da janela, ordenados por número de buscas.
// O log pode vir sem filtro de data; a janela é aplicada aqui.
func (d *TrendDetector) Detect(log []models.SearchQueryLogEntry, windowDays int) []models.TrendingTopic {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	now := d.now()
	window := time.Duration(windowDays) * 24 * time.Hour
	windowStart := now.Add(-window)
	midpoint := now.Add(-window / 2)

	groups := make(map[string]*queryGroup)
	order := make([]string, 0)

	for _, entry := range log {
		if entry.Timestamp.Before(windowStart) {
			continue
		}
		q := NormalizeQuery(entry.Query)
		if q == "" {
			continue
		}

		g, ok := groups[q]
		if !ok {
			g = &queryGroup{query: q}
			groups[q] = g
			order = append(order, q)
		}
		g.count++
		g.totalResults += entry.ResultsCount
		if entry.Timestamp.Before(midpoint) {
			g.earlierCount++
		} else {
			g.recentCount++
		}
	}

	topics := make([]models.TrendingTopic, 0)
	for _, q := range order {
		g := groups[q]
		if g.count < MinTopicSearches {
			continue
		}
		topics = append(topics, models.TrendingTopic{
			Term:         g.query,
			Category:     d.vocab.Categorize(g.query),
			SearchCount:  g.count,
			GrowthRate:   g.growthRate(),
			RelatedTerms: relatedTerms(g.query, order),
		})
	}

	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].SearchCount > topics[j].SearchCount
	})

	if len(topics) > MaxTopics {
		topics = topics[:MaxTopics]
	}
	return topics
}

// Categorize retorna a categoria de especialidade de uma query
func (d *TrendDetector) Categorize(query string) string {
	return d.vocab.Categorize(NormalizeQuery(query))
}

// relatedTerms busca outras queries que compartilham alguma palavra.
// Palavras casam por substring em qualquer direção ("heart" ~ "heartburn").
func relatedTerms(query string, queries []string) []string {
	words := strings.Fields(query)
	related := make([]string, 0, MaxRelatedTerms)

	for _, other := range queries {
		if len(related) >= MaxRelatedTerms {
			break
		}
		if other == query {
			continue
		}
		if sharesWord(words, strings.Fields(other)) {
			related = append(related, other)
		}
	}
	return related
}

func sharesWord(a, b []string) bool {
	for _, wa := range a {
		for _, wb := range b {
			if strings.Contains(wa, wb) || strings.Contains(wb, wa) {
				return true
			}
		}
	}
	return false
}

// NormalizeQuery remove espaços nas bordas e converte para minúsculas
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Categorize usa o vocabulário padrão para classificar uma query
func Categorize(query string) string {
	return vocabulary.Default().Categorize(NormalizeQuery(query))
}
