package ranking

import (
	"math"
	"sort"

	"github.com/medpub/app-busca-medica/internal/models"
)

// Pesos da similaridade entre conteúdos (máximo teórico = 100)
const (
	TagSimilarityWeight       = 40.0
	SpecialtySimilarityWeight = 30.0
	SameTypeBonus             = 15.0
	AuthorSpecialtyBonus      = 10.0
	SameDifficultyBonus       = 5.0
	MaxSimilarity             = 100.0
)

// Similarity calcula a similaridade entre dois conteúdos, em [0, 100].
// Todos os componentes são simétricos: Similarity(a, b) == Similarity(b, a).
func Similarity(a, b *models.ContentItem) float64 {
	score := jaccard(a.Tags, b.Tags)*TagSimilarityWeight +
		overlapByMax(a.Specialties, b.Specialties)*SpecialtySimilarityWeight

	if a.Type == b.Type {
		score += SameTypeBonus
	}
	if intersects(a.Author.Specialties, b.Author.Specialties) {
		score += AuthorSpecialtyBonus
	}
	if a.Difficulty == b.Difficulty {
		score += SameDifficultyBonus
	}

	return math.Max(0, math.Min(score, MaxSimilarity))
}

// jaccard retorna |A∩B| / |A∪B| sobre as tags em minúsculas; 0 quando a união é vazia
func jaccard(a, b []string) float64 {
	setA := lowerSet(a)
	setB := lowerSet(b)

	union := len(setA)
	intersection := 0
	for v := range setB {
		if setA[v] {
			intersection++
		} else {
			union++
		}
	}

	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// overlapByMax retorna |A∩B| / max(|A|, |B|); 0 quando ambos são vazios
func overlapByMax(a, b []string) float64 {
	setA := lowerSet(a)
	setB := lowerSet(b)

	maxLen := len(setA)
	if len(setB) > maxLen {
		maxLen = len(setB)
	}
	if maxLen == 0 {
		return 0
	}

	intersection := 0
	for v := range setB {
		if setA[v] {
			intersection++
		}
	}
	return float64(intersection) / float64(maxLen)
}

// SimilarItem associa um conteúdo à sua similaridade com um conteúdo de referência
type SimilarItem struct {
	Item       *models.ContentItem
	Similarity float64
}

// RankSimilar ordena os candidatos pela similaridade com target.
// O próprio target (mesmo ID) e candidatos com similaridade zero são descartados.
func RankSimilar(target *models.ContentItem, candidates []models.ContentItem, limit int) []SimilarItem {
	result := make([]SimilarItem, 0, len(candidates))
	for i := range candidates {
		if candidates[i].ID == target.ID {
			continue
		}
		sim := Similarity(target, &candidates[i])
		if sim <= 0 {
			continue
		}
		result = append(result, SimilarItem{Item: &candidates[i], Similarity: sim})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Similarity > result[j].Similarity
	})

	if limit >= 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}
