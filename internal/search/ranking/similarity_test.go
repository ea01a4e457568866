package ranking

import (
	"testing"

	"github.com/medpub/app-busca-medica/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardioArticle(id string) models.ContentItem {
	return models.ContentItem{
		ID:          id,
		Type:        models.ContentTypeArticle,
		Difficulty:  models.DifficultyIntermediate,
		Tags:        []string{"arrhythmia", "ecg"},
		Specialties: []string{"cardiology"},
		Author:      models.Author{Specialties: []string{"cardiology"}},
	}
}

func TestSimilarity(t *testing.T) {
	base := cardioArticle("a")

	tests := []struct {
		name     string
		other    func() models.ContentItem
		expected float64
	}{
		{
			name:     "idênticos",
			other:    func() models.ContentItem { return cardioArticle("b") },
			expected: 100,
		},
		{
			name: "autores de especialidades diferentes",
			other: func() models.ContentItem {
				c := cardioArticle("b")
				c.Author.Specialties = []string{"neurology"}
				return c
			},
			expected: 90,
		},
		{
			name: "metade das tags e tipo diferente",
			other: func() models.ContentItem {
				c := cardioArticle("b")
				c.Tags = []string{"ECG", "stroke", "atrial fibrillation"}
				c.Type = models.ContentTypeVideo
				return c
			},
			// jaccard = 1/4
			expected: 10 + 30 + 10 + 5,
		},
		{
			name: "especialidades parcialmente sobrepostas",
			other: func() models.ContentItem {
				c := cardioArticle("b")
				c.Specialties = []string{"Cardiology", "emergency"}
				return c
			},
			expected: 40 + 15 + 15 + 10 + 5,
		},
		{
			name: "nada em comum",
			other: func() models.ContentItem {
				return models.ContentItem{
					ID:          "b",
					Type:        models.ContentTypeConference,
					Difficulty:  models.DifficultyExpert,
					Tags:        []string{"psoriasis"},
					Specialties: []string{"dermatology"},
				}
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := tt.other()
			assert.InDelta(t, tt.expected, Similarity(&base, &other), 1e-9)
		})
	}
}

func TestSimilarity_EmptySets(t *testing.T) {
	a := models.ContentItem{ID: "a"}
	b := models.ContentItem{ID: "b"}

	// só tipo e dificuldade (ambos vazios) coincidem
	assert.Equal(t, SameTypeBonus+SameDifficultyBonus, Similarity(&a, &b))
}

func TestSimilarity_SymmetricAndBounded(t *testing.T) {
	items := []models.ContentItem{
		cardioArticle("a"),
		{ID: "b", Type: models.ContentTypeVideo, Tags: []string{"ecg", "stroke"}, Specialties: []string{"neurology", "cardiology"}},
		{ID: "c", Type: models.ContentTypeCaseStudy, Difficulty: models.DifficultyExpert, Tags: []string{"sepsis"}},
		{ID: "d", Type: models.ContentTypeArticle, Tags: []string{"ECG"}, Author: models.Author{Specialties: []string{"Cardiology"}}},
		{ID: "e"},
	}

	for i := range items {
		for j := range items {
			ab := Similarity(&items[i], &items[j])
			ba := Similarity(&items[j], &items[i])
			assert.Equal(t, ab, ba, "%s x %s", items[i].ID, items[j].ID)
			assert.GreaterOrEqual(t, ab, 0.0)
			assert.LessOrEqual(t, ab, MaxSimilarity)
		}
	}
}

func TestRankSimilar(t *testing.T) {
	target := cardioArticle("target")

	partial := cardioArticle("partial")
	partial.Tags = []string{"ecg"}
	partial.Author.Specialties = nil

	unrelated := models.ContentItem{
		ID:          "unrelated",
		Type:        models.ContentTypeConference,
		Difficulty:  models.DifficultyExpert,
		Tags:        []string{"acne"},
		Specialties: []string{"dermatology"},
	}

	candidates := []models.ContentItem{
		partial,
		cardioArticle("target"),
		unrelated,
		cardioArticle("twin"),
	}

	result := RankSimilar(&target, candidates, 10)

	require.Len(t, result, 2)
	assert.Equal(t, "twin", result[0].Item.ID)
	assert.Equal(t, 100.0, result[0].Similarity)
	assert.Equal(t, "partial", result[1].Item.ID)
	assert.InDelta(t, 20+30+15+5, result[1].Similarity, 1e-9)
}

func TestRankSimilar_Limit(t *testing.T) {
	target := cardioArticle("target")
	candidates := []models.ContentItem{
		cardioArticle("one"),
		cardioArticle("two"),
		cardioArticle("three"),
	}

	result := RankSimilar(&target, candidates, 2)
	require.Len(t, result, 2)
	assert.Equal(t, "one", result[0].Item.ID)
	assert.Equal(t, "two", result[1].Item.ID)

	assert.Empty(t, RankSimilar(&target, candidates, 0))
	assert.Empty(t, RankSimilar(&target, nil, 5))
}
