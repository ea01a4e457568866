package recommend

import (
	"testing"
	"time"

	"github.com/medpub/app-busca-medica/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func nowFunc() time.Time { return fixedNow }

func cardiologist() *models.UserProfile {
	return &models.UserProfile{
		Specialties:           []string{"cardiology"},
		ReadingLevel:          models.DifficultyIntermediate,
		PreferredContentTypes: []models.ContentType{models.ContentTypeArticle},
	}
}

func TestPersonalizedScore(t *testing.T) {
	p := NewPersonalized(nowFunc)

	tests := []struct {
		name     string
		profile  *models.UserProfile
		item     models.ContentItem
		expected float64
	}{
		{
			name:    "afinidade completa",
			profile: cardiologist(),
			item: models.ContentItem{
				ID:          "a1",
				Type:        models.ContentTypeArticle,
				Difficulty:  models.DifficultyIntermediate,
				Specialties: []string{"Cardiology"},
				PublishedAt: fixedNow.AddDate(0, 0, -30),
				Metrics:     models.ContentMetrics{EngagementScore: 20, Rating: 4},
			},
			expected: 50 + 30 + 20 + 6 + 12,
		},
		{
			name: "conteúdo já visto é penalizado",
			profile: &models.UserProfile{
				Specialties:        []string{"cardiology"},
				InteractionHistory: []string{"seen"},
			},
			item: models.ContentItem{
				ID:          "seen",
				Specialties: []string{"cardiology"},
				PublishedAt: fixedNow.AddDate(0, 0, -30),
			},
			expected: 50 - 25,
		},
		{
			name:    "novo e popular ganha bônus",
			profile: &models.UserProfile{},
			item: models.ContentItem{
				PublishedAt: fixedNow.Add(-48 * time.Hour),
				Metrics:     models.ContentMetrics{EngagementScore: 60},
			},
			expected: 15 + 10,
		},
		{
			name:    "engajamento no limite não ganha bônus",
			profile: &models.UserProfile{},
			item: models.ContentItem{
				PublishedAt: fixedNow.Add(-48 * time.Hour),
				Metrics:     models.ContentMetrics{EngagementScore: 50},
			},
			expected: 15,
		},
		{
			name:    "popular mas antigo",
			profile: &models.UserProfile{},
			item: models.ContentItem{
				PublishedAt: fixedNow.AddDate(0, 0, -8),
				Metrics:     models.ContentMetrics{EngagementScore: 200, Rating: 9},
			},
			expected: 15 + 15,
		},
		{
			name:    "nível de leitura vazio não casa com dificuldade vazia",
			profile: &models.UserProfile{},
			item: models.ContentItem{
				PublishedAt: fixedNow.AddDate(-1, 0, 0),
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, p.Score(tt.profile, &tt.item), 1e-9)
		})
	}
}

func TestPersonalizedRecommend_EmptyCandidates(t *testing.T) {
	p := NewPersonalized(nowFunc)

	resp := p.Recommend(cardiologist(), nil, 10)

	assert.NotNil(t, resp.Recommendations)
	assert.Empty(t, resp.Recommendations)
	assert.Equal(t, 0.0, resp.Confidence)
	assert.Equal(t, PersonalizedReason, resp.Reason)
}

func TestPersonalizedRecommend_Order(t *testing.T) {
	p := NewPersonalized(nowFunc)
	old := fixedNow.AddDate(0, -2, 0)

	candidates := []models.ContentItem{
		{ID: "derm", Specialties: []string{"dermatology"}, PublishedAt: old},
		{ID: "cardio-video", Type: models.ContentTypeVideo, Specialties: []string{"cardiology"}, PublishedAt: old},
		{ID: "cardio-article", Type: models.ContentTypeArticle, Specialties: []string{"cardiology"}, PublishedAt: old},
		{ID: "derm-2", Specialties: []string{"dermatology"}, PublishedAt: old},
	}

	resp := p.Recommend(cardiologist(), candidates, 3)

	require.Len(t, resp.Recommendations, 3)
	ids := []string{resp.Recommendations[0].ID, resp.Recommendations[1].ID, resp.Recommendations[2].ID}
	assert.Equal(t, []string{"cardio-article", "cardio-video", "derm"}, ids)
	assert.Equal(t, PersonalizedConfidence, resp.Confidence)
}

func TestPersonalizedRecommend_Length(t *testing.T) {
	p := NewPersonalized(nowFunc)

	candidates := make([]models.ContentItem, 4)
	for i := range candidates {
		candidates[i] = models.ContentItem{ID: string(rune('a' + i)), PublishedAt: fixedNow}
	}

	tests := []struct {
		limit      int
		expected   int
		confidence float64
	}{
		{limit: 0, expected: 0, confidence: 0},
		{limit: 2, expected: 2, confidence: PersonalizedConfidence},
		{limit: 4, expected: 4, confidence: PersonalizedConfidence},
		{limit: 10, expected: 4, confidence: PersonalizedConfidence},
	}

	for _, tt := range tests {
		resp := p.Recommend(nil, candidates, tt.limit)
		assert.Len(t, resp.Recommendations, tt.expected, "limit %d", tt.limit)
		assert.Equal(t, tt.confidence, resp.Confidence, "limit %d", tt.limit)
	}
}

func TestPersonalizedRecommend_DoesNotMutateInput(t *testing.T) {
	p := NewPersonalized(nowFunc)
	candidates := []models.ContentItem{
		{ID: "low", PublishedAt: fixedNow.AddDate(0, -1, 0)},
		{ID: "high", Specialties: []string{"cardiology"}, PublishedAt: fixedNow.AddDate(0, -1, 0)},
	}

	resp := p.Recommend(cardiologist(), candidates, 2)

	require.Len(t, resp.Recommendations, 2)
	assert.Equal(t, "high", resp.Recommendations[0].ID)
	assert.Equal(t, "low", candidates[0].ID)
}
