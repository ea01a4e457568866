package typesense

import (
	"errors"
	"testing"
	"time"

	"github.com/medpub/app-busca-medica/internal/models"
	"github.com/medpub/app-busca-medica/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/typesense/typesense-go/v3/typesense/api"
	"github.com/typesense/typesense-go/v3/typesense/api/pointer"
)

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name           string
		terms          []string
		expectedQ      string
		expectedPrefix bool
	}{
		{
			name:      "termos expandidos",
			terms:     []string{"heart attack", "myocardial infarction", "mi", "acute coronary syndrome"},
			expectedQ: "heart attack myocardial infarction mi acute coronary syndrome",
		},
		{
			name:           "curinga vira prefix",
			terms:          []string{"migraine", "migraine*"},
			expectedQ:      "migraine",
			expectedPrefix: true,
		},
		{
			name:           "radical do curinga vai para o fim",
			terms:          []string{"afib", "atrial fibrillation", "afib*"},
			expectedQ:      "atrial fibrillation afib",
			expectedPrefix: true,
		},
		{
			name:      "vazios e repetidos",
			terms:     []string{" ", "flu", "flu"},
			expectedQ: "flu",
		},
		{
			name:      "sem termos",
			terms:     nil,
			expectedQ: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, prefix := buildQuery(tt.terms)
			assert.Equal(t, tt.expectedQ, q)
			assert.Equal(t, tt.expectedPrefix, prefix)
		})
	}
}

func TestBuildFilterBy(t *testing.T) {
	maxPrice := 49.9

	tests := []struct {
		name     string
		filter   services.CandidateFilter
		expected string
	}{
		{
			name:     "somente publicados",
			filter:   services.CandidateFilter{},
			expected: "status:=published",
		},
		{
			name: "todos os filtros",
			filter: services.CandidateFilter{
				Type:           models.ContentTypeArticle,
				AccessType:     models.AccessTypeCME,
				Specialties:    []string{"cardiology", "emergency medicine"},
				PublishedAfter: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
				MaxPrice:       &maxPrice,
				ExcludeIDs:     []string{"a1"},
			},
			expected: "status:=published && type:=`ARTICLE` && access_type:=`CME` && " +
				"specialties:[`cardiology`,`emergency medicine`] && published_at:>=1717200000 && " +
				"(access_type:=FREE || price:<=49.90) && id:!=[`a1`]",
		},
		{
			name:     "crase é removida dos valores",
			filter:   services.CandidateFilter{Specialties: []string{"neuro`logy"}},
			expected: "status:=published && specialties:[`neurology`]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, buildFilterBy(tt.filter))
		})
	}
}

func TestClampPerPage(t *testing.T) {
	assert.Equal(t, maxPerPage, clampPerPage(0))
	assert.Equal(t, maxPerPage, clampPerPage(1000))
	assert.Equal(t, 100, clampPerPage(100))
}

func TestIsNotFound(t *testing.T) {
	assert.False(t, isNotFound(nil))
	assert.True(t, isNotFound(errors.New("status: 404 response: {\"message\": \"Not Found\"}")))
	assert.False(t, isNotFound(errors.New("connection refused")))
}

func TestHighlightsFrom(t *testing.T) {
	tests := []struct {
		name       string
		highlights *[]api.SearchHighlight
		expected   map[string]string
	}{
		{name: "sem destaques", highlights: nil, expected: nil},
		{
			name: "título completo e snippet do conteúdo",
			highlights: &[]api.SearchHighlight{
				{
					Field:   pointer.String("title"),
					Snippet: pointer.String("<mark>Heart</mark> Attack"),
					Value:   pointer.String("<mark>Heart</mark> Attack Recognition"),
				},
				{
					Field:   pointer.String("content"),
					Snippet: pointer.String("chest pain after <mark>MI</mark>"),
				},
			},
			expected: map[string]string{
				"title":   "<mark>Heart</mark> Attack Recognition",
				"content": "chest pain after <mark>MI</mark>",
			},
		},
		{
			name: "sem marcação ou sem campo é ignorado",
			highlights: &[]api.SearchHighlight{
				{Field: pointer.String("title"), Snippet: pointer.String("Heart Attack")},
				{Snippet: pointer.String("<mark>mi</mark>")},
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, highlightsFrom(tt.highlights))
		})
	}
}
