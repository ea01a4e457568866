package typesense

import (
	"testing"

	"github.com/medpub/app-busca-medica/internal/search/vocabulary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynonymGroups(t *testing.T) {
	vocab := vocabulary.New(
		[]vocabulary.Abbreviation{{Code: "mi", Full: "Myocardial Infarction"}},
		[]vocabulary.SynonymGroup{{Term: "Heart Attack", Synonyms: []string{"MI", "acute coronary syndrome"}}},
		nil,
	)

	groups := synonymGroups(vocab)

	require.Len(t, groups.ids, 2)
	assert.Equal(t, []string{"syn_heart_attack", "abbr_mi"}, groups.ids)
	assert.Equal(t, []string{"heart attack", "mi", "acute coronary syndrome"}, groups.sets[0])
	assert.Equal(t, []string{"mi", "myocardial infarction"}, groups.sets[1])
}

func TestSanitizeID(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"heart attack", "heart_attack"},
		{"Crohn's disease", "crohn_s_disease"},
		{"Insuficiência cardíaca", "insuficiencia_cardiaca"},
		{"  covid-19 ", "covid_19"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, sanitizeID(tt.in))
	}
}
