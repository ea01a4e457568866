package query

import (
	"testing"

	"github.com/medpub/app-busca-medica/internal/search/vocabulary"
	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	e := NewExpander(nil)

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{
			name:     "sinônimos de termo leigo",
			query:    "heart attack",
			expected: []string{"heart attack", "myocardial infarction", "mi", "acute coronary syndrome"},
		},
		{
			name:     "sigla em token único",
			query:    "HTN",
			expected: []string{"htn", "hypertension"},
		},
		{
			name:     "sinônimos e sigla sem duplicatas",
			query:    "copd",
			expected: []string{"copd", "chronic obstructive pulmonary disease", "emphysema", "chronic bronchitis", "copd*"},
		},
		{
			name:     "termo de sinônimo dentro de query maior",
			query:    "Stroke Rehabilitation",
			expected: []string{"stroke rehabilitation", "cerebrovascular accident", "cva", "brain attack"},
		},
		{
			name:     "token único longo ganha curinga",
			query:    "Migraine",
			expected: []string{"migraine", "migraine*"},
		},
		{
			name:     "token curto sem curinga",
			query:    "flu",
			expected: []string{"flu"},
		},
		{
			name:     "sigla e curinga juntos",
			query:    "AFIB",
			expected: []string{"afib", "atrial fibrillation", "afib*"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.Expand(tt.query))
		})
	}
}

func TestExpand_AlwaysContainsQuery(t *testing.T) {
	e := NewExpander(nil)

	for _, q := range []string{"", "MI", "Heart Attack", "chest pain workup", "DKA in children", "ÉCG"} {
		terms := e.Expand(q)
		assert.NotEmpty(t, terms)
		assert.Contains(t, terms, terms[0])
		assert.Equal(t, e.ExpandQuery(q).Normalized, terms[0], "primeiro termo é a query em minúsculas")
	}
}

func TestExpand_NoDuplicates(t *testing.T) {
	// "mi" vem do sinônimo e "myocardial infarction" aparece pelos dois caminhos
	terms := NewExpander(nil).Expand("heart attack mi")

	seen := make(map[string]bool)
	for _, term := range terms {
		assert.False(t, seen[term], "termo duplicado: %s", term)
		seen[term] = true
	}
	assert.Contains(t, terms, "myocardial infarction")
}

func TestExpand_CustomVocabulary(t *testing.T) {
	vocab := vocabulary.New(
		[]vocabulary.Abbreviation{{Code: "SOB", Full: "shortness of breath"}},
		[]vocabulary.SynonymGroup{{Term: "fever", Synonyms: []string{"pyrexia"}}},
		nil,
	)
	e := NewExpander(vocab)

	assert.Equal(t, []string{"sob", "shortness of breath"}, e.Expand("SOB"))
	assert.Equal(t, []string{"high fever", "pyrexia"}, e.Expand("high fever"))
	assert.Equal(t, []string{"heart attack"}, e.Expand("heart attack"))
}

func TestIsWildcard(t *testing.T) {
	assert.True(t, IsWildcard("migraine*"))
	assert.False(t, IsWildcard("migraine"))
}
