package query

import (
	"strings"
	"unicode/utf8"

	"github.com/medpub/app-busca-medica/internal/search/vocabulary"
)

const (
	// MaxSuggestions é o número máximo de sugestões retornadas
	MaxSuggestions = 8
	// maxRecentSuggestions limita quantas buscas recentes entram nas sugestões
	maxRecentSuggestions = 3
	// maxPatternSuggestions limita os padrões gerados
	maxPatternSuggestions = 2
)

// suggestionPatterns são os padrões gerados para queries com mais de 2 caracteres.
// Só os dois primeiros são usados.
var suggestionPatterns = []string{
	"%s symptoms",
	"%s treatment",
	"%s diagnosis",
	"%s guidelines",
	"%s case study",
	"%s research",
}

// Suggester gera sugestões de autocomplete a partir do vocabulário e do histórico
type Suggester struct {
	vocab *vocabulary.Vocabulary
}

// NewSuggester cria um novo gerador de sugestões. Vocabulário nil usa o padrão.
func NewSuggester(vocab *vocabulary.Vocabulary) *Suggester {
	if vocab == nil {
		vocab = vocabulary.Default()
	}
	return &Suggester{vocab: vocab}
}

// Suggest retorna até MaxSuggestions sugestões únicas e não vazias.
// recentSearches vem do log de buscas e é fornecido pelo chamador.
func (s *Suggester) Suggest(query string, recentSearches []string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []string{}
	}

	candidates := make([]string, 0, 16)

	// 1. Siglas
	for _, abbr := range s.vocab.Abbreviations() {
		code := strings.ToLower(abbr.Code)
		if strings.HasPrefix(code, q) || strings.Contains(abbr.Full, q) {
			candidates = append(candidates, abbr.Full)
			if code != q {
				candidates = append(candidates, abbr.Code)
			}
		}
	}

	// 2. Sinônimos
	for _, group := range s.vocab.Synonyms() {
		if strings.Contains(group.Term, q) {
			candidates = append(candidates, group.Term)
			for _, syn := range group.Synonyms {
				if syn != q {
					candidates = append(candidates, syn)
				}
			}
		}
	}

	// 3. Buscas recentes
	recent := 0
	for _, r := range recentSearches {
		if recent >= maxRecentSuggestions {
			break
		}
		lower := strings.ToLower(strings.TrimSpace(r))
		if lower != q && strings.Contains(lower, q) {
			candidates = append(candidates, strings.TrimSpace(r))
			recent++
		}
	}

	// 4. Padrões
	if utf8.RuneCountInString(q) > 2 {
		for _, pattern := range suggestionPatterns[:maxPatternSuggestions] {
			candidates = append(candidates, strings.Replace(pattern, "%s", q, 1))
		}
	}

	return dedupe(candidates, MaxSuggestions)
}

// dedupe remove vazios e duplicatas mantendo a primeira ocorrência
func dedupe(in []string, max int) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, max)
	for _, s := range in {
		if len(out) >= max {
			break
		}
		if strings.TrimSpace(s) == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
