package query

import (
	"strings"
	"unicode/utf8"

	"github.com/medpub/app-busca-medica/internal/search/vocabulary"
)

// WildcardSuffix sinaliza para a camada de armazenamento que o termo aceita prefix match
const WildcardSuffix = "*"

// minWildcardLength é o tamanho mínimo (exclusivo) de um token único para gerar wildcard
const minWildcardLength = 3

// ExpandedQuery representa uma query expandida
type ExpandedQuery struct {
	Original   string   // query original
	Normalized string   // query em minúsculas
	Tokens     []string // tokens da query normalizada
	Terms      []string // termos após expansão (inclui Normalized)
}

// Expander expande queries com o vocabulário médico
type Expander struct {
	vocab *vocabulary.Vocabulary
}

// NewExpander cria um novo expander. Vocabulário nil usa o padrão.
func NewExpander(vocab *vocabulary.Vocabulary) *Expander {
	if vocab == nil {
		vocab = vocabulary.Default()
	}
	return &Expander{vocab: vocab}
}

// Expand retorna os termos expandidos da query, sem duplicatas.
// O primeiro termo é sempre a query em minúsculas.
func (e *Expander) Expand(query string) []string {
	return e.ExpandQuery(query).Terms
}

// ExpandQuery expande a query e devolve também a forma normalizada e os tokens
func (e *Expander) ExpandQuery(query string) *ExpandedQuery {
	normalized := strings.ToLower(query)
	tokens := strings.Fields(normalized)

	result := &ExpandedQuery{
		Original:   query,
		Normalized: normalized,
		Tokens:     tokens,
	}

	// Mapa para evitar duplicatas
	seen := make(map[string]bool)
	terms := make([]string, 0, 8)
	add := func(term string) {
		if !seen[term] {
			seen[term] = true
			terms = append(terms, term)
		}
	}

	add(normalized)

	// Sinônimos: o termo precisa aparecer como substring da query
	for _, group := range e.vocab.Synonyms() {
		if strings.Contains(normalized, group.Term) {
			for _, syn := range group.Synonyms {
				add(syn)
			}
		}
	}

	// Siglas: cada token é procurado em maiúsculas
	for _, token := range tokens {
		if full, ok := e.vocab.LookupAbbreviation(strings.ToUpper(token)); ok {
			add(full)
		}
	}

	if len(tokens) == 1 && utf8.RuneCountInString(tokens[0]) > minWildcardLength {
		add(tokens[0] + WildcardSuffix)
	}

	result.Terms = terms
	return result
}

// IsWildcard verifica se o termo é uma variante de prefix match
func IsWildcard(term string) bool {
	return strings.HasSuffix(term, WildcardSuffix)
}
