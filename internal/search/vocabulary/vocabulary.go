package vocabulary

import "strings"

// Vocabulary é a tabela imutável de siglas, sinônimos e categorias.
// Construída uma vez e injetada nos componentes; nenhum método altera o estado.
type Vocabulary struct {
	abbreviations []Abbreviation
	abbrevIndex   map[string]string
	synonyms      []SynonymGroup
	categories    []CategoryKeywords
}

// New cria um vocabulário a partir das tabelas informadas.
// As tabelas são copiadas; alterar os slices depois não afeta o vocabulário.
func New(abbreviations []Abbreviation, synonyms []SynonymGroup, categories []CategoryKeywords) *Vocabulary {
	v := &Vocabulary{
		abbreviations: make([]Abbreviation, 0, len(abbreviations)),
		abbrevIndex:   make(map[string]string, len(abbreviations)),
		synonyms:      make([]SynonymGroup, 0, len(synonyms)),
		categories:    make([]CategoryKeywords, 0, len(categories)),
	}

	for _, a := range abbreviations {
		code := strings.ToUpper(strings.TrimSpace(a.Code))
		if code == "" {
			continue
		}
		// primeira definição vence
		if _, exists := v.abbrevIndex[code]; exists {
			continue
		}
		entry := Abbreviation{Code: code, Full: strings.ToLower(a.Full)}
		v.abbreviations = append(v.abbreviations, entry)
		v.abbrevIndex[code] = entry.Full
	}

	for _, g := range synonyms {
		term := strings.ToLower(strings.TrimSpace(g.Term))
		if term == "" {
			continue
		}
		v.synonyms = append(v.synonyms, SynonymGroup{Term: term, Synonyms: lowerAll(g.Synonyms)})
	}

	for _, c := range categories {
		v.categories = append(v.categories, CategoryKeywords{Name: c.Name, Keywords: lowerAll(c.Keywords)})
	}

	return v
}

var defaultVocabulary = New(DefaultAbbreviations, DefaultSynonyms, DefaultCategories)

// Default retorna o vocabulário médico padrão. A instância é compartilhada,
// o que é seguro porque o vocabulário é imutável.
func Default() *Vocabulary {
	return defaultVocabulary
}

// LookupAbbreviation busca a forma por extenso de uma sigla (case-insensitive)
func (v *Vocabulary) LookupAbbreviation(code string) (string, bool) {
	full, ok := v.abbrevIndex[strings.ToUpper(code)]
	return full, ok
}

// Abbreviations retorna as siglas na ordem de definição
func (v *Vocabulary) Abbreviations() []Abbreviation {
	out := make([]Abbreviation, len(v.abbreviations))
	copy(out, v.abbreviations)
	return out
}

// Synonyms retorna os grupos de sinônimos na ordem de definição
func (v *Vocabulary) Synonyms() []SynonymGroup {
	out := make([]SynonymGroup, len(v.synonyms))
	for i, g := range v.synonyms {
		out[i] = SynonymGroup{Term: g.Term, Synonyms: append([]string(nil), g.Synonyms...)}
	}
	return out
}

// Categorize retorna a primeira categoria cuja palavra-chave aparece na query
func (v *Vocabulary) Categorize(query string) string {
	q := strings.ToLower(query)
	for _, c := range v.categories {
		for _, kw := range c.Keywords {
			if kw != "" && strings.Contains(q, kw) {
				return c.Name
			}
		}
	}
	return GeneralCategory
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(s))
	}
	return out
}
