package utils

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	HighlightOpenTag  = "<mark>"
	HighlightCloseTag = "</mark>"

	minHighlightLength = 2
)

type span struct {
	start, end int
}

// Highlight envolve com <mark> as ocorrências dos termos no texto.
// A comparação ignora acentos e caixa, e só marca ocorrências que começam
// no início de uma palavra. Termos com sufixo "*" casam como prefixo.
func Highlight(text string, terms []string) string {
	if text == "" || len(terms) == 0 {
		return text
	}

	folded, offsets := foldWithOffsets(text)

	spans := make([]span, 0)
	for _, term := range terms {
		needle := FoldAccents(strings.TrimSuffix(strings.TrimSpace(term), "*"))
		if len([]rune(needle)) < minHighlightLength {
			continue
		}

		from := 0
		for {
			idx := strings.Index(folded[from:], needle)
			if idx < 0 {
				break
			}
			pos := from + idx
			end := pos + len(needle)
			if atWordStart(folded, pos) {
				spans = append(spans, span{start: offsets[pos], end: offsets[end]})
			}
			from = pos + 1
		}
	}

	if len(spans) == 0 {
		return text
	}

	spans = mergeSpans(spans)

	var b strings.Builder
	last := 0
	for _, s := range spans {
		b.WriteString(text[last:s.start])
		b.WriteString(HighlightOpenTag)
		b.WriteString(text[s.start:s.end])
		b.WriteString(HighlightCloseTag)
		last = s.end
	}
	b.WriteString(text[last:])
	return b.String()
}

// foldWithOffsets retorna o texto sem acentos e, para cada byte dele,
// o offset da runa correspondente no texto original. O slice tem um
// elemento extra apontando para o fim do texto original.
func foldWithOffsets(text string) (string, []int) {
	var b strings.Builder
	offsets := make([]int, 0, len(text)+1)

	for i, r := range text {
		piece := FoldAccents(string(r))
		if piece == "" {
			continue
		}
		b.WriteString(piece)
		for j := 0; j < len(piece); j++ {
			offsets = append(offsets, i)
		}
	}
	offsets = append(offsets, len(text))

	return b.String(), offsets
}

func atWordStart(s string, pos int) bool {
	if pos == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(s[:pos])
	return !unicode.IsLetter(prev) && !unicode.IsDigit(prev)
}

func mergeSpans(spans []span) []span {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start == spans[j].start {
			return spans[i].end > spans[j].end
		}
		return spans[i].start < spans[j].start
	})

	merged := []span{spans[0]}
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.start <= last.end {
			if s.end > last.end {
				last.end = s.end
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
