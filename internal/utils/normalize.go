package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldAccents remove acentos e diacríticos e converte para minúsculas
// Exemplo: "Cardiología" -> "cardiologia"
func FoldAccents(s string) string {
	if s == "" {
		return s
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, _ := transform.String(t, s)

	return strings.ToLower(normalized)
}

// NormalizeSpecialty normaliza o nome de uma especialidade para comparação
func NormalizeSpecialty(specialty string) string {
	return strings.TrimSpace(FoldAccents(specialty))
}

// ParseSpecialties interpreta uma lista separada por vírgulas (header X-User-Specialties).
// Entradas vazias e repetidas são descartadas.
func ParseSpecialties(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}

	seen := make(map[string]bool)
	specialties := make([]string, 0)
	for _, part := range strings.Split(csv, ",") {
		s := NormalizeSpecialty(part)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		specialties = append(specialties, s)
	}
	return specialties
}
