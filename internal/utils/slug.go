package utils

import (
	"regexp"
	"strings"
)

const (
	MaxSlugBaseLength = 60
	ShortIDLength     = 8
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug cria um slug para o conteúdo a partir do título e do ID.
// Formato: {titulo-em-kebab-case}-{id-curto}
// Exemplo: "Manejo da Insuficiência Cardíaca" + "c0ffee123456" -> "manejo-da-insuficiencia-cardiaca-c0ffee12"
func GenerateSlug(title, contentID string) string {
	if title == "" || contentID == "" {
		return ""
	}

	slug := normalizeToSlug(title)
	shortID := truncateID(contentID)

	if slug == "" {
		return shortID
	}

	return slug + "-" + shortID
}

func normalizeToSlug(text string) string {
	slug := nonSlugChars.ReplaceAllString(FoldAccents(text), "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > MaxSlugBaseLength {
		slug = slug[:MaxSlugBaseLength]
		if lastHyphen := strings.LastIndex(slug, "-"); lastHyphen > 0 {
			slug = slug[:lastHyphen]
		}
	}

	return slug
}

func truncateID(id string) string {
	if len(id) > ShortIDLength {
		return id[:ShortIDLength]
	}
	return id
}
