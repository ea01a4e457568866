package utils

import (
	"net/url"
	"strings"

	"github.com/medpub/app-busca-medica/internal/models"
)

// contentPaths mapeia o tipo de conteúdo para o segmento da URL pública
var contentPaths = map[models.ContentType]string{
	models.ContentTypeArticle:    "articles",
	models.ContentTypeVideo:      "videos",
	models.ContentTypeCaseStudy:  "case-studies",
	models.ContentTypeConference: "conferences",
}

// BuildContentURL monta a URL canônica de um conteúdo.
// Retorna string vazia quando a base não está configurada ou o slug está vazio.
func BuildContentURL(baseURL string, contentType models.ContentType, slug string) string {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" || slug == "" {
		return ""
	}

	segment, ok := contentPaths[contentType]
	if !ok {
		segment = "content"
	}

	return baseURL + "/" + segment + "/" + url.PathEscape(slug)
}
