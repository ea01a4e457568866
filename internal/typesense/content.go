package typesense

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/medpub/app-busca-medica/internal/models"
	"github.com/medpub/app-busca-medica/internal/search/query"
	"github.com/medpub/app-busca-medica/internal/services"
	"github.com/typesense/typesense-go/v3/typesense/api"
	"github.com/typesense/typesense-go/v3/typesense/api/pointer"
	"go.uber.org/zap"
)

const (
	highlightFields   = "title,content"
	highlightStartTag = "<mark>"
	highlightEndTag   = "</mark>"
)

// SearchCandidates busca candidatos pelos termos expandidos da query.
// Termos curinga perdem o "*" e ativam prefix match.
func (c *Client) SearchCandidates(ctx context.Context, terms []string, filter services.CandidateFilter, limit int) ([]models.ContentItem, error) {
	q, prefix := buildQuery(terms)
	if q == "" {
		return []models.ContentItem{}, nil
	}

	limit = clampPerPage(limit)
	params := &api.SearchCollectionParams{
		Q:                   pointer.String(q),
		QueryBy:             pointer.String(c.content.GetSearchFields()),
		FilterBy:            pointer.String(buildFilterBy(filter)),
		SortBy:              pointer.String("_text_match:desc,published_at:desc"),
		Prefix:              pointer.String(strconv.FormatBool(prefix)),
		DropTokensThreshold: pointer.Int(limit),
		HighlightFields:     pointer.String(highlightFields),
		HighlightFullFields: pointer.String("title"),
		HighlightStartTag:   pointer.String(highlightStartTag),
		HighlightEndTag:     pointer.String(highlightEndTag),
		Page:                pointer.Int(1),
		PerPage:             pointer.Int(limit),
	}
	if len(c.content.SearchWeights) == len(c.content.SearchFields) {
		params.QueryByWeights = pointer.String(c.content.GetSearchWeights())
	}

	return c.searchContent(ctx, params)
}

// ListCandidates lista os conteúdos publicados mais recentes que atendem ao filtro
func (c *Client) ListCandidates(ctx context.Context, filter services.CandidateFilter, limit int) ([]models.ContentItem, error) {
	params := &api.SearchCollectionParams{
		Q:        pointer.String("*"),
		FilterBy: pointer.String(buildFilterBy(filter)),
		SortBy:   pointer.String("published_at:desc"),
		Page:     pointer.Int(1),
		PerPage:  pointer.Int(clampPerPage(limit)),
	}

	return c.searchContent(ctx, params)
}

// GetContent busca um conteúdo publicado pelo ID
func (c *Client) GetContent(ctx context.Context, id string) (*models.ContentItem, error) {
	doc, err := c.client.Collection(c.content.Name).Document(id).Retrieve(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, models.ErrContentNotFound
		}
		return nil, fmt.Errorf("erro ao buscar conteúdo %s: %w", id, err)
	}

	if getString(doc, "status") != publishedStatus {
		return nil, models.ErrContentNotFound
	}

	item := toContentItem(doc)
	return &item, nil
}

func (c *Client) searchContent(ctx context.Context, params *api.SearchCollectionParams) ([]models.ContentItem, error) {
	result, err := c.client.Collection(c.content.Name).Documents().Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("erro na busca de conteúdo: %w", err)
	}

	items := make([]models.ContentItem, 0)
	if result.Hits == nil {
		return items, nil
	}

	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		item := toContentItem(*hit.Document)
		item.Highlights = highlightsFrom(hit.Highlights)
		items = append(items, item)
	}

	found := 0
	if result.Found != nil {
		found = *result.Found
	}
	c.logger.Debug("candidatos carregados",
		zap.String("q", *params.Q),
		zap.String("filter_by", *params.FilterBy),
		zap.Int("found", found),
		zap.Int("returned", len(items)),
	)

	return items, nil
}

// highlightsFrom converte os destaques do Typesense em campo -> texto marcado.
// O título vem completo (highlight_full_fields); o conteúdo vem como snippet.
func highlightsFrom(highlights *[]api.SearchHighlight) map[string]string {
	if highlights == nil {
		return nil
	}

	out := make(map[string]string)
	for _, h := range *highlights {
		if h.Field == nil {
			continue
		}

		text := ""
		switch {
		case h.Value != nil && *h.Value != "":
			text = *h.Value
		case h.Snippet != nil:
			text = *h.Snippet
		}
		if !strings.Contains(text, highlightStartTag) {
			continue
		}
		out[*h.Field] = text
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// buildQuery junta os termos em uma única query textual.
// O radical do curinga vai para o fim porque o Typesense aplica prefix ao último token.
func buildQuery(terms []string) (string, bool) {
	seen := make(map[string]bool)
	words := make([]string, 0, len(terms))
	stem := ""

	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		if query.IsWildcard(term) {
			stem = strings.TrimSuffix(term, query.WildcardSuffix)
			continue
		}
		if !seen[term] {
			seen[term] = true
			words = append(words, term)
		}
	}

	if stem != "" {
		filtered := words[:0]
		for _, w := range words {
			if w != stem {
				filtered = append(filtered, w)
			}
		}
		words = append(filtered, stem)
	}

	return strings.Join(words, " "), stem != ""
}

// buildFilterBy monta o filter_by; conteúdo não publicado nunca é retornado
func buildFilterBy(filter services.CandidateFilter) string {
	parts := []string{"status:=" + publishedStatus}

	if filter.Type != "" {
		parts = append(parts, "type:="+quoteValue(string(filter.Type)))
	}
	if filter.AccessType != "" {
		parts = append(parts, "access_type:="+quoteValue(string(filter.AccessType)))
	}
	if len(filter.Specialties) > 0 {
		parts = append(parts, "specialties:"+quoteList(filter.Specialties))
	}
	if !filter.PublishedAfter.IsZero() {
		parts = append(parts, fmt.Sprintf("published_at:>=%d", filter.PublishedAfter.Unix()))
	}
	if filter.MaxPrice != nil {
		parts = append(parts, fmt.Sprintf("(access_type:=%s || price:<=%.2f)", models.AccessTypeFree, *filter.MaxPrice))
	}
	if len(filter.ExcludeIDs) > 0 {
		parts = append(parts, "id:!="+quoteList(filter.ExcludeIDs))
	}

	return strings.Join(parts, " && ")
}

// quoteValue protege o valor com crases, sintaxe do Typesense para valores com espaços ou vírgulas
func quoteValue(v string) string {
	return "`" + strings.ReplaceAll(v, "`", "") + "`"
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = quoteValue(v)
	}
	return "[" + strings.Join(quoted, ",") + "]"
}

func clampPerPage(limit int) int {
	if limit <= 0 || limit > maxPerPage {
		return maxPerPage
	}
	return limit
}
