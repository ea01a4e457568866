package typesense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/medpub/app-busca-medica/internal/models"
	"github.com/typesense/typesense-go/v3/typesense/api"
	"github.com/typesense/typesense-go/v3/typesense/api/pointer"
)

// Append grava uma entrada no log de buscas. Entradas sem ID recebem um uuid.
func (c *Client) Append(ctx context.Context, entry models.SearchQueryLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = c.now()
	}

	_, err := c.client.Collection(c.queryLogCollection).Documents().Create(ctx, queryLogDocument(entry), &api.DocumentIndexParameters{})
	if err != nil {
		return fmt.Errorf("erro ao registrar busca: %w", err)
	}
	return nil
}

// RecentByUser retorna as buscas mais recentes do usuário, mais novas primeiro
func (c *Client) RecentByUser(ctx context.Context, userID string, limit int) ([]models.SearchQueryLogEntry, error) {
	params := &api.SearchCollectionParams{
		Q:        pointer.String("*"),
		FilterBy: pointer.String("user_id:=" + quoteValue(userID)),
		SortBy:   pointer.String("timestamp:desc"),
		Page:     pointer.Int(1),
		PerPage:  pointer.Int(clampPerPage(limit)),
	}

	entries, _, err := c.searchQueryLog(ctx, params)
	return entries, err
}

// Since retorna todas as buscas a partir de since, em ordem cronológica
func (c *Client) Since(ctx context.Context, since time.Time) ([]models.SearchQueryLogEntry, error) {
	filterBy := fmt.Sprintf("timestamp:>=%d", since.UnixMilli())
	entries := make([]models.SearchQueryLogEntry, 0)

	// Pagina até esgotar os resultados
	for page := 1; ; page++ {
		params := &api.SearchCollectionParams{
			Q:        pointer.String("*"),
			FilterBy: pointer.String(filterBy),
			SortBy:   pointer.String("timestamp:asc"),
			Page:     pointer.Int(page),
			PerPage:  pointer.Int(maxPerPage),
		}

		batch, hits, err := c.searchQueryLog(ctx, params)
		if err != nil {
			return nil, err
		}
		entries = append(entries, batch...)

		if hits < maxPerPage {
			break
		}
	}

	return entries, nil
}

func (c *Client) searchQueryLog(ctx context.Context, params *api.SearchCollectionParams) ([]models.SearchQueryLogEntry, int, error) {
	result, err := c.client.Collection(c.queryLogCollection).Documents().Search(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao ler log de buscas: %w", err)
	}

	entries := make([]models.SearchQueryLogEntry, 0)
	if result.Hits == nil {
		return entries, 0, nil
	}

	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		entries = append(entries, toQueryLogEntry(*hit.Document))
	}
	return entries, len(*result.Hits), nil
}
