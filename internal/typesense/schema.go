package typesense

import (
	"context"
	"fmt"

	"github.com/typesense/typesense-go/v3/typesense/api"
	"github.com/typesense/typesense-go/v3/typesense/api/pointer"
	"go.uber.org/zap"
)

// ContentSchema descreve a collection de conteúdos médicos publicados
func ContentSchema(name string) *api.CollectionSchema {
	return &api.CollectionSchema{
		Name: name,
		Fields: []api.Field{
			{Name: "title", Type: "string"},
			{Name: "slug", Type: "string", Optional: pointer.True()},
			{Name: "content", Type: "string", Optional: pointer.True()},
			{Name: "excerpt", Type: "string", Optional: pointer.True()},
			{Name: "author_id", Type: "string", Optional: pointer.True()},
			{Name: "author_name", Type: "string", Optional: pointer.True()},
			{Name: "author_specialties", Type: "string[]", Optional: pointer.True(), Facet: pointer.True()},
			{Name: "author_credentials", Type: "string", Optional: pointer.True()},
			{Name: "type", Type: "string", Facet: pointer.True()},
			{Name: "access_type", Type: "string", Facet: pointer.True()},
			{Name: "difficulty", Type: "string", Facet: pointer.True(), Optional: pointer.True()},
			{Name: "status", Type: "string", Facet: pointer.True()},
			{Name: "tags", Type: "string[]", Facet: pointer.True(), Optional: pointer.True()},
			{Name: "specialties", Type: "string[]", Facet: pointer.True(), Optional: pointer.True()},
			{Name: "price", Type: "float", Optional: pointer.True()},
			{Name: "cme_credits", Type: "float", Optional: pointer.True()},
			{Name: "published_at", Type: "int64", Sort: pointer.True()},
			{Name: "updated_at", Type: "int64", Optional: pointer.True()},
			{Name: "views", Type: "int32", Optional: pointer.True()},
			{Name: "likes", Type: "int32", Optional: pointer.True()},
			{Name: "shares", Type: "int32", Optional: pointer.True()},
			{Name: "comments", Type: "int32", Optional: pointer.True()},
			{Name: "rating", Type: "float", Optional: pointer.True()},
			{Name: "engagement_score", Type: "float", Optional: pointer.True()},
		},
		DefaultSortingField: pointer.String("published_at"),
	}
}

// QueryLogSchema descreve a collection append-only do log de buscas
func QueryLogSchema(name string) *api.CollectionSchema {
	return &api.CollectionSchema{
		Name: name,
		Fields: []api.Field{
			{Name: "user_id", Type: "string", Optional: pointer.True(), Facet: pointer.True()},
			{Name: "query", Type: "string"},
			{Name: "normalized_query", Type: "string", Facet: pointer.True()},
			{Name: "results_count", Type: "int32"},
			{Name: "timestamp", Type: "int64", Sort: pointer.True()},
		},
		DefaultSortingField: pointer.String("timestamp"),
	}
}

// EnsureCollections cria as collections de conteúdo e de log quando não existem.
// withQueryLog false pula a collection de log (backend SQLite).
func (c *Client) EnsureCollections(ctx context.Context, withQueryLog bool) error {
	schemas := []*api.CollectionSchema{ContentSchema(c.content.Name)}
	if withQueryLog {
		schemas = append(schemas, QueryLogSchema(c.queryLogCollection))
	}

	for _, schema := range schemas {
		if err := c.ensureCollection(ctx, schema); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) ensureCollection(ctx context.Context, schema *api.CollectionSchema) error {
	_, err := c.client.Collection(schema.Name).Retrieve(ctx)
	if err == nil {
		return nil
	}
	if !isNotFound(err) {
		return fmt.Errorf("erro ao verificar collection %s: %w", schema.Name, err)
	}

	c.logger.Info("collection não existe, criando", zap.String("collection", schema.Name))

	if _, err := c.client.Collections().Create(ctx, schema); err != nil {
		return fmt.Errorf("erro ao criar collection %s: %w", schema.Name, err)
	}

	c.logger.Info("collection criada", zap.String("collection", schema.Name))
	return nil
}
