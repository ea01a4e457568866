package typesense

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/medpub/app-busca-medica/internal/config"
	"github.com/typesense/typesense-go/v3/typesense"
	"go.uber.org/zap"
)

const (
	// maxPerPage é o máximo de documentos por página aceito pelo Typesense
	maxPerPage = 250
	// healthTimeout limita a checagem de saúde usada no readiness
	healthTimeout = 2 * time.Second
	// publishedStatus é o único status visível para busca e recomendação
	publishedStatus = "published"
)

// Client implementa os armazenamentos de conteúdo e de log de buscas sobre o Typesense
type Client struct {
	client             *typesense.Client
	content            config.CollectionConfig
	queryLogCollection string
	logger             *zap.Logger
	now                func() time.Time
}

func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	typesenseClient := typesense.NewClient(
		typesense.WithServer(cfg.TypesenseURL()),
		typesense.WithAPIKey(cfg.TypesenseAPIKey),
		typesense.WithConnectionTimeout(10*time.Second),
	)

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		client:             typesenseClient,
		content:            cfg.Content,
		queryLogCollection: cfg.QueryLogCollection,
		logger:             logger.With(zap.String("component", "typesense")),
		now:                time.Now,
	}
}

// Health verifica se o servidor Typesense responde
func (c *Client) Health(ctx context.Context) error {
	healthy, err := c.client.Health(ctx, healthTimeout)
	if err != nil {
		return fmt.Errorf("typesense indisponível: %w", err)
	}
	if !healthy {
		return errors.New("typesense não está saudável")
	}
	return nil
}

// isNotFound identifica respostas 404 do Typesense
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "404") || strings.Contains(msg, "Not found") || strings.Contains(msg, "Not Found")
}
