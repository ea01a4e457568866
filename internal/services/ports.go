package services

import (
	"context"
	"time"

	"github.com/medpub/app-busca-medica/internal/models"
)

// CandidateFilter restringe os candidatos buscados no armazenamento.
// Somente conteúdos publicados são retornados, independente do filtro.
type CandidateFilter struct {
	Type           models.ContentType
	AccessType     models.AccessType
	Specialties    []string // qualquer uma das especialidades
	PublishedAfter time.Time
	MaxPrice       *float64
	ExcludeIDs     []string
}

// ContentStore fornece candidatos de conteúdo para os scorers
type ContentStore interface {
	// SearchCandidates busca candidatos pelos termos expandidos da query
	SearchCandidates(ctx context.Context, terms []string, filter CandidateFilter, limit int) ([]models.ContentItem, error)
	// ListCandidates lista candidatos mais recentes, sem query textual
	ListCandidates(ctx context.Context, filter CandidateFilter, limit int) ([]models.ContentItem, error)
	// GetContent retorna um conteúdo pelo ID ou models.ErrContentNotFound
	GetContent(ctx context.Context, id string) (*models.ContentItem, error)
}

// QueryLogStore persiste o log de buscas (append-only)
type QueryLogStore interface {
	Append(ctx context.Context, entry models.SearchQueryLogEntry) error
	// RecentByUser retorna as buscas mais recentes do usuário, mais novas primeiro
	RecentByUser(ctx context.Context, userID string, limit int) ([]models.SearchQueryLogEntry, error)
	// Since retorna as buscas com timestamp >= since, em ordem cronológica
	Since(ctx context.Context, since time.Time) ([]models.SearchQueryLogEntry, error)
}

// HealthChecker é implementado pelos backends que suportam readiness
type HealthChecker interface {
	Health(ctx context.Context) error
}
