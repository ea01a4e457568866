package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/medpub/app-busca-medica/internal/analytics"
	"github.com/medpub/app-busca-medica/internal/config"
	"github.com/medpub/app-busca-medica/internal/models"
	"github.com/medpub/app-busca-medica/internal/recommend"
	"github.com/medpub/app-busca-medica/internal/search/ranking"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const (
	// SimilarReason é a justificativa das recomendações "mais como este"
	SimilarReason = "Similar topics, specialties and format to the content you are viewing"
	// SimilarConfidence é a confiança fixa das recomendações por similaridade
	SimilarConfidence = 0.8

	// DefaultRecommendationLimit é usado quando o limite não é informado
	DefaultRecommendationLimit = 10
	// DefaultTrendingHours é a janela padrão do volume de buscas
	DefaultTrendingHours = 72
)

// RecommendationOptions configura o RecommendationService
type RecommendationOptions struct {
	CandidateLimit int
	Retractions    *RetractionFilter
	Now            func() time.Time
}

// RecommendationService fornece recomendações personalizadas, similares e em alta
type RecommendationService struct {
	content  ContentStore
	queryLog QueryLogStore

	personalized *recommend.Personalized
	trending     *recommend.TrendingRanker
	filter       *RetractionFilter
	logger       *zap.Logger

	candidateLimit int
	now            func() time.Time
}

// NewRecommendationService cria um novo serviço de recomendação
func NewRecommendationService(content ContentStore, queryLog QueryLogStore, logger *zap.Logger, opts RecommendationOptions) *RecommendationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.CandidateLimit <= 0 || opts.CandidateLimit > config.MaxCandidateLimit {
		opts.CandidateLimit = config.MaxCandidateLimit
	}

	return &RecommendationService{
		content:        content,
		queryLog:       queryLog,
		personalized:   recommend.NewPersonalized(opts.Now),
		trending:       recommend.NewTrendingRanker(opts.Now),
		filter:         opts.Retractions,
		logger:         logger.With(zap.String("component", "recommend")),
		candidateLimit: opts.CandidateLimit,
		now:            opts.Now,
	}
}

// Personalized recomenda conteúdos para o perfil entre os candidatos mais recentes
func (rs *RecommendationService) Personalized(ctx context.Context, profile *models.UserProfile, limit int) (*models.RecommendationResponse, error) {
	ctx, span := otel.Tracer("recommend").Start(ctx, "recommend.Personalized")
	defer span.End()

	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}
	span.SetAttributes(attribute.Int("recommend.limit", limit))

	candidates, err := rs.listCandidates(ctx, CandidateFilter{})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "falha ao listar candidatos")
		return nil, err
	}

	resp := rs.personalized.Recommend(profile, candidates, limit)
	span.SetAttributes(attribute.Int("recommend.results", len(resp.Recommendations)))
	return &resp, nil
}

// Similar recomenda conteúdos parecidos com o conteúdo informado.
// O próprio conteúdo e candidatos sem nenhuma similaridade ficam de fora.
func (rs *RecommendationService) Similar(ctx context.Context, contentID string, limit int) (*models.RecommendationResponse, error) {
	ctx, span := otel.Tracer("recommend").Start(ctx, "recommend.Similar")
	defer span.End()

	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}
	span.SetAttributes(
		attribute.String("recommend.content_id", contentID),
		attribute.Int("recommend.limit", limit),
	)

	target, err := rs.content.GetContent(ctx, contentID)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, models.ErrContentNotFound) {
			return nil, err
		}
		span.SetStatus(codes.Error, "falha ao carregar conteúdo")
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}

	candidates, err := rs.listCandidates(ctx, CandidateFilter{
		Specialties: target.Specialties,
		ExcludeIDs:  []string{target.ID},
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "falha ao listar candidatos")
		return nil, err
	}

	similar := ranking.RankSimilar(target, candidates, limit)
	items := make([]models.ContentItem, 0, len(similar))
	for _, s := range similar {
		items = append(items, *s.Item)
	}

	confidence := 0.0
	if len(items) > 0 {
		confidence = SimilarConfidence
	}

	return &models.RecommendationResponse{
		Recommendations: items,
		Reason:          SimilarReason,
		Confidence:      confidence,
	}, nil
}

// TrendingContent agrega o volume de buscas das últimas `hours` horas e
// ordena os candidatos pelo score de tendência
func (rs *RecommendationService) TrendingContent(ctx context.Context, hours, limit int) (*models.TrendingContentResponse, error) {
	ctx, span := otel.Tracer("recommend").Start(ctx, "recommend.TrendingContent")
	defer span.End()

	if hours <= 0 {
		hours = DefaultTrendingHours
	}
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}
	span.SetAttributes(
		attribute.Int("trending.hours", hours),
		attribute.Int("trending.limit", limit),
	)

	since := rs.now().Add(-time.Duration(hours) * time.Hour)

	var volumes []models.SearchVolume
	if rs.queryLog != nil {
		entries, err := rs.queryLog.Since(ctx, since)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "falha ao ler log de buscas")
			return nil, fmt.Errorf("%w: %v", models.ErrQueryLogUnavailable, err)
		}
		volumes = analytics.AggregateVolume(entries, since)
	}

	candidates, err := rs.listCandidates(ctx, CandidateFilter{})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "falha ao listar candidatos")
		return nil, err
	}

	results := rs.trending.Rank(volumes, candidates, limit)
	rs.logger.Debug("conteúdo em alta calculado",
		zap.Int("volumes", len(volumes)),
		zap.Int("candidates", len(candidates)),
		zap.Int("results", len(results)),
	)

	return &models.TrendingContentResponse{
		WindowHours: hours,
		Results:     results,
	}, nil
}

func (rs *RecommendationService) listCandidates(ctx context.Context, filter CandidateFilter) ([]models.ContentItem, error) {
	candidates, err := rs.content.ListCandidates(ctx, filter, rs.candidateLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	if len(candidates) > rs.candidateLimit {
		candidates = candidates[:rs.candidateLimit]
	}
	return rs.filter.Apply(candidates), nil
}
