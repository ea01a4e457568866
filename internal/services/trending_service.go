package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/medpub/app-busca-medica/internal/analytics"
	"github.com/medpub/app-busca-medica/internal/models"
	"github.com/medpub/app-busca-medica/internal/search/vocabulary"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// TopicsProvider calcula os tópicos em alta de uma janela em dias
type TopicsProvider interface {
	Topics(ctx context.Context, windowDays int) ([]models.TrendingTopic, error)
}

// TrendingService detecta tópicos em alta a partir do log de buscas
type TrendingService struct {
	queryLog QueryLogStore
	detector *analytics.TrendDetector
	logger   *zap.Logger
	now      func() time.Time
}

// NewTrendingService cria um novo serviço de tópicos em alta
func NewTrendingService(queryLog QueryLogStore, vocab *vocabulary.Vocabulary, logger *zap.Logger, now func() time.Time) *TrendingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &TrendingService{
		queryLog: queryLog,
		detector: analytics.NewTrendDetector(vocab, now),
		logger:   logger.With(zap.String("component", "trending")),
		now:      now,
	}
}

// Topics lê o log desde o início da janela e executa o detector
func (ts *TrendingService) Topics(ctx context.Context, windowDays int) ([]models.TrendingTopic, error) {
	ctx, span := otel.Tracer("trending").Start(ctx, "trending.Topics")
	defer span.End()

	if windowDays <= 0 {
		windowDays = analytics.DefaultWindowDays
	}
	span.SetAttributes(attribute.Int("trending.window_days", windowDays))

	if ts.queryLog == nil {
		return []models.TrendingTopic{}, nil
	}

	since := ts.now().Add(-time.Duration(windowDays) * 24 * time.Hour)
	entries, err := ts.queryLog.Since(ctx, since)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "falha ao ler log de buscas")
		return nil, fmt.Errorf("%w: %v", models.ErrQueryLogUnavailable, err)
	}

	topics := ts.detector.Detect(entries, windowDays)
	ts.logger.Debug("tópicos em alta calculados",
		zap.Int("entries", len(entries)),
		zap.Int("topics", len(topics)),
	)
	span.SetAttributes(attribute.Int("trending.topics", len(topics)))
	return topics, nil
}

// CachedTrendingService guarda os tópicos por janela durante um TTL
type CachedTrendingService struct {
	next  TopicsProvider
	cache Cache[[]models.TrendingTopic]
	ttl   time.Duration
}

// NewCachedTrendingService decora um TopicsProvider com cache LRU
func NewCachedTrendingService(next TopicsProvider, cache Cache[[]models.TrendingTopic], ttl time.Duration) *CachedTrendingService {
	return &CachedTrendingService{
		next:  next,
		cache: cache,
		ttl:   ttl,
	}
}

// Topics retorna do cache quando possível. Erros não são cacheados.
func (c *CachedTrendingService) Topics(ctx context.Context, windowDays int) ([]models.TrendingTopic, error) {
	if windowDays <= 0 {
		windowDays = analytics.DefaultWindowDays
	}
	key := strconv.Itoa(windowDays)

	if topics, ok := c.cache.Get(key); ok {
		return topics, nil
	}

	topics, err := c.next.Topics(ctx, windowDays)
	if err != nil {
		return nil, err
	}

	if c.ttl > 0 {
		c.cache.Set(key, topics, c.ttl)
	}
	return topics, nil
}
