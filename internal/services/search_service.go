package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/medpub/app-busca-medica/internal/config"
	"github.com/medpub/app-busca-medica/internal/models"
	"github.com/medpub/app-busca-medica/internal/search/query"
	"github.com/medpub/app-busca-medica/internal/search/ranking"
	"github.com/medpub/app-busca-medica/internal/search/vocabulary"
	"github.com/medpub/app-busca-medica/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const (
	// ExcerptLength é o tamanho do resumo gerado quando o conteúdo não tem excerpt
	ExcerptLength = 200
	// recentSearchesLimit é quantas buscas do usuário alimentam as sugestões
	recentSearchesLimit = 20
	// logWriteTimeout limita a gravação assíncrona do log de buscas
	logWriteTimeout = 5 * time.Second
)

// SearchOptions configura o SearchService
type SearchOptions struct {
	CandidateLimit int
	ContentBaseURL string
	Vocabulary     *vocabulary.Vocabulary
	Retractions    *RetractionFilter
	Now            func() time.Time
}

// SearchService orquestra expansão de query, busca de candidatos e ranking
type SearchService struct {
	content   ContentStore
	queryLog  QueryLogStore
	expander  *query.Expander
	scorer    *ranking.RelevanceScorer
	suggester *query.Suggester
	filter    *RetractionFilter
	logger    *zap.Logger

	candidateLimit int
	baseURL        string
	now            func() time.Time

	pending sync.WaitGroup
}

// NewSearchService cria um novo serviço de busca. queryLog pode ser nil.
func NewSearchService(content ContentStore, queryLog QueryLogStore, logger *zap.Logger, opts SearchOptions) *SearchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.CandidateLimit <= 0 || opts.CandidateLimit > config.MaxCandidateLimit {
		opts.CandidateLimit = config.MaxCandidateLimit
	}

	expander := query.NewExpander(opts.Vocabulary)

	return &SearchService{
		content:        content,
		queryLog:       queryLog,
		expander:       expander,
		scorer:         ranking.NewRelevanceScorer(expander, opts.Now),
		suggester:      query.NewSuggester(opts.Vocabulary),
		filter:         opts.Retractions,
		logger:         logger.With(zap.String("component", "search")),
		candidateLimit: opts.CandidateLimit,
		baseURL:        opts.ContentBaseURL,
		now:            opts.Now,
	}
}

// Search expande a query, busca até candidateLimit candidatos, pontua e ordena.
// A busca é registrada no log de forma assíncrona.
func (ss *SearchService) Search(ctx context.Context, req *models.SearchRequest) (*models.SearchResponse, error) {
	ctx, span := otel.Tracer("search").Start(ctx, "search.Search")
	defer span.End()

	start := time.Now()

	if err := req.Validate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("search.query", req.Query),
		attribute.String("search.type", string(req.Type)),
		attribute.String("search.access", string(req.Access)),
		attribute.Int("search.limit", req.Limit),
	)

	expanded := ss.expander.ExpandQuery(req.Query)

	filter := CandidateFilter{
		Type:       req.Type,
		AccessType: req.Access,
	}
	if req.Specialty != "" {
		filter.Specialties = []string{req.Specialty}
	}

	fetchStart := time.Now()
	candidates, err := ss.content.SearchCandidates(ctx, expanded.Terms, filter, ss.candidateLimit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "falha ao buscar candidatos")
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	if len(candidates) > ss.candidateLimit {
		candidates = candidates[:ss.candidateLimit]
	}
	candidates = ss.filter.Apply(candidates)
	fetchMs := msSince(fetchStart)

	rankStart := time.Now()
	scored := ss.scorer.ScoreAll(expanded, candidates, req.UserSpecialties)
	total := len(scored)
	if len(scored) > req.Limit {
		scored = scored[:req.Limit]
	}

	hits := make([]models.SearchHit, 0, len(scored))
	for _, s := range scored {
		hits = append(hits, ss.toHit(s, expanded.Terms))
	}
	rankingMs := msSince(rankStart)

	span.SetAttributes(
		attribute.Int("search.candidates", total),
		attribute.Int("search.results", len(hits)),
		attribute.Int("search.expanded_terms", len(expanded.Terms)),
	)

	ss.logQueryAsync(req.UserID, req.Query, total)

	return &models.SearchResponse{
		Results: hits,
		Total:   total,
		Query: models.QueryMeta{
			Original: expanded.Original,
			Expanded: expanded.Terms,
		},
		Timing: models.TimingMeta{
			TotalMs:   msSince(start),
			FetchMs:   fetchMs,
			RankingMs: rankingMs,
		},
	}, nil
}

// toHit copia o conteúdo, remove o corpo e preenche excerpt, destaques e URL.
// O mapa de destaques é sempre novo para não alterar o candidato original.
func (ss *SearchService) toHit(s ranking.ScoredItem, terms []string) models.SearchHit {
	item := *s.Item
	if item.Excerpt == "" {
		item.Excerpt = utils.Excerpt(item.Content, ExcerptLength)
	}
	item.Content = ""

	// Destaques do armazenamento têm precedência; o excerpt é gerado aqui e
	// por isso só pode ser marcado localmente
	highlights := make(map[string]string, len(item.Highlights)+2)
	for field, text := range item.Highlights {
		highlights[field] = text
	}
	if _, ok := highlights["title"]; !ok {
		if h := utils.Highlight(item.Title, terms); h != item.Title {
			highlights["title"] = h
		}
	}
	if h := utils.Highlight(item.Excerpt, terms); h != item.Excerpt {
		highlights["excerpt"] = h
	}
	item.Highlights = nil
	if len(highlights) > 0 {
		item.Highlights = highlights
	}

	b := s.Breakdown
	return models.SearchHit{
		Item: item,
		URL:  utils.BuildContentURL(ss.baseURL, item.Type, item.Slug),
		Score: models.ScoreInfo{
			Final:      b.Final,
			TitleQuery: b.TitleQuery,
			TitleTerms: b.TitleTerms,
			Tags:       b.Tags,
			Content:    b.Content,
			Specialty:  b.Specialty,
			Quality:    b.Quality,
			Engagement: b.Engagement,
			Recency:    b.Recency,
		},
	}
}

// Suggest gera sugestões de autocomplete usando as buscas recentes do usuário.
// Falhas no log de buscas não impedem as sugestões do vocabulário.
func (ss *SearchService) Suggest(ctx context.Context, q, userID string) []string {
	ctx, span := otel.Tracer("search").Start(ctx, "search.Suggest")
	defer span.End()

	span.SetAttributes(attribute.String("search.query", q))

	recent := make([]string, 0)
	if userID != "" && ss.queryLog != nil {
		entries, err := ss.queryLog.RecentByUser(ctx, userID, recentSearchesLimit)
		if err != nil {
			span.RecordError(err)
			ss.logger.Warn("erro ao carregar buscas recentes",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
		for _, e := range entries {
			recent = append(recent, e.Query)
		}
	}

	return ss.suggester.Suggest(q, recent)
}

// LogQuery registra uma busca de forma síncrona
func (ss *SearchService) LogQuery(ctx context.Context, userID string, req *models.QueryLogRequest) (*models.SearchQueryLogEntry, error) {
	ctx, span := otel.Tracer("search").Start(ctx, "search.LogQuery")
	defer span.End()

	q := strings.TrimSpace(req.Query)
	if q == "" {
		return nil, models.ErrQueryRequired
	}
	if ss.queryLog == nil {
		return nil, models.ErrQueryLogUnavailable
	}

	entry := models.SearchQueryLogEntry{
		ID:           uuid.NewString(),
		UserID:       userID,
		Query:        q,
		Timestamp:    ss.now(),
		ResultsCount: req.ResultsCount,
	}

	if err := ss.queryLog.Append(ctx, entry); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "falha ao registrar busca")
		return nil, fmt.Errorf("%w: %v", models.ErrQueryLogUnavailable, err)
	}
	return &entry, nil
}

func (ss *SearchService) logQueryAsync(userID, q string, results int) {
	if ss.queryLog == nil {
		return
	}

	entry := models.SearchQueryLogEntry{
		ID:           uuid.NewString(),
		UserID:       userID,
		Query:        q,
		Timestamp:    ss.now(),
		ResultsCount: results,
	}

	ss.pending.Add(1)
	go func() {
		defer ss.pending.Done()

		ctx, cancel := context.WithTimeout(context.Background(), logWriteTimeout)
		defer cancel()

		if err := ss.queryLog.Append(ctx, entry); err != nil {
			ss.logger.Warn("erro ao registrar busca",
				zap.String("query", entry.Query),
				zap.Error(err),
			)
		}
	}()
}

// Wait aguarda as gravações pendentes do log de buscas
func (ss *SearchService) Wait() {
	ss.pending.Wait()
}

func msSince(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000
}
