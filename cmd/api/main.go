package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/medpub/app-busca-medica/docs"
	"github.com/medpub/app-busca-medica/internal/api/handlers"
	"github.com/medpub/app-busca-medica/internal/api/routes"
	"github.com/medpub/app-busca-medica/internal/config"
	"github.com/medpub/app-busca-medica/internal/models"
	"github.com/medpub/app-busca-medica/internal/observability"
	"github.com/medpub/app-busca-medica/internal/search/vocabulary"
	"github.com/medpub/app-busca-medica/internal/services"
	"github.com/medpub/app-busca-medica/internal/storage"
	"github.com/medpub/app-busca-medica/internal/typesense"
	"github.com/medpub/app-busca-medica/internal/utils"
	"go.uber.org/zap"
)

// @title           Busca Médica API
// @version         1.0
// @description     API de busca, recomendação e tendências para conteúdo médico, com expansão de siglas e sinônimos e ranking por relevância sobre o Typesense
// @termsOfService  http://swagger.io/terms/

// @contact.name   MedPub
// @contact.url    https://medpub.example.com
// @contact.email  contato@medpub.example.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 15 * time.Second
	cacheCleanup    = time.Minute
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("Erro ao criar logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	shutdownTracer, err := observability.InitTracer(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("erro ao iniciar tracing", zap.Error(err))
	}

	vocab := vocabulary.Default()

	tsClient := typesense.NewClient(cfg, logger)
	useTypesenseLog := cfg.QueryLogBackend == config.QueryLogBackendTypesense
	if err := tsClient.EnsureCollections(ctx, useTypesenseLog); err != nil {
		logger.Fatal("erro ao preparar collections", zap.Error(err))
	}

	if cfg.SyncSynonyms {
		n, err := tsClient.SyncSynonyms(ctx, vocab)
		if err != nil {
			logger.Warn("sinônimos sincronizados parcialmente", zap.Int("synced", n), zap.Error(err))
		} else {
			logger.Info("sinônimos sincronizados", zap.Int("synced", n))
		}
	}

	var (
		queryLog       services.QueryLogStore
		queryLogHealth services.HealthChecker
	)
	switch cfg.QueryLogBackend {
	case config.QueryLogBackendSQLite:
		store, err := storage.NewSQLiteQueryLog(cfg.QueryLogSQLitePath)
		if err != nil {
			logger.Fatal("erro ao abrir log de buscas", zap.String("path", cfg.QueryLogSQLitePath), zap.Error(err))
		}
		defer store.Close()
		queryLog, queryLogHealth = store, store
	default:
		queryLog, queryLogHealth = tsClient, tsClient
	}
	logger.Info("log de buscas configurado", zap.String("backend", cfg.QueryLogBackend))

	retractions := services.NewRetractionFilter(cfg.RetractedContentCSV, logger)

	searchService := services.NewSearchService(tsClient, queryLog, logger, services.SearchOptions{
		CandidateLimit: cfg.Search.CandidateLimit,
		ContentBaseURL: cfg.ContentBaseURL,
		Vocabulary:     vocab,
		Retractions:    retractions,
	})
	recService := services.NewRecommendationService(tsClient, queryLog, logger, services.RecommendationOptions{
		CandidateLimit: cfg.Search.CandidateLimit,
		Retractions:    retractions,
	})

	topicsCache := services.NewLRUCache[[]models.TrendingTopic](cfg.Trending.CacheSize)
	cleanup := topicsCache.StartCleanupRoutine(cacheCleanup, logger)
	defer cleanup.Stop()
	topics := services.NewCachedTrendingService(
		services.NewTrendingService(queryLog, vocab, logger, nil),
		topicsCache,
		cfg.Trending.CacheTTL,
	)

	router := routes.SetupRouter(routes.Handlers{
		Search:          handlers.NewSearchHandler(searchService, cfg.Search.DefaultLimit),
		Recommendations: handlers.NewRecommendationHandler(recService, cfg.Search.RecommendDefaultLimit),
		Trending:        handlers.NewTrendingHandler(recService, topics, cfg.Trending.WindowDays, cfg.Trending.ContentHours, cfg.Search.RecommendDefaultLimit),
		Health: handlers.NewHealthHandler(
			map[string]services.HealthChecker{"typesense": tsClient},
			map[string]services.HealthChecker{"query_log": queryLogHealth},
		),
	}, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		logger.Info("servidor iniciado", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("erro ao iniciar servidor", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("encerrando servidor")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("erro ao encerrar servidor", zap.Error(err))
	}

	searchService.Wait()

	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Error("erro ao encerrar tracing", zap.Error(err))
	}
}
