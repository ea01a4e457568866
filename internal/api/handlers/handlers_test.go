package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	middlewares "github.com/medpub/app-busca-medica/internal/middleware"
	"github.com/medpub/app-busca-medica/internal/models"
	"github.com/medpub/app-busca-medica/internal/services"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func nowFunc() time.Time { return fixedNow }

type stubContent struct {
	items []models.ContentItem
	err   error
}

func (s *stubContent) SearchCandidates(_ context.Context, _ []string, _ services.CandidateFilter, _ int) ([]models.ContentItem, error) {
	return s.list()
}

func (s *stubContent) ListCandidates(_ context.Context, _ services.CandidateFilter, _ int) ([]models.ContentItem, error) {
	return s.list()
}

func (s *stubContent) GetContent(_ context.Context, id string) (*models.ContentItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, models.ErrContentNotFound
}

func (s *stubContent) list() ([]models.ContentItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]models.ContentItem(nil), s.items...), nil
}

type stubQueryLog struct {
	mu      sync.Mutex
	entries []models.SearchQueryLogEntry
}

func (s *stubQueryLog) Append(_ context.Context, entry models.SearchQueryLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *stubQueryLog) RecentByUser(_ context.Context, userID string, limit int) ([]models.SearchQueryLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.SearchQueryLogEntry, 0)
	for i := len(s.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if s.entries[i].UserID == userID {
			out = append(out, s.entries[i])
		}
	}
	return out, nil
}

func (s *stubQueryLog) Since(_ context.Context, since time.Time) ([]models.SearchQueryLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.SearchQueryLogEntry, 0)
	for _, e := range s.entries {
		if !e.Timestamp.Before(since) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubQueryLog) snapshot() []models.SearchQueryLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.SearchQueryLogEntry(nil), s.entries...)
}

type stubTopics struct {
	topics   []models.TrendingTopic
	err      error
	lastDays int
}

func (s *stubTopics) Topics(_ context.Context, days int) ([]models.TrendingTopic, error) {
	s.lastDays = days
	return s.topics, s.err
}

func fixtures() []models.ContentItem {
	return []models.ContentItem{
		{
			ID:          "b2",
			Title:       "Myocardial Infarction Management",
			Type:        models.ContentTypeVideo,
			Difficulty:  models.DifficultyAdvanced,
			Tags:        []string{"mi", "ecg"},
			Specialties: []string{"cardiology"},
			PublishedAt: fixedNow.AddDate(0, -3, 0),
		},
		{
			ID:          "a1",
			Title:       "Heart Attack Recognition",
			Slug:        "heart-attack-recognition-a1",
			Content:     "Chest pain and **ECG** changes",
			Type:        models.ContentTypeArticle,
			Difficulty:  models.DifficultyAdvanced,
			Tags:        []string{"mi", "ecg"},
			Specialties: []string{"cardiology"},
			PublishedAt: fixedNow.AddDate(0, -2, 0),
		},
		{
			ID:          "c3",
			Title:       "Asthma in Children",
			Type:        models.ContentTypeArticle,
			Tags:        []string{"asthma"},
			Specialties: []string{"pediatrics"},
			PublishedAt: fixedNow.AddDate(-1, 0, 0),
		},
	}
}

type testServer struct {
	router   *gin.Engine
	search   *services.SearchService
	queryLog *stubQueryLog
	topics   *stubTopics
}

func newTestServer(t *testing.T, content *stubContent) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	queryLog := &stubQueryLog{}
	topics := &stubTopics{topics: []models.TrendingTopic{}}

	searchService := services.NewSearchService(content, queryLog, nil, services.SearchOptions{
		ContentBaseURL: "https://med.example.com",
		Now:            nowFunc,
	})
	recService := services.NewRecommendationService(content, queryLog, nil, services.RecommendationOptions{
		Now: nowFunc,
	})

	searchHandler := NewSearchHandler(searchService, 20)
	recHandler := NewRecommendationHandler(recService, 10)
	trendingHandler := NewTrendingHandler(recService, topics, 7, 72, 10)

	r := gin.New()
	r.Use(middlewares.ExtractUserContext())
	api := r.Group("/api/v1")
	api.GET("/search", searchHandler.Search)
	api.GET("/search/suggestions", searchHandler.Suggestions)
	api.POST("/search/log", searchHandler.LogQuery)
	api.GET("/content/:id/similar", recHandler.Similar)
	api.POST("/recommendations", recHandler.Recommend)
	api.GET("/trending/content", trendingHandler.Content)
	api.GET("/trending/topics", trendingHandler.Topics)

	return &testServer{router: r, search: searchService, queryLog: queryLog, topics: topics}
}

func (s *testServer) do(method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}
