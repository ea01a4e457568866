package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medpub/app-busca-medica/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchFixtures() []models.ContentItem {
	return []models.ContentItem{
		{
			ID:          "b2",
			Title:       "Myocardial Infarction Management",
			Slug:        "mi-management-b2",
			Content:     "Treatment of MI",
			Type:        models.ContentTypeVideo,
			Tags:        []string{"cardiology"},
			Specialties: []string{"cardiology"},
			PublishedAt: fixedNow.AddDate(0, -3, 0),
		},
		{
			ID:          "a1",
			Title:       "Heart Attack Recognition",
			Slug:        "heart-attack-a1",
			Excerpt:     "Recognizing symptoms early",
			Content:     "long body",
			Type:        models.ContentTypeArticle,
			Tags:        []string{"cardiology"},
			Specialties: []string{"cardiology"},
			PublishedAt: fixedNow.AddDate(0, -2, 0),
		},
		{
			ID:          "c3",
			Title:       "Asthma in Children",
			Content:     "Inhaled corticosteroids",
			Type:        models.ContentTypeArticle,
			Tags:        []string{"pediatrics"},
			PublishedAt: fixedNow.AddDate(-1, 0, 0),
		},
	}
}

func newTestSearchService(store ContentStore, log QueryLogStore) *SearchService {
	return NewSearchService(store, log, nil, SearchOptions{
		CandidateLimit: 100,
		ContentBaseURL: "https://med.example.com",
		Now:            nowFunc,
	})
}

func TestSearchService_Search(t *testing.T) {
	store := &fakeContentStore{items: searchFixtures()}
	queryLog := &fakeQueryLog{}
	svc := newTestSearchService(store, queryLog)

	resp, err := svc.Search(context.Background(), &models.SearchRequest{
		Query:  "  heart attack ",
		Limit:  2,
		UserID: "u1",
	})
	require.NoError(t, err)
	svc.Wait()

	t.Run("expande a query e limita candidatos", func(t *testing.T) {
		assert.Equal(t, []string{"heart attack", "myocardial infarction", "mi", "acute coronary syndrome"}, store.lastTerms)
		assert.Equal(t, 100, store.lastLimit)
		assert.Equal(t, "heart attack", resp.Query.Original)
	})

	t.Run("ordena por score e trunca", func(t *testing.T) {
		require.Len(t, resp.Results, 2)
		assert.Equal(t, 3, resp.Total)
		assert.Equal(t, "a1", resp.Results[0].Item.ID)
		assert.Equal(t, 180, resp.Results[0].Score.Final)
		assert.Equal(t, "b2", resp.Results[1].Item.ID)
		assert.GreaterOrEqual(t, resp.Results[0].Score.Final, resp.Results[1].Score.Final)
	})

	t.Run("preenche destaques, excerpt e URL", func(t *testing.T) {
		first := resp.Results[0]
		assert.Equal(t, "<mark>Heart Attack</mark> Recognition", first.Item.Highlights["title"])
		assert.Equal(t, "https://med.example.com/articles/heart-attack-a1", first.URL)
		assert.Empty(t, first.Item.Content)

		second := resp.Results[1]
		assert.Equal(t, "Treatment of MI", second.Item.Excerpt)
		assert.Equal(t, "Treatment of <mark>MI</mark>", second.Item.Highlights["excerpt"])
	})

	t.Run("registra a busca no log", func(t *testing.T) {
		entries := queryLog.snapshot()
		require.Len(t, entries, 1)
		assert.Equal(t, "heart attack", entries[0].Query)
		assert.Equal(t, "u1", entries[0].UserID)
		assert.Equal(t, 3, entries[0].ResultsCount)
		assert.Equal(t, fixedNow, entries[0].Timestamp)
		assert.NotEmpty(t, entries[0].ID)
	})

	t.Run("não altera os candidatos do store", func(t *testing.T) {
		assert.Equal(t, "long body", store.items[1].Content)
	})
}

func TestSearchService_SearchKeepsStoreHighlights(t *testing.T) {
	items := searchFixtures()
	items[1].Highlights = map[string]string{"title": "<mark>Heart</mark> <mark>Attack</mark> Recognition"}
	items[0].Highlights = map[string]string{"content": "Treatment of <mark>MI</mark>"}
	store := &fakeContentStore{items: items}
	svc := newTestSearchService(store, nil)

	resp, err := svc.Search(context.Background(), &models.SearchRequest{Query: "heart attack", Limit: 2})
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)

	first := resp.Results[0]
	require.Equal(t, "a1", first.Item.ID)
	assert.Equal(t, map[string]string{"title": "<mark>Heart</mark> <mark>Attack</mark> Recognition"}, first.Item.Highlights)

	second := resp.Results[1]
	require.Equal(t, "b2", second.Item.ID)
	assert.Equal(t, "Treatment of <mark>MI</mark>", second.Item.Highlights["content"])
	assert.Equal(t, "Treatment of <mark>MI</mark>", second.Item.Highlights["excerpt"])
	assert.Contains(t, second.Item.Highlights["title"], "<mark>")

	assert.Len(t, store.items[0].Highlights, 1, "o mapa do candidato não deve ser alterado")
}

func TestSearchService_SearchFilters(t *testing.T) {
	store := &fakeContentStore{items: searchFixtures()}
	svc := newTestSearchService(store, nil)

	_, err := svc.Search(context.Background(), &models.SearchRequest{
		Query:     "asthma",
		Type:      "article",
		Access:    "free",
		Specialty: "pediatrics",
	})
	require.NoError(t, err)

	assert.Equal(t, models.ContentTypeArticle, store.lastFilter.Type)
	assert.Equal(t, models.AccessTypeFree, store.lastFilter.AccessType)
	assert.Equal(t, []string{"pediatrics"}, store.lastFilter.Specialties)
	assert.Contains(t, store.lastTerms, "asthma*")
}

func TestSearchService_SearchErrors(t *testing.T) {
	tests := []struct {
		name    string
		store   *fakeContentStore
		req     *models.SearchRequest
		wantErr error
	}{
		{
			name:    "query vazia",
			store:   &fakeContentStore{},
			req:     &models.SearchRequest{Query: "   "},
			wantErr: models.ErrQueryRequired,
		},
		{
			name:    "tipo inválido",
			store:   &fakeContentStore{},
			req:     &models.SearchRequest{Query: "stroke", Type: "PODCAST"},
			wantErr: models.ErrInvalidContentType,
		},
		{
			name:    "falha no store",
			store:   &fakeContentStore{err: errors.New("connection refused")},
			req:     &models.SearchRequest{Query: "stroke"},
			wantErr: models.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestSearchService(tt.store, nil)
			_, err := svc.Search(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSearchService_SearchEmptyCandidates(t *testing.T) {
	svc := newTestSearchService(&fakeContentStore{}, nil)

	resp, err := svc.Search(context.Background(), &models.SearchRequest{Query: "stroke"})
	require.NoError(t, err)
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
	assert.Equal(t, 0, resp.Total)
}

func TestSearchService_SearchLogFailureIsIgnored(t *testing.T) {
	store := &fakeContentStore{items: searchFixtures()}
	svc := newTestSearchService(store, &fakeQueryLog{err: errors.New("disk full")})

	resp, err := svc.Search(context.Background(), &models.SearchRequest{Query: "heart attack"})
	svc.Wait()

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Results)
}

func TestSearchService_Suggest(t *testing.T) {
	queryLog := &fakeQueryLog{entries: []models.SearchQueryLogEntry{
		logEntry("u1", "stroke rehab", time.Hour),
		logEntry("u1", "cardiac rehab program", 2*time.Hour),
		logEntry("u2", "pulmonary rehab", time.Hour),
	}}
	svc := newTestSearchService(&fakeContentStore{}, queryLog)

	t.Run("usa buscas recentes do usuário", func(t *testing.T) {
		got := svc.Suggest(context.Background(), "rehab", "u1")
		assert.Equal(t, []string{"stroke rehab", "cardiac rehab program", "rehab symptoms", "rehab treatment"}, got)
	})

	t.Run("sem usuário usa só o vocabulário", func(t *testing.T) {
		got := svc.Suggest(context.Background(), "rehab", "")
		assert.Equal(t, []string{"rehab symptoms", "rehab treatment"}, got)
	})

	t.Run("falha no log não impede sugestões", func(t *testing.T) {
		failing := newTestSearchService(&fakeContentStore{}, &fakeQueryLog{err: errors.New("timeout")})
		got := failing.Suggest(context.Background(), "heart attack", "u1")
		assert.Contains(t, got, "heart attack")
		assert.LessOrEqual(t, len(got), 8)
	})

	t.Run("query vazia", func(t *testing.T) {
		assert.Empty(t, svc.Suggest(context.Background(), "  ", "u1"))
	})
}

func TestSearchService_LogQuery(t *testing.T) {
	t.Run("registra a busca", func(t *testing.T) {
		queryLog := &fakeQueryLog{}
		svc := newTestSearchService(&fakeContentStore{}, queryLog)

		entry, err := svc.LogQuery(context.Background(), "u9", &models.QueryLogRequest{Query: " sepsis ", ResultsCount: 4})
		require.NoError(t, err)
		assert.Equal(t, "sepsis", entry.Query)
		assert.Equal(t, fixedNow, entry.Timestamp)
		assert.Len(t, queryLog.snapshot(), 1)
	})

	t.Run("query vazia", func(t *testing.T) {
		svc := newTestSearchService(&fakeContentStore{}, &fakeQueryLog{})
		_, err := svc.LogQuery(context.Background(), "", &models.QueryLogRequest{Query: " "})
		assert.ErrorIs(t, err, models.ErrQueryRequired)
	})

	t.Run("sem backend de log", func(t *testing.T) {
		svc := newTestSearchService(&fakeContentStore{}, nil)
		_, err := svc.LogQuery(context.Background(), "", &models.QueryLogRequest{Query: "sepsis"})
		assert.ErrorIs(t, err, models.ErrQueryLogUnavailable)
	})

	t.Run("falha no backend", func(t *testing.T) {
		svc := newTestSearchService(&fakeContentStore{}, &fakeQueryLog{err: errors.New("locked")})
		_, err := svc.LogQuery(context.Background(), "", &models.QueryLogRequest{Query: "sepsis"})
		assert.ErrorIs(t, err, models.ErrQueryLogUnavailable)
	})
}
