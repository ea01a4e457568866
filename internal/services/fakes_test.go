package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/medpub/app-busca-medica/internal/models"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func nowFunc() time.Time { return fixedNow }

type fakeContentStore struct {
	items []models.ContentItem
	err   error

	lastTerms  []string
	lastFilter CandidateFilter
	lastLimit  int
}

func (f *fakeContentStore) SearchCandidates(_ context.Context, terms []string, filter CandidateFilter, limit int) ([]models.ContentItem, error) {
	f.lastTerms = terms
	f.lastFilter = filter
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.copyItems(filter), nil
}

func (f *fakeContentStore) ListCandidates(_ context.Context, filter CandidateFilter, limit int) ([]models.ContentItem, error) {
	f.lastFilter = filter
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.copyItems(filter), nil
}

func (f *fakeContentStore) GetContent(_ context.Context, id string) (*models.ContentItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			item := f.items[i]
			return &item, nil
		}
	}
	return nil, models.ErrContentNotFound
}

func (f *fakeContentStore) copyItems(filter CandidateFilter) []models.ContentItem {
	excluded := make(map[string]bool)
	for _, id := range filter.ExcludeIDs {
		excluded[id] = true
	}
	out := make([]models.ContentItem, 0, len(f.items))
	for _, item := range f.items {
		if !excluded[item.ID] {
			out = append(out, item)
		}
	}
	return out
}

type fakeQueryLog struct {
	mu      sync.Mutex
	entries []models.SearchQueryLogEntry
	err     error
	calls   int
}

func (f *fakeQueryLog) Append(_ context.Context, entry models.SearchQueryLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeQueryLog) RecentByUser(_ context.Context, userID string, limit int) ([]models.SearchQueryLogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.SearchQueryLogEntry, 0)
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeQueryLog) Since(_ context.Context, since time.Time) ([]models.SearchQueryLogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.SearchQueryLogEntry, 0)
	for _, e := range f.entries {
		if !e.Timestamp.Before(since) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeQueryLog) snapshot() []models.SearchQueryLogEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.SearchQueryLogEntry, len(f.entries))
	copy(out, f.entries)
	return out
}

func logEntry(userID, q string, age time.Duration) models.SearchQueryLogEntry {
	return models.SearchQueryLogEntry{
		UserID:    userID,
		Query:     q,
		Timestamp: fixedNow.Add(-age),
	}
}
