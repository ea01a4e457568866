package typesense

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/medpub/app-busca-medica/internal/models"
	"github.com/medpub/app-busca-medica/internal/utils"
)

// Funções auxiliares para extrair valores de documentos do Typesense.
// Números chegam como float64 quando o documento passa por JSON.

func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func getStringSlice(m map[string]interface{}, key string) []string {
	v, ok := m[key]
	if !ok {
		return nil
	}

	switch val := v.(type) {
	case []string:
		return append([]string(nil), val...)
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func getInt64(m map[string]interface{}, key string) int64 {
	if v, ok := m[key]; ok {
		switch val := v.(type) {
		case int:
			return int64(val)
		case int32:
			return int64(val)
		case int64:
			return val
		case float64:
			return int64(val)
		case json.Number:
			n, _ := val.Int64()
			return n
		}
	}
	return 0
}

func getFloat64(m map[string]interface{}, key string) float64 {
	f, _ := lookupFloat64(m, key)
	return f
}

func getFloat64Ptr(m map[string]interface{}, key string) *float64 {
	if f, ok := lookupFloat64(m, key); ok {
		return &f
	}
	return nil
}

func lookupFloat64(m map[string]interface{}, key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	}
	return 0, false
}

// getUnixTime lê um timestamp em segundos; zero vira time.Time{}
func getUnixTime(m map[string]interface{}, key string) time.Time {
	sec := getInt64(m, key)
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}

// toContentItem converte um documento da collection de conteúdo.
// Slug ausente é gerado a partir do título; engajamento ausente é derivado das métricas.
func toContentItem(doc map[string]interface{}) models.ContentItem {
	item := models.ContentItem{
		ID:      getString(doc, "id"),
		Title:   getString(doc, "title"),
		Slug:    getString(doc, "slug"),
		Content: getString(doc, "content"),
		Excerpt: getString(doc, "excerpt"),
		Author: models.Author{
			ID:          getString(doc, "author_id"),
			Name:        getString(doc, "author_name"),
			Specialties: getStringSlice(doc, "author_specialties"),
			Credentials: getString(doc, "author_credentials"),
		},
		Type:        models.ContentType(strings.ToUpper(getString(doc, "type"))),
		AccessType:  models.AccessType(strings.ToUpper(getString(doc, "access_type"))),
		Difficulty:  models.Difficulty(strings.ToUpper(getString(doc, "difficulty"))),
		Tags:        getStringSlice(doc, "tags"),
		Specialties: getStringSlice(doc, "specialties"),
		Price:       getFloat64Ptr(doc, "price"),
		CMECredits:  getFloat64Ptr(doc, "cme_credits"),
		PublishedAt: getUnixTime(doc, "published_at"),
		UpdatedAt:   getUnixTime(doc, "updated_at"),
		Metrics: models.ContentMetrics{
			Views:    int(getInt64(doc, "views")),
			Likes:    int(getInt64(doc, "likes")),
			Shares:   int(getInt64(doc, "shares")),
			Comments: int(getInt64(doc, "comments")),
			Rating:   getFloat64(doc, "rating"),
		},
	}

	if item.Slug == "" {
		item.Slug = utils.GenerateSlug(item.Title, item.ID)
	}

	if score, ok := lookupFloat64(doc, "engagement_score"); ok {
		item.Metrics.EngagementScore = score
	} else {
		item.Metrics.EngagementScore = models.DeriveEngagementScore(item.Metrics)
	}

	return item
}

// queryLogDocument converte uma entrada do log para o formato da collection.
// O timestamp é gravado em milissegundos para preservar a ordem de buscas no mesmo segundo.
func queryLogDocument(entry models.SearchQueryLogEntry) map[string]interface{} {
	doc := map[string]interface{}{
		"id":               entry.ID,
		"query":            entry.Query,
		"normalized_query": strings.ToLower(strings.TrimSpace(entry.Query)),
		"results_count":    entry.ResultsCount,
		"timestamp":        entry.Timestamp.UnixMilli(),
	}
	if entry.UserID != "" {
		doc["user_id"] = entry.UserID
	}
	return doc
}

func toQueryLogEntry(doc map[string]interface{}) models.SearchQueryLogEntry {
	return models.SearchQueryLogEntry{
		ID:           getString(doc, "id"),
		UserID:       getString(doc, "user_id"),
		Query:        getString(doc, "query"),
		Timestamp:    time.UnixMilli(getInt64(doc, "timestamp")).UTC(),
		ResultsCount: int(getInt64(doc, "results_count")),
	}
}
