package analytics

import (
	"sort"
	"time"

	"github.com/medpub/app-busca-medica/internal/models"
)

// AggregateVolume agrupa as buscas feitas a partir de `since` por query normalizada.
// Date é o timestamp mais recente do grupo. O resultado vem ordenado por Count,
// decrescente; empates mantêm a ordem da primeira ocorrência.
func AggregateVolume(log []models.SearchQueryLogEntry, since time.Time) []models.SearchVolume {
	index := make(map[string]int)
	volumes := make([]models.SearchVolume, 0)

	for _, entry := range log {
		if entry.Timestamp.Before(since) {
			continue
		}
		q := NormalizeQuery(entry.Query)
		if q == "" {
			continue
		}

		i, ok := index[q]
		if !ok {
			index[q] = len(volumes)
			volumes = append(volumes, models.SearchVolume{Query: q, Count: 1, Date: entry.Timestamp})
			continue
		}
		volumes[i].Count++
		if entry.Timestamp.After(volumes[i].Date) {
			volumes[i].Date = entry.Timestamp
		}
	}

	sort.SliceStable(volumes, func(i, j int) bool {
		return volumes[i].Count > volumes[j].Count
	})
	return volumes
}
