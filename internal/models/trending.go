package models

// TrendingTopic representa um tópico em alta calculado a partir do log de buscas
type TrendingTopic struct {
	Term         string   `json:"term"`
	Category     string   `json:"category"`
	SearchCount  int      `json:"search_count"`
	GrowthRate   float64  `json:"growth_rate"`
	RelatedTerms []string `json:"related_terms"`
}

// RecommendationResponse é o resultado de um recomendador
type RecommendationResponse struct {
	Recommendations []ContentItem `json:"recommendations"`
	Reason          string        `json:"reason"`
	Confidence      float64       `json:"confidence"`
}
