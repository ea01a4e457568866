package models

// SearchResponse representa a resposta de busca
type SearchResponse struct {
	Results []SearchHit `json:"results"`
	Total   int         `json:"total"`
	Query   QueryMeta   `json:"query"`
	Timing  TimingMeta  `json:"timing"`
}

// SearchHit é um conteúdo ranqueado com seu score
type SearchHit struct {
	Item  ContentItem `json:"item"`
	URL   string      `json:"url,omitempty"`
	Score ScoreInfo   `json:"score"`
}

// ScoreInfo detalha a composição do score de relevância
type ScoreInfo struct {
	Final      int     `json:"final"`
	TitleQuery float64 `json:"title_query,omitempty"`
	TitleTerms float64 `json:"title_terms,omitempty"`
	Tags       float64 `json:"tags,omitempty"`
	Content    float64 `json:"content,omitempty"`
	Specialty  float64 `json:"specialty,omitempty"`
	Quality    float64 `json:"quality,omitempty"`
	Engagement float64 `json:"engagement,omitempty"`
	Recency    float64 `json:"recency,omitempty"`
}

// QueryMeta contém metadados sobre a query processada
type QueryMeta struct {
	Original string   `json:"original"`
	Expanded []string `json:"expanded,omitempty"`
}

// TimingMeta contém métricas de tempo
type TimingMeta struct {
	TotalMs   float64 `json:"total_ms"`
	FetchMs   float64 `json:"fetch_ms"`
	RankingMs float64 `json:"ranking_ms,omitempty"`
}

// SuggestionResponse contém as sugestões de autocomplete
type SuggestionResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

// TrendingTopicsResponse contém os tópicos em alta de uma janela
type TrendingTopicsResponse struct {
	WindowDays int             `json:"window_days"`
	Topics     []TrendingTopic `json:"topics"`
}

// TrendingContentResponse contém os conteúdos em alta
type TrendingContentResponse struct {
	WindowHours int           `json:"window_hours"`
	Results     []ContentItem `json:"results"`
}
