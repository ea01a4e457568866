// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP (default: 8080)
//   - DEBUG: Habilita logs de desenvolvimento (default: false)
//   - GIN_MODE: Modo do gin, debug/release/test (default: release)
//
// ## Typesense
//   - TYPESENSE_HOST: Host do servidor Typesense (default: localhost)
//   - TYPESENSE_PORT: Porta do servidor (default: 8108)
//   - TYPESENSE_API_KEY: Chave de API do Typesense
//   - TYPESENSE_PROTOCOL: Protocolo http/https (default: http)
//   - CONTENT_COLLECTION: Collection de conteúdo (default: medical_content)
//   - CONTENT_SEARCH_FIELDS: Campos de busca, separados por vírgula (default: title,tags,content)
//   - CONTENT_SEARCH_WEIGHTS: Pesos dos campos de busca (default: 3,2,1)
//   - TYPESENSE_SYNC_SYNONYMS: Sincroniza o vocabulário médico como sinônimos (default: true)
//
// ## Log de buscas
//   - QUERY_LOG_BACKEND: typesense ou sqlite (default: typesense)
//   - QUERY_LOG_COLLECTION: Collection do log no Typesense (default: search_queries)
//   - QUERY_LOG_SQLITE_PATH: Arquivo SQLite do log (default: data/search_queries.db)
//
// ## Tracing
//   - TRACING_ENABLED: Habilita OpenTelemetry (default: false)
//   - TRACING_ENDPOINT: Endpoint OTLP gRPC (default: localhost:4317)
//
// ## Busca e recomendação
//   - SEARCH_CANDIDATE_LIMIT: Candidatos buscados por query, máximo 100 (default: 100)
//   - SEARCH_DEFAULT_LIMIT: Resultados por página (default: 20)
//   - RECOMMEND_DEFAULT_LIMIT: Recomendações por requisição (default: 10)
//   - TRENDING_WINDOW_DAYS: Janela dos tópicos em alta (default: 7)
//   - TRENDING_CONTENT_HOURS: Janela do volume de buscas para conteúdo em alta (default: 72)
//   - TRENDING_CACHE_TTL_SECONDS: TTL do cache de tópicos (default: 300)
//   - TRENDING_CACHE_SIZE: Capacidade do cache de tópicos (default: 64)
//   - CONTENT_BASE_URL: URL pública do portal, usada nos links de conteúdo
//   - RETRACTED_CONTENT_CSV: CSV com IDs de conteúdos retratados, excluídos dos resultados
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// QueryLogBackendTypesense grava o log de buscas no Typesense
	QueryLogBackendTypesense = "typesense"
	// QueryLogBackendSQLite grava o log de buscas em arquivo SQLite local
	QueryLogBackendSQLite = "sqlite"

	// MaxCandidateLimit é o teto de candidatos por busca
	MaxCandidateLimit = 100
)

// CollectionConfig holds field mapping configuration for a Typesense collection
type CollectionConfig struct {
	Name          string
	SearchFields  []string // Fields to search (query_by)
	SearchWeights []int    // Weights for search fields (query_by_weights)
}

// GetSearchFields returns the fields to search, with fallback to title, tags and content
func (c *CollectionConfig) GetSearchFields() string {
	if len(c.SearchFields) > 0 {
		return strings.Join(c.SearchFields, ",")
	}
	return "title,tags,content"
}

// GetSearchWeights returns the weights as a comma-separated string
func (c *CollectionConfig) GetSearchWeights() string {
	if len(c.SearchWeights) > 0 && len(c.SearchWeights) == len(c.SearchFields) {
		weights := make([]string, len(c.SearchWeights))
		for i, w := range c.SearchWeights {
			weights[i] = strconv.Itoa(w)
		}
		return strings.Join(weights, ",")
	}
	return "3,2,1"
}

type Config struct {
	ServerPort string
	Debug      bool
	GinMode    string

	TypesenseHost     string
	TypesensePort     string
	TypesenseAPIKey   string
	TypesenseProtocol string
	SyncSynonyms      bool

	Content CollectionConfig

	QueryLogBackend    string
	QueryLogCollection string
	QueryLogSQLitePath string

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string

	// Public site used to build content URLs
	ContentBaseURL string

	// Lista de conteúdos retratados (opcional)
	RetractedContentCSV string

	Search   SearchConfig
	Trending TrendingConfig
}

// SearchConfig contains search and recommendation limits
type SearchConfig struct {
	CandidateLimit        int
	DefaultLimit          int
	RecommendDefaultLimit int
}

// TrendingConfig contains trending windows and cache settings
type TrendingConfig struct {
	WindowDays   int
	ContentHours int
	CacheTTL     time.Duration
	CacheSize    int
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		Debug:      getEnvBool("DEBUG", false),
		GinMode:    getEnv("GIN_MODE", "release"),

		TypesenseHost:     getEnv("TYPESENSE_HOST", "localhost"),
		TypesensePort:     getEnv("TYPESENSE_PORT", "8108"),
		TypesenseAPIKey:   getEnv("TYPESENSE_API_KEY", ""),
		TypesenseProtocol: getEnv("TYPESENSE_PROTOCOL", "http"),
		SyncSynonyms:      getEnvBool("TYPESENSE_SYNC_SYNONYMS", true),

		Content: CollectionConfig{
			Name:          getEnv("CONTENT_COLLECTION", "medical_content"),
			SearchFields:  splitCSV(getEnv("CONTENT_SEARCH_FIELDS", "title,tags,content")),
			SearchWeights: parseWeights(getEnv("CONTENT_SEARCH_WEIGHTS", "3,2,1")),
		},

		QueryLogBackend:    strings.ToLower(getEnv("QUERY_LOG_BACKEND", QueryLogBackendTypesense)),
		QueryLogCollection: getEnv("QUERY_LOG_COLLECTION", "search_queries"),
		QueryLogSQLitePath: getEnv("QUERY_LOG_SQLITE_PATH", "data/search_queries.db"),

		TracingEnabled:  getEnvBool("TRACING_ENABLED", false),
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),

		ContentBaseURL:      strings.TrimRight(getEnv("CONTENT_BASE_URL", ""), "/"),
		RetractedContentCSV: getEnv("RETRACTED_CONTENT_CSV", ""),

		Search: SearchConfig{
			CandidateLimit:        getEnvInt("SEARCH_CANDIDATE_LIMIT", MaxCandidateLimit),
			DefaultLimit:          getEnvInt("SEARCH_DEFAULT_LIMIT", 20),
			RecommendDefaultLimit: getEnvInt("RECOMMEND_DEFAULT_LIMIT", 10),
		},

		Trending: TrendingConfig{
			WindowDays:   getEnvInt("TRENDING_WINDOW_DAYS", 7),
			ContentHours: getEnvInt("TRENDING_CONTENT_HOURS", 72),
			CacheTTL:     time.Duration(getEnvInt("TRENDING_CACHE_TTL_SECONDS", 300)) * time.Second,
			CacheSize:    getEnvInt("TRENDING_CACHE_SIZE", 64),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate normaliza limites e rejeita combinações inválidas
func (c *Config) Validate() error {
	switch c.QueryLogBackend {
	case QueryLogBackendTypesense, QueryLogBackendSQLite:
	default:
		return fmt.Errorf("QUERY_LOG_BACKEND inválido: %q (use %s ou %s)",
			c.QueryLogBackend, QueryLogBackendTypesense, QueryLogBackendSQLite)
	}

	if c.Content.Name == "" {
		return fmt.Errorf("CONTENT_COLLECTION não pode ser vazio")
	}

	if c.Search.CandidateLimit <= 0 || c.Search.CandidateLimit > MaxCandidateLimit {
		c.Search.CandidateLimit = MaxCandidateLimit
	}
	if c.Search.DefaultLimit <= 0 {
		c.Search.DefaultLimit = 20
	}
	if c.Search.RecommendDefaultLimit <= 0 {
		c.Search.RecommendDefaultLimit = 10
	}
	if c.Trending.WindowDays <= 0 {
		c.Trending.WindowDays = 7
	}
	if c.Trending.ContentHours <= 0 {
		c.Trending.ContentHours = 72
	}
	if c.Trending.CacheSize <= 0 {
		c.Trending.CacheSize = 64
	}
	return nil
}

// TypesenseURL monta a URL do servidor Typesense
func (c *Config) TypesenseURL() string {
	return fmt.Sprintf("%s://%s:%s", c.TypesenseProtocol, c.TypesenseHost, c.TypesensePort)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseWeights(s string) []int {
	parts := splitCSV(s)
	weights := make([]int, 0, len(parts))
	for _, p := range parts {
		w, err := strconv.Atoi(p)
		if err != nil {
			return nil
		}
		weights = append(weights, w)
	}
	return weights
}
