package models

import "time"

// ContentType define os formatos de conteúdo publicados
type ContentType string

const (
	ContentTypeArticle    ContentType = "ARTICLE"
	ContentTypeVideo      ContentType = "VIDEO"
	ContentTypeCaseStudy  ContentType = "CASE_STUDY"
	ContentTypeConference ContentType = "CONFERENCE"
)

// IsValid verifica se o tipo de conteúdo é válido
func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeArticle, ContentTypeVideo, ContentTypeCaseStudy, ContentTypeConference:
		return true
	}
	return false
}

// AccessType define o modelo de acesso ao conteúdo
type AccessType string

const (
	AccessTypeFree AccessType = "FREE"
	AccessTypePaid AccessType = "PAID"
	AccessTypeCME  AccessType = "CME"
)

// IsValid verifica se o tipo de acesso é válido
func (a AccessType) IsValid() bool {
	switch a {
	case AccessTypeFree, AccessTypePaid, AccessTypeCME:
		return true
	}
	return false
}

// Difficulty define o nível técnico do conteúdo
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "BEGINNER"
	DifficultyIntermediate Difficulty = "INTERMEDIATE"
	DifficultyAdvanced     Difficulty = "ADVANCED"
	DifficultyExpert       Difficulty = "EXPERT"
)

// IsValid verifica se o nível é válido
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert:
		return true
	}
	return false
}

// Author representa o autor de um conteúdo
type Author struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Specialties []string `json:"specialties"`
	Credentials string   `json:"credentials,omitempty"`
}

// ContentMetrics contém as métricas agregadas de engajamento.
// EngagementScore vem calculado pela camada de agregação
// (likes + 2*shares + 1.5*comments) e é consumido como está.
type ContentMetrics struct {
	Views           int     `json:"views"`
	Likes           int     `json:"likes"`
	Shares          int     `json:"shares"`
	Comments        int     `json:"comments"`
	Rating          float64 `json:"rating"`
	EngagementScore float64 `json:"engagement_score"`
}

// ContentItem representa um conteúdo publicado (artigo, vídeo, caso clínico, congresso)
type ContentItem struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Content string `json:"content,omitempty"`
	Excerpt string `json:"excerpt"`

	Author Author `json:"author"`

	Type        ContentType `json:"type"`
	AccessType  AccessType  `json:"access_type"`
	Difficulty  Difficulty  `json:"difficulty"`
	Tags        []string    `json:"tags"`
	Specialties []string    `json:"specialties"`

	Price      *float64 `json:"price,omitempty"`
	CMECredits *float64 `json:"cme_credits,omitempty"`

	PublishedAt time.Time `json:"published_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Metrics ContentMetrics `json:"metrics"`

	// Preenchido pela camada de serviço, nunca pelos scorers
	Highlights map[string]string `json:"highlights,omitempty"`
}

// DeriveEngagementScore calcula o engajamento a partir das métricas brutas
func DeriveEngagementScore(m ContentMetrics) float64 {
	return float64(m.Likes) + 2*float64(m.Shares) + 1.5*float64(m.Comments)
}
