package models

import "strings"

const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

// SearchRequest representa uma requisição de busca
// @Description Parâmetros de requisição para a busca de conteúdo médico.
type SearchRequest struct {
	// Query de busca (obrigatório)
	Query string `form:"q" binding:"required" example:"heart attack"`
	// Filtrar por tipo: ARTICLE, VIDEO, CASE_STUDY, CONFERENCE
	Type ContentType `form:"type" example:"ARTICLE" enums:"ARTICLE,VIDEO,CASE_STUDY,CONFERENCE"`
	// Filtrar por acesso: FREE, PAID, CME
	Access AccessType `form:"access" example:"CME" enums:"FREE,PAID,CME"`
	// Filtrar por especialidade
	Specialty string `form:"specialty" example:"cardiology"`
	// Quantidade de resultados (default: 20, máximo: 100)
	Limit int `form:"limit" example:"20" minimum:"1" maximum:"100"`

	// Interno (preenchido pelo handler a partir dos headers)
	UserID          string   `form:"-" json:"-" swaggerignore:"true"`
	UserSpecialties []string `form:"-" json:"-" swaggerignore:"true"`
}

// Validate valida e aplica defaults à requisição
func (r *SearchRequest) Validate() error {
	r.Query = strings.TrimSpace(r.Query)
	if r.Query == "" {
		return ErrQueryRequired
	}

	if r.Type != "" {
		r.Type = ContentType(strings.ToUpper(string(r.Type)))
		if !r.Type.IsValid() {
			return ErrInvalidContentType
		}
	}

	if r.Access != "" {
		r.Access = AccessType(strings.ToUpper(string(r.Access)))
		if !r.Access.IsValid() {
			return ErrInvalidAccessType
		}
	}

	if r.Limit < 1 {
		r.Limit = DefaultSearchLimit
	}
	if r.Limit > MaxSearchLimit {
		r.Limit = MaxSearchLimit
	}

	return nil
}

// RecommendationRequest representa o corpo de uma requisição de recomendação
type RecommendationRequest struct {
	Profile ProfileInput `json:"profile" validate:"required"`
	Limit   int          `json:"limit" validate:"omitempty,min=1,max=50" example:"10"`
}

// ProfileInput é o perfil recebido pela API
type ProfileInput struct {
	Specialties           []string `json:"specialties" validate:"omitempty,dive,required"`
	InteractionHistory    []string `json:"interaction_history" validate:"omitempty,dive,required"`
	ReadingLevel          string   `json:"reading_level" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED EXPERT" example:"INTERMEDIATE"`
	PreferredContentTypes []string `json:"preferred_content_types" validate:"omitempty,dive,oneof=ARTICLE VIDEO CASE_STUDY CONFERENCE"`
}

// ToProfile converte a entrada da API para o perfil de domínio
func (p ProfileInput) ToProfile() UserProfile {
	types := make([]ContentType, 0, len(p.PreferredContentTypes))
	for _, t := range p.PreferredContentTypes {
		types = append(types, ContentType(t))
	}
	return UserProfile{
		Specialties:           p.Specialties,
		InteractionHistory:    p.InteractionHistory,
		ReadingLevel:          Difficulty(p.ReadingLevel),
		PreferredContentTypes: types,
	}
}

// QueryLogRequest registra uma busca executada pelo frontend
type QueryLogRequest struct {
	Query        string `json:"query" validate:"required,max=200" example:"stroke guidelines"`
	ResultsCount int    `json:"results_count" validate:"min=0" example:"12"`
}
