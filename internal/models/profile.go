package models

// UserProfile é o perfil usado para recomendações personalizadas.
// Montado a cada chamada; o core não guarda estado de perfil.
type UserProfile struct {
	Specialties           []string      `json:"specialties"`
	InteractionHistory    []string      `json:"interaction_history"`
	ReadingLevel          Difficulty    `json:"reading_level"`
	PreferredContentTypes []ContentType `json:"preferred_content_types"`
}
