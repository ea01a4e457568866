package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/medpub/app-busca-medica/internal/utils"
)

const (
	UserIDKey          = "user_id"
	UserSpecialtiesKey = "user_specialties"
	RequestIDKey       = "request_id"

	RequestIDHeader = "X-Request-ID"
)

// ExtractUserContext lê os headers injetados pelo gateway após validar a sessão:
// - X-User-ID: ID do usuário
// - X-User-Specialties: especialidades separadas por vírgula
// - X-Request-ID: ID da requisição; gerado quando ausente e devolvido na resposta
func ExtractUserContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		if userID := c.GetHeader("X-User-ID"); userID != "" {
			c.Set(UserIDKey, userID)
		}

		if specialties := utils.ParseSpecialties(c.GetHeader("X-User-Specialties")); len(specialties) > 0 {
			c.Set(UserSpecialtiesKey, specialties)
		}

		c.Next()
	}
}

// GetUserID retorna o ID do usuário ou "" para requisições anônimas
func GetUserID(c *gin.Context) string {
	if userID, exists := c.Get(UserIDKey); exists {
		if userIDStr, ok := userID.(string); ok {
			return userIDStr
		}
	}
	return ""
}

// GetUserSpecialties retorna as especialidades normalizadas do usuário
func GetUserSpecialties(c *gin.Context) []string {
	if specs, exists := c.Get(UserSpecialtiesKey); exists {
		if specsSlice, ok := specs.([]string); ok {
			return specsSlice
		}
	}
	return nil
}

// GetRequestID retorna o ID da requisição
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
