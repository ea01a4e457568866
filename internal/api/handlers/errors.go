package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/medpub/app-busca-medica/internal/models"
)

// statusFor traduz os erros sentinela do domínio em status HTTP
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrQueryRequired),
		errors.Is(err, models.ErrInvalidContentType),
		errors.Is(err, models.ErrInvalidAccessType),
		errors.Is(err, models.ErrInvalidSpecialty):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrContentNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrStoreUnavailable),
		errors.Is(err, models.ErrQueryLogUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, message string, err error) {
	_ = c.Error(err)
	c.JSON(statusFor(err), gin.H{
		"error":   message,
		"details": err.Error(),
	})
}

// queryInt lê um inteiro opcional da query string; ausente retorna defaultValue
func queryInt(c *gin.Context, key string, defaultValue, minValue, maxValue int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue, true
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < minValue || v > maxValue {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Parâmetros inválidos",
			"details": key + " deve ser um inteiro entre " + strconv.Itoa(minValue) + " e " + strconv.Itoa(maxValue),
		})
		return 0, false
	}
	return v, true
}
