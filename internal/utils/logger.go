package utils

import "go.uber.org/zap"

// NewLogger retorna um logger zap. Em debug usa a configuração de desenvolvimento
// (legível, nível debug); caso contrário a de produção (JSON, nível info).
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
