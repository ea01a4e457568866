package models

import "errors"

var (
	ErrQueryRequired       = errors.New("query é obrigatória")
	ErrInvalidContentType  = errors.New("tipo de conteúdo inválido (use: ARTICLE, VIDEO, CASE_STUDY, CONFERENCE)")
	ErrInvalidAccessType   = errors.New("tipo de acesso inválido (use: FREE, PAID, CME)")
	ErrInvalidSpecialty    = errors.New("especialidade inválida")
	ErrContentNotFound     = errors.New("conteúdo não encontrado")
	ErrStoreUnavailable    = errors.New("falha na comunicação com o armazenamento")
	ErrQueryLogUnavailable = errors.New("falha ao acessar o log de buscas")
)
