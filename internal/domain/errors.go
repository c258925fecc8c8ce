package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound   = errors.New("recurso não encontrado")
	ErrValidation = errors.New("entrada inválida")
)
