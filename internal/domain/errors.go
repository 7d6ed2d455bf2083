package domain

import "errors"

// Erros de negócio compartilhados entre usecases e handlers
var (
	ErrInvalidDateRange  = errors.New("data inicial posterior à data final")
	ErrBrandNotFound     = errors.New("conexão da marca não encontrada")
	ErrMissingBrandToken = errors.New("conexão da marca sem access token")
	ErrMissingAdAccount  = errors.New("conexão da marca sem conta de anúncios")
)
