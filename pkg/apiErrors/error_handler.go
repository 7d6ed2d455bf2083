package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros de autenticação (AUTH)
	ErrInvalidCredentials = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled       = "AUTH_002" // Usuário desativado
	ErrUserNotFound       = "AUTH_003" // Usuário não encontrado
	ErrInvalidToken       = "AUTH_004" // Token inválido
	ErrExpiredToken       = "AUTH_005" // Token expirado

	// Erros de configuração (CFG): credencial ou conexão ausente do lado do caller
	ErrMissingBrandToken   = "CFG_001" // Conexão de marca sem access token
	ErrBrandNotFound       = "CFG_002" // Conexão de marca não encontrada
	ErrMissingAdAccount    = "CFG_003" // Conexão de marca sem conta de anúncios
	ErrBillingUnconfigured = "CFG_004" // Billing não configurado para a organização

	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidDateFormat   = "VAL_003" // Formato de data inválido
	ErrInvalidDateRange    = "VAL_004" // Intervalo de datas inválido

	// Erros de upstream e servidor (UPS/SRV)
	ErrUpstreamAPI       = "UPS_001" // Erro na API da plataforma de anúncios
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrUserDisabled:        http.StatusForbidden,
	ErrUserNotFound:        http.StatusNotFound,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrMissingBrandToken:   http.StatusUnprocessableEntity,
	ErrBrandNotFound:       http.StatusNotFound,
	ErrMissingAdAccount:    http.StatusUnprocessableEntity,
	ErrBillingUnconfigured: http.StatusUnprocessableEntity,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidDateFormat:   http.StatusBadRequest,
	ErrInvalidDateRange:    http.StatusBadRequest,
	ErrUpstreamAPI:         http.StatusBadGateway,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
