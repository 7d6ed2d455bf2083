package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// UpstreamError é uma falha de chamada à plataforma de anúncios, com contexto
// suficiente para reproduzir a requisição
type UpstreamError struct {
	StatusCode int
	Endpoint   string
	Params     string
	Details    *ErrorDetails
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("meta api: status %d em %s (code %d, subcode %d): %s",
			e.StatusCode, e.Endpoint, e.Details.Code, e.Details.ErrorSubcode, e.Details.Message)
	}
	return fmt.Sprintf("meta api: status %d em %s: %s", e.StatusCode, e.Endpoint, e.Body)
}

// IsTokenExpired verifica se o erro é de token expirado
// O código 190 representa "token expirado" nas respostas da API do Meta;
// subcódigos relacionados: 460, 463, 467
func (e *UpstreamError) IsTokenExpired() bool {
	if e.Details == nil {
		return false
	}
	return e.Details.Code == 190 ||
		(e.Details.Type == "OAuthException" &&
			(e.Details.ErrorSubcode == 460 || e.Details.ErrorSubcode == 463 || e.Details.ErrorSubcode == 467))
}
