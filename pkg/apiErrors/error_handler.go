package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro expostos pela API
const (
	// Erros de autenticação
	ErrInvalidToken = "AUTH_001" // Token inválido ou expirado

	// Erros de validação
	ErrInvalidRequest = "VAL_001" // Requisição inválida
	ErrInvalidFilter  = "VAL_002" // Filtro de dashboard inválido

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrQueryFailure   = "SRV_002" // Falha ao buscar registros no banco
	ErrStaleRefresh   = "SRV_003" // Resultado descartado por refresh mais novo
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:   http.StatusUnauthorized,
	ErrInvalidRequest: http.StatusBadRequest,
	ErrInvalidFilter:  http.StatusBadRequest,
	ErrInternalServer: http.StatusInternalServerError,
	ErrQueryFailure:   http.StatusBadGateway,
	ErrStaleRefresh:   http.StatusConflict,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError escreve o erro padronizado na resposta HTTP
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
