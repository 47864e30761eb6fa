package appmetricadomain

import (
	"fmt"
	"strings"
)

// ErrorResponse representa a estrutura de erro da API do AppMetrica
type ErrorResponse struct {
	Errors  []ErrorDetails `json:"errors"`
	Code    int            `json:"code"`
	Message string         `json:"message"`
}

type ErrorDetails struct {
	ErrorType string `json:"error_type"`
	Message   string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	details := make([]string, 0, len(e.Errors))
	for _, d := range e.Errors {
		details = append(details, fmt.Sprintf("%s: %s", d.ErrorType, d.Message))
	}

	if len(details) == 0 {
		return fmt.Sprintf("appmetrica: code %d: %s", e.Code, e.Message)
	}

	return fmt.Sprintf("appmetrica: code %d: %s", e.Code, strings.Join(details, "; "))
}

// IsAuthError indica token OAuth inválido ou sem permissão para o aplicativo
func (e *ErrorResponse) IsAuthError() bool {
	return e.Code == 401 || e.Code == 403
}
