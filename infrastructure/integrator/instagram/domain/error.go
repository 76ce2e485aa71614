package domain

import "fmt"

// APIError é o envelope de erro da Graph API
type APIError struct {
	Message  string `json:"message"`
	Type     string `json:"type"`
	Code     int    `json:"code"`
	TraceID  string `json:"fbtrace_id"`
	HTTPCode int    `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("erro da plataforma (%s, código %d): %s", e.Type, e.Code, e.Message)
}

// ErrorEnvelope embrulha o APIError no formato de resposta da plataforma
type ErrorEnvelope struct {
	Error *APIError `json:"error"`
}
