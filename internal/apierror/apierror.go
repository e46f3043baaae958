// Package apierror provides the error envelope returned by every 4xx/5xx
// response. Handlers never write raw errors so that database details and
// stack traces stay in the logs.
package apierror

// APIError is the canonical error envelope.
type APIError struct {
	Success bool   `json:"success"`
	Detail  string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError carries one entry per rejected request field.
type ValidationError struct {
	Success bool              `json:"success"`
	Detail  string            `json:"detail"`
	Fields  map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Erro de validação", Fields: fields}
}
