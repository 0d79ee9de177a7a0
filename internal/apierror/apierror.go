// Package apierror holds the JSON envelopes written for every 4xx/5xx response.
// Internal causes (SQL errors, stack traces) never reach these structs except
// where an operation explicitly surfaces its cause.
package apierror

// APIError is the canonical error body: {"detail": "..."}.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError carries one message per offending field, keyed by the JSON
// field name.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
