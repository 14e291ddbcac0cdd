package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Error codes shared by every endpoint.
const (
	CodeNotFound       = "ERR_NOT_FOUND"
	CodeInternal       = "ERR_INTERNAL"
	CodeMalformed      = "ERR_MALFORMED"
	CodeUnknownVenture = "ERR_UNKNOWN_VENTURE"
)

// AppError is an error with an HTTP status and a client-facing code.
type AppError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Field   string                 `json:"field,omitempty"`
	Params  map[string]interface{} `json:"params,omitempty"`
	Status  int                    `json:"-"`
	Err     error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an application error.
func NewAppError(code, field, message string, status int) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Field:   field,
		Status:  status,
	}
}

// WithParam sets a single error param.
func (e *AppError) WithParam(key string, value interface{}) *AppError {
	if e.Params == nil {
		e.Params = make(map[string]interface{})
	}
	e.Params[key] = value
	return e
}

// WithError attaches the cause. The cause is logged, never rendered.
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// NotFoundErrorf creates a 404 error.
func NotFoundErrorf(format string, a ...interface{}) *AppError {
	return NewAppError(CodeNotFound, "", fmt.Sprintf(format, a...), http.StatusNotFound)
}

// InternalErrorf creates a 500 error.
func InternalErrorf(format string, a ...interface{}) *AppError {
	return NewAppError(CodeInternal, "", fmt.Sprintf(format, a...), http.StatusInternalServerError)
}

// ValidationErrors is input rejected at the boundary. It renders as a 400 with
// one entry per offending field.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Fields returns the offending field paths.
func (v ValidationErrors) Fields() []string {
	out := make([]string, 0, len(v))
	for _, e := range v {
		if e.Field != "" {
			out = append(out, e.Field)
		}
	}
	return out
}

// Prefix nests every field path under p.
func (v ValidationErrors) Prefix(p string) ValidationErrors {
	for i := range v {
		if v[i].Field != "" {
			v[i].Field = p + "." + v[i].Field
		}
	}
	return v
}

// StatusOf returns the HTTP status err renders with.
func StatusOf(err error) int {
	var verrs ValidationErrors
	var appErr *AppError
	var he *echo.HTTPError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &verrs):
		return http.StatusBadRequest
	case errors.As(err, &appErr):
		return appErr.Status
	case errors.As(err, &he):
		return he.Code
	default:
		return http.StatusInternalServerError
	}
}
