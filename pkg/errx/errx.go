// Package errx provides registry-based, HTTP-aware application errors.
// Each domain package owns a Registry; error codes are declared once and
// instantiated at the failure site, optionally enriched with details.
package errx

import (
	"errors"
	"fmt"
	"net/http"
)

// Type classifies an error for propagation policy and HTTP mapping.
type Type string

const (
	TypeValidation    Type = "VALIDATION"
	TypeNotFound      Type = "NOT_FOUND"
	TypeConflict      Type = "CONFLICT"
	TypeAuthorization Type = "AUTHORIZATION"
	TypeBusiness      Type = "BUSINESS"
	TypeInternal      Type = "INTERNAL"
	TypeExternal      Type = "EXTERNAL"
)

// Code identifies a registered error within its registry.
type Code string

type definition struct {
	code       Code
	errType    Type
	httpStatus int
	message    string
}

// Registry holds the error definitions for one domain, namespaced by prefix.
type Registry struct {
	prefix      string
	definitions map[Code]definition
}

// NewRegistry creates an empty registry with the given namespace prefix.
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix:      prefix,
		definitions: make(map[Code]definition),
	}
}

// Register declares an error code. Registration happens at package init time;
// duplicate codes panic because they indicate a programming error.
func (r *Registry) Register(code string, t Type, httpStatus int, message string) Code {
	c := Code(code)
	if _, exists := r.definitions[c]; exists {
		panic(fmt.Sprintf("errx: code %s.%s registered twice", r.prefix, code))
	}
	r.definitions[c] = definition{
		code:       c,
		errType:    t,
		httpStatus: httpStatus,
		message:    message,
	}
	return c
}

// New instantiates a registered error.
func (r *Registry) New(code Code) *Error {
	def, ok := r.definitions[code]
	if !ok {
		return &Error{
			Code:       fmt.Sprintf("%s.UNKNOWN", r.prefix),
			Type:       TypeInternal,
			HTTPStatus: http.StatusInternalServerError,
			Message:    fmt.Sprintf("unregistered error code %q", code),
		}
	}
	return &Error{
		Code:       fmt.Sprintf("%s.%s", r.prefix, def.code),
		Type:       def.errType,
		HTTPStatus: def.httpStatus,
		Message:    def.message,
	}
}

// Error is a categorized application error with a stable message and
// optional structured details.
type Error struct {
	Code       string         `json:"code"`
	Type       Type           `json:"type"`
	HTTPStatus int            `json:"-"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// WithDetail attaches a key/value pair and returns the error for chaining.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause records the underlying error without changing the stable message.
func (e *Error) WithCause(cause error) *Error {
	e.cause = cause
	return e
}

// WithMessage overrides the registered message. Used sparingly, for errors
// whose message must carry request-specific content (e.g. missing fields).
func (e *Error) WithMessage(message string) *Error {
	e.Message = message
	return e
}

// ToHTTPResponse shapes the error for a transport-level JSON body.
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"code":    e.Code,
		"type":    e.Type,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

// Wrap normalizes a collaborator failure into an *Error, preserving the
// original error as the cause. Already-wrapped errors pass through unchanged
// so the outermost classification wins exactly once.
func Wrap(err error, message string, t Type) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	status := http.StatusInternalServerError
	switch t {
	case TypeExternal:
		status = http.StatusBadGateway
	case TypeValidation:
		status = http.StatusBadRequest
	case TypeNotFound:
		status = http.StatusNotFound
	case TypeConflict:
		status = http.StatusConflict
	}
	return &Error{
		Code:       fmt.Sprintf("WRAPPED.%s", t),
		Type:       t,
		HTTPStatus: status,
		Message:    message,
		cause:      err,
	}
}

// IsType reports whether err is an *Error of the given type.
func IsType(err error, t Type) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}
