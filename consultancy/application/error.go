package application

import (
	"net/http"

	"github.com/careerlane/careerlane/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("APPLICATION")

// Error codes
var (
	CodeApplicationNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Application not found")
	CodeAlreadyExists       = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Application already exists")
	CodeUpdateFailed        = ErrRegistry.Register("UPDATE_FAILED", errx.TypeBusiness, http.StatusBadRequest, "Failed to update application")
	CodeInvalidStatus       = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Invalid application status")
	CodeInvalidRequest      = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrApplicationNotFound() *errx.Error {
	return ErrRegistry.New(CodeApplicationNotFound)
}

func ErrAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeAlreadyExists)
}

func ErrUpdateFailed() *errx.Error {
	return ErrRegistry.New(CodeUpdateFailed)
}

func ErrInvalidStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
