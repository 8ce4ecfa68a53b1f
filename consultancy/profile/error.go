package profile

import (
	"net/http"
	"strings"

	"github.com/careerlane/careerlane/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("PROFILE")

// Error codes
var (
	CodeProfileNotFound   = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "User not found")
	CodeAccountBlocked    = ErrRegistry.Register("ACCOUNT_BLOCKED", errx.TypeAuthorization, http.StatusForbidden, "Your account has been blocked")
	CodeAccountUnverified = ErrRegistry.Register("ACCOUNT_UNVERIFIED", errx.TypeAuthorization, http.StatusForbidden, "Your account is not verified")
	CodeIncompleteProfile = ErrRegistry.Register("INCOMPLETE_PROFILE", errx.TypeBusiness, http.StatusUnprocessableEntity, "Please complete your profile details before applying to jobs")
	CodeEmailTaken        = ErrRegistry.Register("EMAIL_TAKEN", errx.TypeConflict, http.StatusConflict, "User already exists with this email")
	CodeInvalidRequest    = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodeInvalidPagination = ErrRegistry.Register("INVALID_PAGINATION", errx.TypeValidation, http.StatusBadRequest, "Invalid pagination parameters")
)

// Helper functions
func ErrProfileNotFound() *errx.Error {
	return ErrRegistry.New(CodeProfileNotFound)
}

func ErrAccountBlocked() *errx.Error {
	return ErrRegistry.New(CodeAccountBlocked)
}

func ErrAccountUnverified() *errx.Error {
	return ErrRegistry.New(CodeAccountUnverified)
}

// ErrIncompleteProfile names every missing gating field in the message.
func ErrIncompleteProfile(missing []string) *errx.Error {
	return ErrRegistry.New(CodeIncompleteProfile).
		WithMessage("Please complete the following profile details before applying: " + strings.Join(missing, ", ")).
		WithDetail("missing_fields", missing)
}

func ErrEmailTaken() *errx.Error {
	return ErrRegistry.New(CodeEmailTaken)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrInvalidPagination() *errx.Error {
	return ErrRegistry.New(CodeInvalidPagination)
}
