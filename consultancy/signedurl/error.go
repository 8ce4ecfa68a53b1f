package signedurl

import (
	"net/http"

	"github.com/careerlane/careerlane/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("SIGNEDURL")

// Error codes
var (
	CodeGenerationFailed = ErrRegistry.Register("GENERATION_FAILED", errx.TypeExternal, http.StatusBadGateway, "Failed to generate retrieval URL")
	CodeEmptyKey         = ErrRegistry.Register("EMPTY_KEY", errx.TypeValidation, http.StatusBadRequest, "Storage key must not be empty")
)

// Helper functions
func ErrGenerationFailed() *errx.Error {
	return ErrRegistry.New(CodeGenerationFailed)
}

func ErrEmptyKey() *errx.Error {
	return ErrRegistry.New(CodeEmptyKey)
}
