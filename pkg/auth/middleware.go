package auth

import (
	"net/http"
	"strings"

	"github.com/careerlane/careerlane/pkg/errx"
	"github.com/careerlane/careerlane/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

var ErrRegistry = errx.NewRegistry("AUTH")

var (
	CodeMissingToken = ErrRegistry.Register("MISSING_TOKEN", errx.TypeAuthorization, http.StatusUnauthorized, "Missing authorization header")
	CodeInvalidToken = ErrRegistry.Register("INVALID_TOKEN", errx.TypeAuthorization, http.StatusUnauthorized, "Invalid or expired token")
	CodeForbidden    = ErrRegistry.Register("FORBIDDEN", errx.TypeAuthorization, http.StatusForbidden, "Insufficient role")
)

func ErrMissingToken() *errx.Error { return ErrRegistry.New(CodeMissingToken) }
func ErrInvalidToken() *errx.Error { return ErrRegistry.New(CodeInvalidToken) }
func ErrForbidden() *errx.Error    { return ErrRegistry.New(CodeForbidden) }

const (
	localsUserID = "auth_user_id"
	localsEmail  = "auth_email"
	localsRole   = "auth_role"
)

// Middleware validates bearer tokens and stores identity in request locals.
type Middleware struct {
	tokens *TokenService
}

func NewMiddleware(tokens *TokenService) *Middleware {
	return &Middleware{tokens: tokens}
}

// RequireAuth rejects requests without a valid bearer token.
func (m *Middleware) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return ErrMissingToken()
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return ErrInvalidToken().WithDetail("reason", "expected Bearer scheme")
		}

		claims, err := m.tokens.ValidateAccessToken(parts[1])
		if err != nil {
			return err
		}

		c.Locals(localsUserID, claims.UserID)
		c.Locals(localsEmail, claims.Email)
		c.Locals(localsRole, claims.Role)
		return c.Next()
	}
}

// RequireAdmin rejects authenticated requests whose role is not admin-level.
// Must run after RequireAuth.
func (m *Middleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(localsRole).(Role)
		if !ok || !role.IsAdmin() {
			return ErrForbidden()
		}
		return c.Next()
	}
}

// GetUserID extracts the authenticated user id from request locals.
func GetUserID(c *fiber.Ctx) (kernel.UserID, bool) {
	id, ok := c.Locals(localsUserID).(kernel.UserID)
	return id, ok
}

// GetRole extracts the authenticated role from request locals.
func GetRole(c *fiber.Ctx) (Role, bool) {
	role, ok := c.Locals(localsRole).(Role)
	return role, ok
}
