package auth

import (
	"time"

	"github.com/careerlane/careerlane/pkg/errx"
	"github.com/careerlane/careerlane/pkg/kernel"
	"github.com/golang-jwt/jwt/v5"
)

// Role is the access level carried inside an access token.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superAdmin"
)

// IsAdmin reports whether the role grants access to admin route groups.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Claims are the validated contents of an access token.
type Claims struct {
	UserID    kernel.UserID
	Email     kernel.Email
	Role      Role
	ExpiresAt time.Time
}

// TokenService signs and validates access tokens. Token issuance endpoints
// (login, refresh, OAuth) live outside this service; it only covers the
// shared-secret validation the API surface needs.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenService creates a HMAC-signed JWT service.
func NewTokenService(secret, issuer string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// GenerateAccessToken mints a signed token for the given identity.
func (s *TokenService) GenerateAccessToken(userID kernel.UserID, email kernel.Email, role Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": email.String(),
		"role":  string(role),
		"iss":   s.issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errx.Wrap(err, "failed to sign access token", errx.TypeInternal)
	}
	return signed, nil
}

// ValidateAccessToken parses and verifies a token string.
func (s *TokenService) ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, ErrInvalidToken().WithCause(err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken()
	}

	sub, _ := mapClaims["sub"].(string)
	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)

	exp, err := mapClaims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrInvalidToken()
	}

	return &Claims{
		UserID:    kernel.UserID(sub),
		Email:     kernel.Email(email),
		Role:      Role(role),
		ExpiresAt: exp.Time,
	}, nil
}
