package middleware

import (
	"strings"

	"tracker/internal/delivery/http/response"
	"tracker/internal/domain/entity"
	"tracker/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys under which the authenticated principal is stored.
const (
	KeyPrincipalID   = "principalID"
	KeyPrincipalKind = "principalKind"
)

// AuthMiddleware validates bearer access tokens. Routes are guarded per
// principal kind: a commander token never passes an adventurer guard and
// vice versa, the token service rejects it as a wrong-audience token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate returns a middleware that validates the access token against
// the expected principal kind and stores the principal on the context.
func (m *AuthMiddleware) Authenticate(kind entity.PrincipalKind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return response.Unauthorized(c, "TOKEN_MALFORMED", "Authorization header is missing")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				return response.Unauthorized(c, "TOKEN_MALFORMED", "Invalid token format, must be Bearer token")
			}

			claims, err := m.tokenSvc.ValidateAccessToken(tokenString, kind)
			if err != nil {
				// Domain token errors carry their own status and code.
				return errors.WithStack(err)
			}

			c.Set(KeyPrincipalID, claims.PrincipalID)
			c.Set(KeyPrincipalKind, claims.Kind)

			return next(c)
		}
	}
}

// PrincipalID extracts the authenticated principal's id from the context.
// It is only valid on routes behind Authenticate.
func PrincipalID(c echo.Context) (int32, bool) {
	id, ok := c.Get(KeyPrincipalID).(int32)

	return id, ok
}
