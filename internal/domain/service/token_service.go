package service

import (
	"time"

	"tracker/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Token type markers carried in claims so an access token can never stand in
// for a refresh token even if secrets were ever shared.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims is the decoded, verified payload of a token.
type Claims struct {
	PrincipalID int32                `json:"pid"`
	Kind        entity.PrincipalKind `json:"kind"`
	TokenType   string               `json:"type"`
	jwt.RegisteredClaims
}

// Principal returns the identity the claims were issued for.
func (c *Claims) Principal() entity.Principal {
	return entity.Principal{ID: c.PrincipalID, Kind: c.Kind}
}

// TokenPair bundles the two tokens issued on login and on refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService issues and validates signed tokens. Each principal kind uses
// an independent access/refresh secret pair, so a token of one kind can
// never validate for the other. Tokens are stateless; there is no
// server-side revocation list.
type TokenService interface {
	// IssueTokenPair creates a new access and refresh token for a principal.
	IssueTokenPair(principal entity.Principal) (*TokenPair, error)

	// ValidateAccessToken verifies an access token against the expected
	// kind. Failures are ErrTokenMalformed, ErrTokenExpired or
	// ErrWrongAudience from the domain errors package.
	ValidateAccessToken(token string, expected entity.PrincipalKind) (*Claims, error)

	// ValidateRefreshToken is the refresh-token counterpart of
	// ValidateAccessToken.
	ValidateRefreshToken(token string, expected entity.PrincipalKind) (*Claims, error)

	// Refresh validates the refresh token and issues a fresh pair, returning
	// the verified claims alongside so callers can re-check the principal.
	// The old refresh token is not invalidated and stays usable until its
	// own TTL expires; a revocation table would be needed to close that
	// replay window.
	Refresh(refreshToken string, expected entity.PrincipalKind) (*TokenPair, *Claims, error)

	// AccessTokenTTL returns the configured access token lifetime.
	AccessTokenTTL() time.Duration

	// RefreshTokenTTL returns the configured refresh token lifetime.
	RefreshTokenTTL() time.Duration
}
