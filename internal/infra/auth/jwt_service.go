package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"tracker/config"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/service"
	"tracker/internal/errors"
)

// secretPair holds the signing keys for one principal kind.
type secretPair struct {
	access  []byte
	refresh []byte
}

// jwtService is a concrete implementation of the TokenService interface
// using the JWT standard. Guild commanders and adventurers use fully
// disjoint secret pairs, so a token of one kind can never carry a valid
// signature for the other.
type jwtService struct {
	secrets    map[entity.PrincipalKind]secretPair
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTService is the constructor for jwtService. All four secrets must be
// present; the keys are captured once here and stay immutable for the
// process lifetime.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	pairs := map[entity.PrincipalKind]secretPair{
		entity.KindGuildCommander: {
			access:  []byte(cfg.Secrets.GuildCommander.Access),
			refresh: []byte(cfg.Secrets.GuildCommander.Refresh),
		},
		entity.KindAdventurer: {
			access:  []byte(cfg.Secrets.Adventurer.Access),
			refresh: []byte(cfg.Secrets.Adventurer.Refresh),
		},
	}

	for kind, pair := range pairs {
		if len(pair.access) == 0 || len(pair.refresh) == 0 {
			return nil, errors.Errorf("jwt secrets for %s must be provided", kind)
		}
	}

	return &jwtService{
		secrets:    pairs,
		accessTTL:  cfg.Tokens.AccessTTL,
		refreshTTL: cfg.Tokens.RefreshTTL,
	}, nil
}

// IssueTokenPair creates a new access and refresh token for a principal.
func (s *jwtService) IssueTokenPair(principal entity.Principal) (*service.TokenPair, error) {
	pair := s.secrets[principal.Kind]

	accessToken, err := s.sign(principal, service.TokenTypeAccess, s.accessTTL, pair.access)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	refreshToken, err := s.sign(principal, service.TokenTypeRefresh, s.refreshTTL, pair.refresh)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign refresh token")
	}

	return &service.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// ValidateAccessToken verifies an access token against the expected kind.
func (s *jwtService) ValidateAccessToken(token string, expected entity.PrincipalKind) (*service.Claims, error) {
	return s.validate(token, expected, service.TokenTypeAccess)
}

// ValidateRefreshToken verifies a refresh token against the expected kind.
func (s *jwtService) ValidateRefreshToken(token string, expected entity.PrincipalKind) (*service.Claims, error) {
	return s.validate(token, expected, service.TokenTypeRefresh)
}

// Refresh validates the refresh token and rotates the pair. The previous
// refresh token is not tracked server-side and remains valid until its TTL
// expires.
func (s *jwtService) Refresh(refreshToken string, expected entity.PrincipalKind) (*service.TokenPair, *service.Claims, error) {
	claims, err := s.validate(refreshToken, expected, service.TokenTypeRefresh)
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.IssueTokenPair(claims.Principal())
	if err != nil {
		return nil, nil, err
	}

	return pair, claims, nil
}

// AccessTokenTTL returns the configured access token lifetime.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

// RefreshTokenTTL returns the configured refresh token lifetime.
func (s *jwtService) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}

// sign creates a JWT with the principal's claims.
func (s *jwtService) sign(principal entity.Principal, tokenType string, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		PrincipalID: principal.ID,
		Kind:        principal.Kind,
		TokenType:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(int64(principal.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.New().String(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// validate parses the token with the expected kind's secret and maps every
// failure to exactly one of the three token errors. With disjoint secrets a
// cross-kind token fails the signature check, so to distinguish
// WrongAudience from Malformed the other kind's secret is tried before
// giving up.
func (s *jwtService) validate(tokenString string, expected entity.PrincipalKind, tokenType string) (*service.Claims, error) {
	claims, err := parseWithSecret(tokenString, s.secretFor(expected, tokenType))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage(tokenType + " token expired")
		}

		other := otherKind(expected)
		if _, otherErr := parseWithSecret(tokenString, s.secretFor(other, tokenType)); otherErr == nil || errors.Is(otherErr, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrWrongAudience.WrapMessage("token belongs to " + other.String())
		}

		return nil, domainerrors.ErrTokenMalformed.WrapMessage("cannot parse or verify " + tokenType + " token")
	}

	// The signature already pins the kind and type; these checks only guard
	// against secrets ever being configured equal across kinds.
	if claims.Kind != expected {
		return nil, domainerrors.ErrWrongAudience.WrapMessage("token belongs to " + claims.Kind.String())
	}
	if claims.TokenType != tokenType {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("unexpected token type " + claims.TokenType)
	}

	return claims, nil
}

func (s *jwtService) secretFor(kind entity.PrincipalKind, tokenType string) []byte {
	pair := s.secrets[kind]
	if tokenType == service.TokenTypeRefresh {
		return pair.refresh
	}

	return pair.access
}

func otherKind(kind entity.PrincipalKind) entity.PrincipalKind {
	if kind == entity.KindGuildCommander {
		return entity.KindAdventurer
	}

	return entity.KindGuildCommander
}

// parseWithSecret verifies signature, expiry and claim structure. An
// unverified signature is never partially trusted: claims are only returned
// when parsing succeeds in full.
func parseWithSecret(tokenString string, secret []byte) (*service.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &service.Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*service.Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}
