package auth

import (
	"testing"
	"time"

	"tracker/config"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Secrets.GuildCommander = config.SecretPair{
		Access:  "test_gc_access_secret_long_enough_for_testing",
		Refresh: "test_gc_refresh_secret_long_enough_for_testing",
	}
	cfg.Secrets.Adventurer = config.SecretPair{
		Access:  "test_adv_access_secret_long_enough_for_testing",
		Refresh: "test_adv_refresh_secret_long_enough_for_testing",
	}
	cfg.Tokens.AccessTTL = 15 * time.Minute
	cfg.Tokens.RefreshTTL = 7 * 24 * time.Hour

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	principal := entity.Principal{ID: 42, Kind: entity.KindGuildCommander}
	pair, err := svc.IssueTokenPair(principal)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := svc.ValidateAccessToken(pair.AccessToken, entity.KindGuildCommander)
	require.NoError(t, err)
	assert.Equal(t, int32(42), claims.PrincipalID)
	assert.Equal(t, entity.KindGuildCommander, claims.Kind)
	assert.Equal(t, service.TokenTypeAccess, claims.TokenType)

	refreshClaims, err := svc.ValidateRefreshToken(pair.RefreshToken, entity.KindGuildCommander)
	require.NoError(t, err)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.TokenType)
	assert.Equal(t, principal, refreshClaims.Principal())
}

func TestJWTService_WrongAudience(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	advPair, err := svc.IssueTokenPair(entity.Principal{ID: 7, Kind: entity.KindAdventurer})
	require.NoError(t, err)

	// Adventurer access token validated against commander routes and vice versa.
	_, err = svc.ValidateAccessToken(advPair.AccessToken, entity.KindGuildCommander)
	assert.True(t, errors.Is(err, domainerrors.ErrWrongAudience))

	gcPair, err := svc.IssueTokenPair(entity.Principal{ID: 8, Kind: entity.KindGuildCommander})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(gcPair.AccessToken, entity.KindAdventurer)
	assert.True(t, errors.Is(err, domainerrors.ErrWrongAudience))
}

func TestJWTService_AccessRefreshSecretsDisjoint(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	pair, err := svc.IssueTokenPair(entity.Principal{ID: 1, Kind: entity.KindAdventurer})
	require.NoError(t, err)

	// A refresh token must not pass access validation: different secret.
	_, err = svc.ValidateAccessToken(pair.RefreshToken, entity.KindAdventurer)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenMalformed))

	_, err = svc.ValidateRefreshToken(pair.AccessToken, entity.KindAdventurer)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenMalformed))
}

func TestJWTService_Malformed(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken("clearly-not-a-jwt", entity.KindAdventurer)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenMalformed))

	_, err = svc.ValidateRefreshToken("", entity.KindGuildCommander)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenMalformed))
}

func TestJWTService_Expired(t *testing.T) {
	cfg := newTestTokenConfig()
	cfg.Tokens.AccessTTL = -time.Minute
	cfg.Tokens.RefreshTTL = -time.Minute

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	pair, err := svc.IssueTokenPair(entity.Principal{ID: 3, Kind: entity.KindGuildCommander})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.AccessToken, entity.KindGuildCommander)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))

	_, _, err = svc.Refresh(pair.RefreshToken, entity.KindGuildCommander)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_RefreshRotatesPair(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	principal := entity.Principal{ID: 9, Kind: entity.KindAdventurer}
	pair, err := svc.IssueTokenPair(principal)
	require.NoError(t, err)

	rotated, rotatedClaims, err := svc.Refresh(pair.RefreshToken, entity.KindAdventurer)
	require.NoError(t, err)
	assert.Equal(t, principal, rotatedClaims.Principal())

	// Both new tokens validate independently for the same principal.
	accessClaims, err := svc.ValidateAccessToken(rotated.AccessToken, entity.KindAdventurer)
	require.NoError(t, err)
	assert.Equal(t, principal, accessClaims.Principal())

	refreshClaims, err := svc.ValidateRefreshToken(rotated.RefreshToken, entity.KindAdventurer)
	require.NoError(t, err)
	assert.Equal(t, principal, refreshClaims.Principal())

	// Refreshing with the wrong kind fails closed.
	_, _, err = svc.Refresh(pair.RefreshToken, entity.KindGuildCommander)
	assert.True(t, errors.Is(err, domainerrors.ErrWrongAudience))
}

func TestJWTService_MissingSecrets(t *testing.T) {
	cfg := newTestTokenConfig()
	cfg.Secrets.Adventurer.Refresh = ""

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}
