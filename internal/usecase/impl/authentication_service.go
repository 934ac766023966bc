package impl

import (
	"context"
	"log/slog"

	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/domain/service"
	"tracker/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authenticationService implements the AuthenticationUsecase interface for
// both principal kinds.
type authenticationService struct {
	commanderRepo  repository.GuildCommandersRepository
	adventurerRepo repository.AdventurersRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	logger         *slog.Logger
}

// AuthenticationServiceParams holds dependencies for authenticationService, injected by Fx.
type AuthenticationServiceParams struct {
	fx.In

	CommanderRepo  repository.GuildCommandersRepository
	AdventurerRepo repository.AdventurersRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	Logger         *slog.Logger
}

// NewAuthenticationService is the constructor for authenticationService.
func NewAuthenticationService(params AuthenticationServiceParams) usecase.AuthenticationUsecase {
	return &authenticationService{
		commanderRepo:  params.CommanderRepo,
		adventurerRepo: params.AdventurerRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		logger:         params.Logger,
	}
}

func (srv *authenticationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates a principal of the given kind and issues a token pair.
// A username miss and a password mismatch both surface as
// ErrInvalidCredentials, so responses do not reveal which usernames exist.
func (srv *authenticationService) Login(ctx context.Context, kind entity.PrincipalKind, input *usecase.LoginInput) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("kind", string(kind)), slog.String("username", input.Username))

	principal, passwordHash, err := srv.findPrincipal(ctx, kind, input.Username)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("kind", string(kind)), slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	// bcrypt comparison is CPU-bound; it runs outside any transaction.
	if !srv.hasher.Check(input.Password, passwordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("kind", string(kind)), slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	pair, err := srv.tokenService.IssueTokenPair(principal)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token pair", slog.String("kind", string(kind)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token pair during login")
	}

	srv.log(ctx).Debug("Login succeeded", slog.String("kind", string(kind)), slog.Int("principalID", int(principal.ID)))

	return srv.tokenPairOutput(pair), nil
}

// Refresh validates a refresh token for the given kind and issues a fresh
// pair. The presented refresh token stays valid until its own expiry; there
// is no server-side revocation, so the account is re-checked here and a
// deleted principal cannot keep its session alive.
func (srv *authenticationService) Refresh(ctx context.Context, kind entity.PrincipalKind, input *usecase.RefreshInput) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Debug("Refreshing session", slog.String("kind", string(kind)))

	pair, claims, err := srv.tokenService.Refresh(input.RefreshToken, kind)
	if err != nil {
		srv.log(ctx).Warn("Refresh failed", slog.String("kind", string(kind)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to refresh session")
	}

	if err := srv.checkPrincipalExists(ctx, kind, claims.PrincipalID); err != nil {
		srv.log(ctx).Warn("Refresh rejected", slog.String("kind", string(kind)), slog.Int("principalID", int(claims.PrincipalID)), slog.Any("error", err))

		return nil, err
	}

	return srv.tokenPairOutput(pair), nil
}

// checkPrincipalExists confirms the token's subject still has an account.
// A missing account surfaces as ErrInvalidCredentials, same as a bad login.
func (srv *authenticationService) checkPrincipalExists(ctx context.Context, kind entity.PrincipalKind, id int32) error {
	switch kind {
	case entity.KindGuildCommander:
		if _, err := srv.commanderRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrGuildCommanderNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "refresh rejected")
			}

			return errors.Wrap(err, "failed to find guild commander by id")
		}

		return nil
	case entity.KindAdventurer:
		if _, err := srv.adventurerRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrAdventurerNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "refresh rejected")
			}

			return errors.Wrap(err, "failed to find adventurer by id")
		}

		return nil
	default:
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown principal kind %q", kind)
	}
}

// findPrincipal resolves the repository for the kind and loads the stored
// credentials. Both repository sentinels collapse into ErrInvalidCredentials.
func (srv *authenticationService) findPrincipal(ctx context.Context, kind entity.PrincipalKind, username string) (entity.Principal, string, error) {
	switch kind {
	case entity.KindGuildCommander:
		commander, err := srv.commanderRepo.FindByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, repository.ErrGuildCommanderNotFound) {
				return entity.Principal{}, "", errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return entity.Principal{}, "", errors.Wrap(err, "failed to find guild commander by username")
		}

		return commander.Principal(), commander.PasswordHash, nil
	case entity.KindAdventurer:
		adventurer, err := srv.adventurerRepo.FindByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, repository.ErrAdventurerNotFound) {
				return entity.Principal{}, "", errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return entity.Principal{}, "", errors.Wrap(err, "failed to find adventurer by username")
		}

		return adventurer.Principal(), adventurer.PasswordHash, nil
	default:
		return entity.Principal{}, "", errors.Wrapf(domainerrors.ErrValidationFailed, "unknown principal kind %q", kind)
	}
}

func (srv *authenticationService) tokenPairOutput(pair *service.TokenPair) *usecase.TokenPairOutput {
	return &usecase.TokenPairOutput{
		AccessToken:      pair.AccessToken,
		RefreshToken:     pair.RefreshToken,
		AccessExpiresIn:  int64(srv.tokenService.AccessTokenTTL().Seconds()),
		RefreshExpiresIn: int64(srv.tokenService.RefreshTokenTTL().Seconds()),
	}
}
