// Package impl contains the implementation of the application's business logic.
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

// guildCommanderService implements the GuildCommandersUsecase interface.
type guildCommanderService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// GuildCommanderServiceParams holds dependencies for guildCommanderService, injected by Fx.
type GuildCommanderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewGuildCommanderService is the constructor for guildCommanderService.
func NewGuildCommanderService(params GuildCommanderServiceParams) usecase.GuildCommandersUsecase {
	return &guildCommanderService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *guildCommanderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new guild commander account. Username uniqueness is
// enforced by the store constraint, so concurrent registrations with the
// same name cannot both succeed.
func (srv *guildCommanderService) Register(ctx context.Context, input *usecase.RegisterGuildCommanderInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Registering guild commander", slog.String("username", input.Username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during guild commander registration")
	}

	// The hash is computed before the transaction opens; bcrypt is too slow
	// to hold a connection for.
	var id int32
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		registeredID, registerErr := repoFactory.GuildCommanderRepo().Register(ctx, &entity.RegisterGuildCommander{
			Username:     input.Username,
			PasswordHash: hashedPassword,
		})
		if registerErr != nil {
			return registerErr
		}
		id = registeredID

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUsernameTaken) {
			srv.log(ctx).Warn("Username already taken", slog.String("username", input.Username))

			return nil, err
		}
		srv.log(ctx).Error("Failed to register guild commander", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register guild commander")
	}

	srv.log(ctx).Debug("Guild commander registered", slog.Int("commanderID", int(id)))

	return &usecase.RegisterOutput{ID: id}, nil
}
