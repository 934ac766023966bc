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

// adventurerService implements the AdventurersUsecase interface.
type adventurerService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// AdventurerServiceParams holds dependencies for adventurerService, injected by Fx.
type AdventurerServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewAdventurerService is the constructor for adventurerService.
func NewAdventurerService(params AdventurerServiceParams) usecase.AdventurersUsecase {
	return &adventurerService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *adventurerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new adventurer account. Adventurer usernames are unique
// among adventurers only; a commander may hold the same name.
func (srv *adventurerService) Register(ctx context.Context, input *usecase.RegisterAdventurerInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Registering adventurer", slog.String("username", input.Username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during adventurer registration")
	}

	var id int32
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		registeredID, registerErr := repoFactory.AdventurerRepo().Register(ctx, &entity.RegisterAdventurer{
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
		srv.log(ctx).Error("Failed to register adventurer", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register adventurer")
	}

	srv.log(ctx).Debug("Adventurer registered", slog.Int("adventurerID", int(id)))

	return &usecase.RegisterOutput{ID: id}, nil
}
