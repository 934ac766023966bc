package impl

import (
	"context"
	"log/slog"

	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// questViewingService implements the QuestViewingUsecase interface. Reads
// run outside transactions; they take no locks and tolerate stale data.
type questViewingService struct {
	questRepo repository.QuestsRepository
	logger    *slog.Logger
}

// QuestViewingServiceParams holds dependencies for questViewingService, injected by Fx.
type QuestViewingServiceParams struct {
	fx.In

	QuestRepo repository.QuestsRepository
	Logger    *slog.Logger
}

// NewQuestViewingService is the constructor for questViewingService.
func NewQuestViewingService(params QuestViewingServiceParams) usecase.QuestViewingUsecase {
	return &questViewingService{
		questRepo: params.QuestRepo,
		logger:    params.Logger,
	}
}

func (srv *questViewingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// View returns a single quest by id.
func (srv *questViewingService) View(ctx context.Context, questID int32) (*usecase.QuestOutput, error) {
	srv.log(ctx).Debug("Viewing quest", slog.Int("questID", int(questID)))

	quest, err := srv.questRepo.FindByID(ctx, questID)
	if err != nil {
		if errors.Is(err, repository.ErrQuestNotFound) {
			return nil, errors.Wrap(domainerrors.ErrQuestNotFound, "quest lookup failed")
		}
		srv.log(ctx).Error("Failed to view quest", slog.Int("questID", int(questID)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find quest by id")
	}

	return questOutput(quest), nil
}

// List returns the quest board, optionally narrowed by name substring and
// status. An unknown status filter fails validation rather than matching
// nothing.
func (srv *questViewingService) List(ctx context.Context, input *usecase.QuestListInput) ([]*usecase.QuestOutput, error) {
	filter := &entity.QuestFilter{}
	if input != nil {
		if input.Status != nil && !input.Status.IsValid() {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown quest status %q", *input.Status)
		}
		filter.Name = input.Name
		filter.Status = input.Status
	}

	quests, err := srv.questRepo.List(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list quests", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list quests")
	}

	return questOutputList(quests), nil
}
