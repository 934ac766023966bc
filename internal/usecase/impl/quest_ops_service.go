package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// questOpsService implements the QuestOpsUsecase interface.
type questOpsService struct {
	txManager repository.TransactionManager
	questRepo repository.QuestsRepository
	logger    *slog.Logger
}

// QuestOpsServiceParams holds dependencies for questOpsService, injected by Fx.
type QuestOpsServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	QuestRepo repository.QuestsRepository
	Logger    *slog.Logger
}

// NewQuestOpsService is the constructor for questOpsService.
func NewQuestOpsService(params QuestOpsServiceParams) usecase.QuestOpsUsecase {
	return &questOpsService{
		txManager: params.TxManager,
		questRepo: params.QuestRepo,
		logger:    params.Logger,
	}
}

func (srv *questOpsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add posts a new quest for the acting commander. New quests always start
// Open regardless of what the client sends.
func (srv *questOpsService) Add(ctx context.Context, commanderID int32, input *usecase.AddQuestInput) (*usecase.QuestOutput, error) {
	srv.log(ctx).Info("Adding quest", slog.Int("commanderID", int(commanderID)), slog.String("name", input.Name))

	var created *entity.Quest
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		questRepo := repoFactory.QuestRepo()

		id, err := questRepo.Create(ctx, &entity.QuestDraft{
			Name:             input.Name,
			Description:      input.Description,
			GuildCommanderID: commanderID,
		})
		if err != nil {
			return errors.Wrap(err, "failed to create quest")
		}

		created, err = questRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to load quest after create")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute quest creation transaction", slog.Int("commanderID", int(commanderID)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute quest creation transaction")
	}

	srv.log(ctx).Debug("Quest added", slog.Int("questID", int(created.ID)))

	return questOutput(created), nil
}

// Edit applies a partial update to a quest the commander owns. The
// read-check-write sequence runs in one transaction so a concurrent edit
// cannot slip between the ownership check and the update.
func (srv *questOpsService) Edit(ctx context.Context, commanderID int32, questID int32, input *usecase.EditQuestInput) (*usecase.QuestOutput, error) {
	srv.log(ctx).Info("Editing quest", slog.Int("commanderID", int(commanderID)), slog.Int("questID", int(questID)))

	var edited *entity.Quest
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		questRepo := repoFactory.QuestRepo()

		quest, err := srv.loadOwnedQuest(ctx, questRepo, commanderID, questID)
		if err != nil {
			return err
		}

		if input.Status != nil {
			if !input.Status.IsValid() {
				return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown quest status %q", *input.Status)
			}
			if !quest.Status.CanTransitionTo(*input.Status) {
				return errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot move quest from %s to %s", quest.Status, *input.Status)
			}
		}

		patch := &entity.QuestPatch{
			Name:        input.Name,
			Description: input.Description,
			Status:      input.Status,
		}
		if patch.IsEmpty() {
			edited = quest

			return nil
		}

		if err := questRepo.Update(ctx, questID, patch); err != nil {
			return errors.Wrap(err, "failed to update quest")
		}

		edited, err = questRepo.FindByID(ctx, questID)
		if err != nil {
			return errors.Wrap(err, "failed to load quest after update")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute quest edit transaction", slog.Int("questID", int(questID)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute quest edit transaction")
	}

	srv.log(ctx).Debug("Quest edited", slog.Int("questID", int(questID)))

	return questOutput(edited), nil
}

// Remove deletes a quest the commander owns.
func (srv *questOpsService) Remove(ctx context.Context, commanderID int32, questID int32) error {
	srv.log(ctx).Info("Removing quest", slog.Int("commanderID", int(commanderID)), slog.Int("questID", int(questID)))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		questRepo := repoFactory.QuestRepo()

		if _, err := srv.loadOwnedQuest(ctx, questRepo, commanderID, questID); err != nil {
			return err
		}

		if err := questRepo.Delete(ctx, questID); err != nil {
			return errors.Wrap(err, "failed to delete quest")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute quest removal transaction", slog.Int("questID", int(questID)), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute quest removal transaction")
	}

	srv.log(ctx).Debug("Quest removed", slog.Int("questID", int(questID)))

	return nil
}

// ListOwned returns the quests posted by the acting commander.
func (srv *questOpsService) ListOwned(ctx context.Context, commanderID int32) ([]*usecase.QuestOutput, error) {
	srv.log(ctx).Debug("Listing owned quests", slog.Int("commanderID", int(commanderID)))

	quests, err := srv.questRepo.ListByGuildCommander(ctx, commanderID)
	if err != nil {
		srv.log(ctx).Error("Failed to list owned quests", slog.Int("commanderID", int(commanderID)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list quests by guild commander")
	}

	return questOutputList(quests), nil
}

// loadOwnedQuest fetches a quest and checks commander ownership. A miss is
// QUEST_NOT_FOUND; a hit owned by someone else is a 403, deliberately
// distinct so commanders learn the quest exists but not its contents.
func (srv *questOpsService) loadOwnedQuest(ctx context.Context, questRepo repository.QuestsRepository, commanderID int32, questID int32) (*entity.Quest, error) {
	quest, err := questRepo.FindByID(ctx, questID)
	if err != nil {
		if errors.Is(err, repository.ErrQuestNotFound) {
			return nil, errors.Wrap(domainerrors.ErrQuestNotFound, "quest lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find quest by id")
	}

	if !quest.OwnedBy(commanderID) {
		return nil, errors.Wrapf(domainerrors.ErrQuestOwnership, "quest %d belongs to another commander", questID)
	}

	return quest, nil
}

func questOutput(quest *entity.Quest) *usecase.QuestOutput {
	return &usecase.QuestOutput{
		ID:               quest.ID,
		Name:             quest.Name,
		Description:      quest.Description,
		Status:           quest.Status,
		GuildCommanderID: quest.GuildCommanderID,
		CreatedAt:        quest.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        quest.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func questOutputList(quests []*entity.Quest) []*usecase.QuestOutput {
	outputs := make([]*usecase.QuestOutput, 0, len(quests))
	for _, quest := range quests {
		outputs = append(outputs, questOutput(quest))
	}

	return outputs
}
