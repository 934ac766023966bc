package repository

import (
	"context"
	"errors"

	"tracker/internal/domain/entity"
)

// ErrQuestNotFound is returned when a quest is not found.
var ErrQuestNotFound = errors.New("quest not found")

// QuestsRepository defines the persistence operations for the quest aggregate.
type QuestsRepository interface {
	// Create persists a new quest with status Open and returns the generated
	// id. A dangling GuildCommanderID surfaces as a foreign-key domain error.
	Create(ctx context.Context, draft *entity.QuestDraft) (int32, error)

	// FindByID retrieves a single quest.
	FindByID(ctx context.Context, id int32) (*entity.Quest, error)

	// Update applies a partial update. Only non-nil patch fields change;
	// updated_at is always refreshed.
	Update(ctx context.Context, id int32, patch *entity.QuestPatch) error

	// Delete removes a quest.
	Delete(ctx context.Context, id int32) error

	// ListByGuildCommander returns the quests owned by one commander.
	ListByGuildCommander(ctx context.Context, commanderID int32) ([]*entity.Quest, error)

	// List returns quests matching the filter, ordered by id.
	List(ctx context.Context, filter *entity.QuestFilter) ([]*entity.Quest, error)
}
