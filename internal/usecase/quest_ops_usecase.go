package usecase

import (
	"context"

	"tracker/internal/domain/entity"
)

// AddQuestInput defines the fields a guild commander supplies when posting a
// new quest. Status is not accepted, new quests always open.
type AddQuestInput struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=4096"`
}

// EditQuestInput is a partial update. Nil fields are left untouched.
type EditQuestInput struct {
	Name        *string             `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string             `json:"description" validate:"omitempty,max=4096"`
	Status      *entity.QuestStatus `json:"status"`
}

// QuestOutput is the quest representation returned to clients.
type QuestOutput struct {
	ID               int32              `json:"id"`
	Name             string             `json:"name"`
	Description      *string            `json:"description,omitempty"`
	Status           entity.QuestStatus `json:"status"`
	GuildCommanderID int32              `json:"guildCommanderId"`
	CreatedAt        string             `json:"createdAt"`
	UpdatedAt        string             `json:"updatedAt"`
}

// QuestOpsUsecase covers the commander-side quest operations. Every call is
// scoped to the acting commander; edits and removals require ownership.
type QuestOpsUsecase interface {
	Add(ctx context.Context, commanderID int32, input *AddQuestInput) (*QuestOutput, error)
	Edit(ctx context.Context, commanderID int32, questID int32, input *EditQuestInput) (*QuestOutput, error)
	Remove(ctx context.Context, commanderID int32, questID int32) error
	ListOwned(ctx context.Context, commanderID int32) ([]*QuestOutput, error)
}
