package usecase

import (
	"context"

	"tracker/internal/domain/entity"
)

// QuestListInput narrows the quest board. Nil fields match everything.
type QuestListInput struct {
	Name   *string             `query:"name"`
	Status *entity.QuestStatus `query:"status"`
}

// QuestViewingUsecase covers the read side of the quest board, available to
// adventurers.
type QuestViewingUsecase interface {
	View(ctx context.Context, questID int32) (*QuestOutput, error)
	List(ctx context.Context, input *QuestListInput) ([]*QuestOutput, error)
}
