package impl

import (
	"io"
	"log/slog"
	"time"

	"tracker/internal/domain/entity"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string {
	return &s
}

func statusPtr(s entity.QuestStatus) *entity.QuestStatus {
	return &s
}

func testQuest(id, commanderID int32, status entity.QuestStatus) *entity.Quest {
	return &entity.Quest{
		ID:               id,
		Name:             "Slay the wyvern",
		Status:           status,
		GuildCommanderID: commanderID,
		CreatedAt:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}
