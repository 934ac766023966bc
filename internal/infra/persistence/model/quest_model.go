package model

import (
	"time"

	"tracker/internal/domain/entity"
)

// QuestModel mirrors the 'quests' table.
type QuestModel struct {
	ID               int32   `gorm:"primaryKey;autoIncrement"`
	Name             string  `gorm:"type:varchar(255);not null"`
	Description      *string `gorm:"type:text"`
	Status           string  `gorm:"type:varchar(32);not null"`
	GuildCommanderID int32   `gorm:"not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (QuestModel) TableName() string {
	return "quests"
}

// ToDomain maps the persistence model to a pure domain entity.
func (m *QuestModel) ToDomain() *entity.Quest {
	return &entity.Quest{
		ID:               m.ID,
		Name:             m.Name,
		Description:      m.Description,
		Status:           entity.QuestStatus(m.Status),
		GuildCommanderID: m.GuildCommanderID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
