// Package model contains the GORM persistence models mirroring the database
// schema. Mapping to and from domain entities happens at the repository
// boundary so the domain stays free of persistence tags.
package model

import (
	"time"

	"tracker/internal/domain/entity"
)

// GuildCommanderModel mirrors the 'guild_commanders' table.
type GuildCommanderModel struct {
	ID           int32  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(64);uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password;type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Quests []QuestModel `gorm:"foreignKey:GuildCommanderID"`
}

// TableName explicitly sets the table name for GORM.
func (GuildCommanderModel) TableName() string {
	return "guild_commanders"
}

// ToDomain maps the persistence model to a pure domain entity.
func (m *GuildCommanderModel) ToDomain() *entity.GuildCommander {
	return &entity.GuildCommander{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
