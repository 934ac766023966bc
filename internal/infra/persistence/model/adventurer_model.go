package model

import (
	"time"

	"tracker/internal/domain/entity"
)

// AdventurerModel mirrors the 'adventurers' table. Same shape as guild
// commanders, but a separate table: usernames are unique per kind, not
// globally.
type AdventurerModel struct {
	ID           int32  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(64);uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password;type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdventurerModel) TableName() string {
	return "adventurers"
}

// ToDomain maps the persistence model to a pure domain entity.
func (m *AdventurerModel) ToDomain() *entity.Adventurer {
	return &entity.Adventurer{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
