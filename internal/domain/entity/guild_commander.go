package entity

import "time"

// GuildCommander is a principal who owns and administers quests.
type GuildCommander struct {
	ID           int32
	Username     string // Unique login identifier, immutable after creation.
	PasswordHash string // bcrypt hash of the commander's password.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal returns the token-facing identity of the commander.
func (c *GuildCommander) Principal() Principal {
	return Principal{ID: c.ID, Kind: KindGuildCommander}
}

// RegisterGuildCommander carries the fields needed to persist a new commander.
type RegisterGuildCommander struct {
	Username     string
	PasswordHash string
}
