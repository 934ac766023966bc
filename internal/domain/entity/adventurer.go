package entity

import "time"

// Adventurer is a principal who views quests and acts on them. It shares the
// shape of GuildCommander but is a distinct kind: separate token namespace
// and separate uniqueness domain for usernames.
type Adventurer struct {
	ID           int32
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal returns the token-facing identity of the adventurer.
func (a *Adventurer) Principal() Principal {
	return Principal{ID: a.ID, Kind: KindAdventurer}
}

// RegisterAdventurer carries the fields needed to persist a new adventurer.
type RegisterAdventurer struct {
	Username     string
	PasswordHash string
}
