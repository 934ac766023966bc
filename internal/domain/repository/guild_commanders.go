// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tracker/internal/domain/entity"
)

// ErrGuildCommanderNotFound is returned when a guild commander is not found.
var ErrGuildCommanderNotFound = errors.New("guild commander not found")

// GuildCommandersRepository defines the persistence operations for the
// guild commander aggregate.
type GuildCommandersRepository interface {
	// Register persists a new commander and returns the generated id.
	// Username uniqueness is enforced by the store's constraint, not a
	// pre-check, so concurrent registrations cannot race past it.
	Register(ctx context.Context, reg *entity.RegisterGuildCommander) (int32, error)

	// FindByUsername retrieves a commander by login name.
	FindByUsername(ctx context.Context, username string) (*entity.GuildCommander, error)

	// FindByID retrieves a commander by id.
	FindByID(ctx context.Context, id int32) (*entity.GuildCommander, error)
}
