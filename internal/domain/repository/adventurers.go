package repository

import (
	"context"
	"errors"

	"tracker/internal/domain/entity"
)

// ErrAdventurerNotFound is returned when an adventurer is not found.
var ErrAdventurerNotFound = errors.New("adventurer not found")

// AdventurersRepository defines the persistence operations for the
// adventurer aggregate. It mirrors GuildCommandersRepository but stays a
// distinct interface: the two principal kinds never share persistence paths.
type AdventurersRepository interface {
	Register(ctx context.Context, reg *entity.RegisterAdventurer) (int32, error)

	FindByUsername(ctx context.Context, username string) (*entity.Adventurer, error)

	FindByID(ctx context.Context, id int32) (*entity.Adventurer, error)
}
