package usecase

import "context"

// RegisterGuildCommanderInput defines the data required to register a new
// guild commander.
type RegisterGuildCommanderInput struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// GuildCommandersUsecase defines the guild commander registration operations
// exposed to the delivery layer.
type GuildCommandersUsecase interface {
	Register(ctx context.Context, input *RegisterGuildCommanderInput) (*RegisterOutput, error)
}
