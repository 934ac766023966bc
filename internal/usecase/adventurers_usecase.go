// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// RegisterAdventurerInput defines the data required to register a new
// adventurer.
type RegisterAdventurerInput struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// RegisterOutput returns the newly created principal's id.
type RegisterOutput struct {
	ID int32 `json:"id"`
}

// AdventurersUsecase defines the adventurer registration operations exposed
// to the delivery layer.
type AdventurersUsecase interface {
	Register(ctx context.Context, input *RegisterAdventurerInput) (*RegisterOutput, error)
}
