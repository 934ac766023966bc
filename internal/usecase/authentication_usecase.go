package usecase

import (
	"context"

	"tracker/internal/domain/entity"
)

// LoginInput carries the credentials presented at login.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshInput carries the refresh token presented for rotation.
type RefreshInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// TokenPairOutput is the session material returned on login and refresh.
type TokenPairOutput struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	AccessExpiresIn  int64  `json:"accessExpiresIn"`
	RefreshExpiresIn int64  `json:"refreshExpiresIn"`
}

// AuthenticationUsecase authenticates principals of either kind and rotates
// their sessions.
type AuthenticationUsecase interface {
	Login(ctx context.Context, kind entity.PrincipalKind, input *LoginInput) (*TokenPairOutput, error)
	Refresh(ctx context.Context, kind entity.PrincipalKind, input *RefreshInput) (*TokenPairOutput, error)
}
