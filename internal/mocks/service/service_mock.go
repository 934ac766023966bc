// Package service provides hand-written testify mocks for the domain
// service interfaces.
package service

import (
	"time"

	"tracker/internal/domain/entity"
	"tracker/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher mocks service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenService mocks service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) IssueTokenPair(principal entity.Principal) (*service.TokenPair, error) {
	args := m.Called(principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.TokenPair), args.Error(1)
}

func (m *MockTokenService) ValidateAccessToken(token string, expected entity.PrincipalKind) (*service.Claims, error) {
	args := m.Called(token, expected)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockTokenService) ValidateRefreshToken(token string, expected entity.PrincipalKind) (*service.Claims, error) {
	args := m.Called(token, expected)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockTokenService) Refresh(refreshToken string, expected entity.PrincipalKind) (*service.TokenPair, *service.Claims, error) {
	args := m.Called(refreshToken, expected)

	var pair *service.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*service.TokenPair)
	}

	var claims *service.Claims
	if args.Get(1) != nil {
		claims = args.Get(1).(*service.Claims)
	}

	return pair, claims, args.Error(2)
}

func (m *MockTokenService) AccessTokenTTL() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

func (m *MockTokenService) RefreshTokenTTL() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}
