package handler

import (
	"net/http"

	"tracker/internal/delivery/http/response"
	"tracker/internal/domain/entity"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthenticationHandler holds dependencies for login and refresh handlers.
// Each route is bound to one principal kind so accounts of the two kinds
// never share a login endpoint.
type AuthenticationHandler struct {
	uc usecase.AuthenticationUsecase
}

// NewAuthenticationHandler is the constructor for AuthenticationHandler, injected by Fx.
func NewAuthenticationHandler(uc usecase.AuthenticationUsecase) *AuthenticationHandler {
	return &AuthenticationHandler{uc: uc}
}

// LoginGuildCommander handles the guild commander login request.
func (h *AuthenticationHandler) LoginGuildCommander(c echo.Context) error {
	return h.login(c, entity.KindGuildCommander)
}

// LoginAdventurer handles the adventurer login request.
func (h *AuthenticationHandler) LoginAdventurer(c echo.Context) error {
	return h.login(c, entity.KindAdventurer)
}

// RefreshGuildCommander handles the guild commander session refresh request.
func (h *AuthenticationHandler) RefreshGuildCommander(c echo.Context) error {
	return h.refresh(c, entity.KindGuildCommander)
}

// RefreshAdventurer handles the adventurer session refresh request.
func (h *AuthenticationHandler) RefreshAdventurer(c echo.Context) error {
	return h.refresh(c, entity.KindAdventurer)
}

func (h *AuthenticationHandler) login(c echo.Context, kind entity.PrincipalKind) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), kind, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

func (h *AuthenticationHandler) refresh(c echo.Context, kind entity.PrincipalKind) error {
	input := new(usecase.RefreshInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Refresh(c.Request().Context(), kind, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Session refreshed successfully")
}
