package handler

import (
	"net/http"

	"tracker/internal/delivery/http/response"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdventurerHandler holds dependencies for adventurer handlers.
type AdventurerHandler struct {
	uc usecase.AdventurersUsecase
}

// NewAdventurerHandler is the constructor for AdventurerHandler, injected by Fx.
func NewAdventurerHandler(uc usecase.AdventurersUsecase) *AdventurerHandler {
	return &AdventurerHandler{uc: uc}
}

// Register handles the adventurer registration request.
func (h *AdventurerHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterAdventurerInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Adventurer registered successfully")
}
