package handler

import (
	"net/http"

	"tracker/internal/delivery/http/response"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GuildCommanderHandler holds dependencies for guild commander handlers.
type GuildCommanderHandler struct {
	uc usecase.GuildCommandersUsecase
}

// NewGuildCommanderHandler is the constructor for GuildCommanderHandler, injected by Fx.
func NewGuildCommanderHandler(uc usecase.GuildCommandersUsecase) *GuildCommanderHandler {
	return &GuildCommanderHandler{uc: uc}
}

// Register handles the guild commander registration request.
func (h *GuildCommanderHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterGuildCommanderInput)
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

	return response.Success(c, http.StatusCreated, output, "Guild commander registered successfully")
}
