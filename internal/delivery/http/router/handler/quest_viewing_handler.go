package handler

import (
	"net/http"

	"tracker/internal/delivery/http/response"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// QuestViewingHandler holds dependencies for the read-only quest board
// handlers. All routes sit behind the adventurer auth guard.
type QuestViewingHandler struct {
	uc usecase.QuestViewingUsecase
}

// NewQuestViewingHandler is the constructor for QuestViewingHandler, injected by Fx.
func NewQuestViewingHandler(uc usecase.QuestViewingUsecase) *QuestViewingHandler {
	return &QuestViewingHandler{uc: uc}
}

// View handles the single quest request.
func (h *QuestViewingHandler) View(c echo.Context) error {
	questID, err := questIDParam(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quest id")
	}

	output, err := h.uc.View(c.Request().Context(), questID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// List handles the quest board request with optional name and status filters.
func (h *QuestViewingHandler) List(c echo.Context) error {
	input := new(usecase.QuestListInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quest filter")
	}

	output, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
