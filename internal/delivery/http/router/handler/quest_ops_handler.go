package handler

import (
	"net/http"
	"strconv"

	"tracker/internal/delivery/http/middleware"
	"tracker/internal/delivery/http/response"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// QuestOpsHandler holds dependencies for commander-side quest handlers.
// All routes sit behind the guild commander auth guard.
type QuestOpsHandler struct {
	uc usecase.QuestOpsUsecase
}

// NewQuestOpsHandler is the constructor for QuestOpsHandler, injected by Fx.
func NewQuestOpsHandler(uc usecase.QuestOpsUsecase) *QuestOpsHandler {
	return &QuestOpsHandler{uc: uc}
}

// Add handles the quest creation request.
func (h *QuestOpsHandler) Add(c echo.Context) error {
	commanderID, ok := middleware.PrincipalID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_MALFORMED", "Missing authenticated principal")
	}

	input := new(usecase.AddQuestInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quest input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Add(c.Request().Context(), commanderID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Quest added successfully")
}

// Edit handles the partial quest update request.
func (h *QuestOpsHandler) Edit(c echo.Context) error {
	commanderID, ok := middleware.PrincipalID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_MALFORMED", "Missing authenticated principal")
	}

	questID, err := questIDParam(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quest id")
	}

	input := new(usecase.EditQuestInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quest input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Edit(c.Request().Context(), commanderID, questID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Quest updated successfully")
}

// Remove handles the quest deletion request.
func (h *QuestOpsHandler) Remove(c echo.Context) error {
	commanderID, ok := middleware.PrincipalID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_MALFORMED", "Missing authenticated principal")
	}

	questID, err := questIDParam(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quest id")
	}

	if err := h.uc.Remove(c.Request().Context(), commanderID, questID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Quest removed successfully")
}

// ListOwned handles the request for the commander's own quests.
func (h *QuestOpsHandler) ListOwned(c echo.Context) error {
	commanderID, ok := middleware.PrincipalID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_MALFORMED", "Missing authenticated principal")
	}

	output, err := h.uc.ListOwned(c.Request().Context(), commanderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

func questIDParam(c echo.Context) (int32, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse quest id")
	}

	return int32(id), nil
}
