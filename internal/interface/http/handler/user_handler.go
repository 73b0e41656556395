package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/wichananm65/user-registry/internal/interface/presenter"
	"github.com/wichananm65/user-registry/internal/usecase"
	"github.com/wichananm65/user-registry/pkg/logger"
)

const (
	msgInvalidBody = "invalid json body"
	msgInvalidID   = "invalid user id"
	msgInternal    = "internal server error"
)

// UserHandler adapts HTTP requests to use case calls.
type UserHandler struct {
	usecase   usecase.UserUsecase
	presenter *presenter.UserPresenter
}

func NewUserHandler(usecase usecase.UserUsecase, presenter *presenter.UserPresenter) *UserHandler {
	return &UserHandler{usecase: usecase, presenter: presenter}
}

// RegisterRoutes mounts the /users endpoints. The search route is registered
// before /users/:id so "search" is never parsed as an id.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/users", h.createUser)
	router.Get("/users/search", h.searchUsers)
	router.Get("/users/:id", h.getUser)
	router.Put("/users/:id", h.updateUser)
	router.Delete("/users/:id", h.deleteUser)
}

func (h *UserHandler) createUser(c *fiber.Ctx) error {
	var input usecase.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return writeJSON(c, fiber.StatusBadRequest, errorResponse{Error: msgInvalidBody})
	}

	user, err := h.usecase.Create(c.UserContext(), input)
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, fiber.StatusOK, h.presenter.ToResponse(user))
}

func (h *UserHandler) getUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeJSON(c, fiber.StatusBadRequest, errorResponse{Error: msgInvalidID})
	}

	user, err := h.usecase.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, fiber.StatusOK, h.presenter.ToResponse(user))
}

func (h *UserHandler) updateUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeJSON(c, fiber.StatusBadRequest, errorResponse{Error: msgInvalidID})
	}

	var input usecase.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return writeJSON(c, fiber.StatusBadRequest, errorResponse{Error: msgInvalidBody})
	}

	user, err := h.usecase.Update(c.UserContext(), id, input)
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, fiber.StatusOK, h.presenter.ToResponse(user))
}

func (h *UserHandler) deleteUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeJSON(c, fiber.StatusBadRequest, errorResponse{Error: msgInvalidID})
	}

	if err := h.usecase.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *UserHandler) searchUsers(c *fiber.Ctx) error {
	var input usecase.SearchUsersInput
	if err := c.QueryParser(&input); err != nil {
		return writeJSON(c, fiber.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	users, err := h.usecase.Search(c.UserContext(), input)
	if err != nil {
		return writeError(c, err)
	}
	return writeJSON(c, fiber.StatusOK, h.presenter.ToList(users))
}

type errorResponse struct {
	Error      string              `json:"error"`
	Violations []usecase.Violation `json:"violations,omitempty"`
}

func writeJSON(c *fiber.Ctx, status int, payload any) error {
	return c.Status(status).JSON(payload)
}

// writeError maps use case errors onto HTTP statuses.
func writeError(c *fiber.Ctx, err error) error {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return writeJSON(c, fiber.StatusBadRequest, errorResponse{
			Error:      usecase.ErrValidation.Error(),
			Violations: verr.Violations,
		})
	case errors.Is(err, usecase.ErrUserNotFound):
		return writeJSON(c, fiber.StatusNotFound, errorResponse{Error: usecase.ErrUserNotFound.Error()})
	default:
		ctx := c.UserContext()
		logger.Log(ctx).Error(ctx, "unexpected use case error", zap.Error(err))
		return writeJSON(c, fiber.StatusInternalServerError, errorResponse{Error: msgInternal})
	}
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("id must be positive")
	}
	return id, nil
}
