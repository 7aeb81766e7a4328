package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/user-registry/internal/dto"
	"github.com/octobees/user-registry/internal/repository"
	"github.com/octobees/user-registry/internal/service"
)

// Client-facing detail messages. External consumers match on these
// strings, so they are part of the wire contract.
const (
	msgEmailRegistered = "Email is already registered"
	msgUserNotFound    = "User not found"
	msgUserDeleted     = "User deleted successfully"
)

// UsersHandler exposes the user management endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs a handler instance.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// Create handles POST /add_users requests.
func (h *UsersHandler) Create(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return Message(c, http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.CreateUser(c.Request().Context(), req)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.Is(err, repository.ErrEmailDuplicate):
			return Message(c, http.StatusBadRequest, msgEmailRegistered)
		case errors.As(err, &ve):
			return Message(c, http.StatusBadRequest, ve.Error())
		default:
			return Message(c, http.StatusInternalServerError, "failed to create user")
		}
	}

	return c.JSON(http.StatusOK, user)
}

// List handles GET /get_users requests.
func (h *UsersHandler) List(c echo.Context) error {
	users, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		return Message(c, http.StatusInternalServerError, "failed to list users")
	}
	return c.JSON(http.StatusOK, users)
}

// Update handles PATCH /update_users/:user_id requests.
func (h *UsersHandler) Update(c echo.Context) error {
	id := c.Param("user_id")
	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return Message(c, http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.UpdateUser(c.Request().Context(), id, req)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return Message(c, http.StatusNotFound, msgUserNotFound)
		case errors.As(err, &ve):
			return Message(c, http.StatusBadRequest, ve.Error())
		default:
			return Message(c, http.StatusInternalServerError, "failed to update user")
		}
	}

	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /delete_users/:user_id requests.
func (h *UsersHandler) Delete(c echo.Context) error {
	id := c.Param("user_id")
	if err := h.users.DeleteUser(c.Request().Context(), id); err != nil {
		var ve *service.ValidationError
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return Message(c, http.StatusNotFound, msgUserNotFound)
		case errors.As(err, &ve):
			return Message(c, http.StatusBadRequest, ve.Error())
		default:
			return Message(c, http.StatusInternalServerError, "failed to delete user")
		}
	}

	return Message(c, http.StatusOK, msgUserDeleted)
}
