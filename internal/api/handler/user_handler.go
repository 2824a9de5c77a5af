package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/collectif-avenir/campaign-api/internal/api/middleware"
	"github.com/collectif-avenir/campaign-api/internal/core/domain"
	"github.com/collectif-avenir/campaign-api/internal/core/ports"
)

// UserHandler serves admin-only account management. Routes are mounted
// behind SessionAuth and RBAC(admin).
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=admin editor"`
}

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Create(c.Request().Context(), req.Username, req.Password, req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

func (h *UserHandler) Delete(c echo.Context) error {
	p, ok := middleware.Principal(c)
	if !ok {
		return domain.ErrUnauthenticated
	}
	if err := h.userService.Delete(c.Request().Context(), p, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
