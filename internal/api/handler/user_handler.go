package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/matchpoint/dating-api/internal/api/metrics"
	"github.com/matchpoint/dating-api/internal/core/domain"
	"github.com/matchpoint/dating-api/internal/core/ports"
)

// UserHandler handles account listing, registration, lookup, and updates.
type UserHandler struct {
	users ports.UserService
	auth  ports.AuthService
}

func NewUserHandler(users ports.UserService, auth ports.AuthService) *UserHandler {
	return &UserHandler{users: users, auth: auth}
}

// List handles GET /api/users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userSummaryResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	summaries, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserSummaries(summaries))
}

// Register handles POST /api/users.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration fields"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.auth.Register(c.Request().Context(), toRegisterInput(req))
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(user.Membership.Type).Inc()
	return c.JSON(http.StatusCreated, registerResponse{
		Message: "User created successfully",
		User:    createdUser{ID: user.ID, Username: user.Username, Email: user.Email},
	})
}

// Get handles GET /api/users/:id.
//
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.users.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{ID: user.ID, Username: user.Username, Email: user.Email})
}

// Update handles PUT /api/users/:id, a sparse account update. Callers must
// be the account owner or an admin; only admins may change roles.
//
// @Summary      Update account fields
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  updateUserResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	targetID := c.Param("id")
	if err := requireSelfOrAdmin(c, targetID); err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.Role != nil {
		_, role, err := ctxIdentity(c)
		if err != nil {
			return err
		}
		if role != domain.RoleAdmin {
			return domain.ErrForbidden
		}
	}

	user, err := h.users.UpdateUser(c.Request().Context(), targetID, toUpdateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updateUserResponse{
		Message: "User updated",
		User:    toUpdatedUser(user),
	})
}
