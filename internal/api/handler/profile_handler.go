package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/matchpoint/dating-api/internal/core/ports"
)

// ProfileHandler handles saving and reading dating profiles.
type ProfileHandler struct {
	users ports.UserService
}

func NewProfileHandler(users ports.UserService) *ProfileHandler {
	return &ProfileHandler{users: users}
}

// Save handles POST /api/users/:id/profile. The body replaces the stored
// profile wholesale; there are no PATCH semantics.
//
// @Summary      Save a user's profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "User ID"
// @Param        body  body      profileRequest  true  "Full profile"
// @Success      200   {object}  profileSaveResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/users/{id}/profile [post]
func (h *ProfileHandler) Save(c echo.Context) error {
	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.users.SaveProfile(c.Request().Context(), c.Param("id"), toProfileInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileSaveResponse{
		Message: "Profile saved successfully",
		Profile: *profile,
	})
}

// Get handles GET /api/users/:id/profile.
//
// @Summary      Get a user's profile with rating aggregates
// @Tags         profiles
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  profileViewResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id}/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	view, err := h.users.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileView(view))
}
