package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/matchpoint/dating-api/internal/api/metrics"
	"github.com/matchpoint/dating-api/internal/core/domain"
	"github.com/matchpoint/dating-api/internal/core/ports"
)

// AuthHandler handles credential verification.
type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Authenticate handles POST /api/authenticate.
//
// @Summary      Verify username and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authenticateRequest  true  "Credentials"
// @Success      200   {object}  authenticateResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/authenticate [post]
func (h *AuthHandler) Authenticate(c echo.Context) error {
	var req authenticateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		metrics.AuthFailuresTotal.WithLabelValues("missing_fields").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "Username and password are required")
	}

	token, _, err := h.auth.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.AuthFailuresTotal.WithLabelValues("invalid_credentials").Inc()
		}
		return err
	}

	return c.JSON(http.StatusOK, authenticateResponse{
		Message: "User authenticated successfully",
		Token:   token,
	})
}
