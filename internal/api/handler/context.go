package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/matchpoint/dating-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: both claims must be present, which
// proves the middleware ran on this route.
func ctxIdentity(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get("user_id").(string)
	role, _ = c.Get("role").(string)
	if userID == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, role, nil
}

// requireSelfOrAdmin rejects requests where the caller is neither the target
// user nor an admin.
func requireSelfOrAdmin(c echo.Context, targetID string) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if role != domain.RoleAdmin && userID != targetID {
		return domain.ErrForbidden
	}
	return nil
}
