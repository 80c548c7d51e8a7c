package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/matchpoint/dating-api/internal/core/ports"
)

// MatchHandler serves match candidate lists.
type MatchHandler struct {
	matches ports.MatchService
}

func NewMatchHandler(matches ports.MatchService) *MatchHandler {
	return &MatchHandler{matches: matches}
}

// Get handles GET /api/matches/:id. An empty array is a valid response; the
// order of candidates is not guaranteed stable between calls.
//
// @Summary      Find match candidates for a user
// @Tags         matches
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {array}   ports.MatchCandidate
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/matches/{id} [get]
func (h *MatchHandler) Get(c echo.Context) error {
	candidates, err := h.matches.FindMatches(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if candidates == nil {
		candidates = []ports.MatchCandidate{}
	}
	return c.JSON(http.StatusOK, candidates)
}
