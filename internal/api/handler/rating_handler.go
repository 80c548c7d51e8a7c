package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/matchpoint/dating-api/internal/core/ports"
)

// RatingHandler handles rating submission.
type RatingHandler struct {
	ratings ports.RatingService
}

func NewRatingHandler(ratings ports.RatingService) *RatingHandler {
	return &RatingHandler{ratings: ratings}
}

// Submit handles POST /api/rate.
//
// @Summary      Rate another user
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Param        body  body      rateRequest  true  "Rating"
// @Success      200   {object}  rateResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/rate [post]
func (h *RatingHandler) Submit(c echo.Context) error {
	var req rateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.ratings.Submit(c.Request().Context(), ports.RatingInput{
		FromUserID: req.FromUserID,
		ToUserID:   req.ToUserID,
		Stars:      req.Stars,
		Comment:    req.Comment,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, rateResponse{Success: true, Message: "Rating submitted"})
}
