package service

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/matchpoint/dating-api/internal/api/metrics"
	"github.com/matchpoint/dating-api/internal/core/domain"
	"github.com/matchpoint/dating-api/internal/core/ports"
)

// Invalidator schedules match-cache invalidation for the given users.
// Implemented by the queue dispatcher; enqueueing never blocks the request.
type Invalidator interface {
	Enqueue(userIDs ...string)
}

// RatingService appends ratings to the rated user's embedded list.
type RatingService struct {
	repo        ports.UserRepository
	invalidator Invalidator
	log         zerolog.Logger
}

func NewRatingService(repo ports.UserRepository, invalidator Invalidator, log zerolog.Logger) *RatingService {
	return &RatingService{repo: repo, invalidator: invalidator, log: log}
}

// Submit records a rating. Duplicate prevention happens in the store via a
// guarded update, not a read-then-write check, so concurrent submissions from
// the same rater cannot both land.
func (s *RatingService) Submit(ctx context.Context, input ports.RatingInput) error {
	if input.FromUserID == "" || input.ToUserID == "" || input.Stars == 0 {
		return domain.ErrMissingFields
	}
	if input.Stars < domain.MinStars || input.Stars > domain.MaxStars {
		return domain.ErrInvalidRating
	}

	rating := domain.Rating{
		FromUserID: input.FromUserID,
		ToUserID:   input.ToUserID,
		Stars:      input.Stars,
		Comment:    input.Comment,
		RatedAt:    time.Now().UTC(),
	}

	if err := s.repo.AppendRating(ctx, input.ToUserID, rating); err != nil {
		return err
	}

	// The rater's cached match list still says hasRated=false for this
	// candidate; drop both sides' entries.
	if s.invalidator != nil {
		s.invalidator.Enqueue(input.FromUserID, input.ToUserID)
	}

	metrics.RatingsSubmittedTotal.WithLabelValues(strconv.Itoa(input.Stars)).Inc()
	s.log.Info().
		Str("from_user_id", input.FromUserID).
		Str("to_user_id", input.ToUserID).
		Int("stars", input.Stars).
		Msg("rating submitted")
	return nil
}
