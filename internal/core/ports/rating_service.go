package ports

import "context"

// RatingInput is the DTO passed from the transport layer to RatingService.
type RatingInput struct {
	FromUserID string
	ToUserID   string
	Stars      int
	Comment    string
}

// RatingService appends ratings to the rated user's document.
type RatingService interface {
	// Submit records a rating. Out-of-range stars yield domain.ErrInvalidRating,
	// a missing target domain.ErrUserNotFound, and a repeat rating from the
	// same rater domain.ErrAlreadyRated.
	Submit(ctx context.Context, input RatingInput) error
}
