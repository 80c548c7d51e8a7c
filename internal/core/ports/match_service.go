package ports

import (
	"context"

	"github.com/matchpoint/dating-api/internal/core/domain"
)

// MatchCandidate is a single entry in a user's match list. HasRated reports
// whether the requester already rated this candidate.
type MatchCandidate struct {
	ID       string         `json:"_id"`
	Username string         `json:"username"`
	Email    string         `json:"email"`
	Profile  domain.Profile `json:"profile"`
	HasRated bool           `json:"hasRated"`
}

// MatchService produces match candidates for paid members with complete
// profiles. Preconditions fail in order: domain.ErrUserNotFound /
// domain.ErrProfileNotFound, then domain.ErrMembershipRequired, then
// domain.ErrProfileIncomplete. An empty candidate list is a valid outcome.
type MatchService interface {
	FindMatches(ctx context.Context, userID string) ([]MatchCandidate, error)
}
