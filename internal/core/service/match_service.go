package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/matchpoint/dating-api/internal/api/metrics"
	"github.com/matchpoint/dating-api/internal/core/domain"
	"github.com/matchpoint/dating-api/internal/core/ports"
)

// MatchService gates and computes match candidates for a user.
type MatchService struct {
	repo  ports.UserRepository
	cache MatchCache
	log   zerolog.Logger
}

func NewMatchService(repo ports.UserRepository, cache MatchCache, log zerolog.Logger) *MatchService {
	return &MatchService{repo: repo, cache: cache, log: log}
}

// FindMatches checks preconditions in order (existence, paid membership,
// profile completeness), then queries candidates. Results come back in
// natural store order; callers must not rely on ordering.
func (s *MatchService) FindMatches(ctx context.Context, userID string) ([]ports.MatchCandidate, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find matches: %w", err)
	}
	if user.Profile == nil {
		return nil, domain.ErrProfileNotFound
	}

	if user.Membership.Type != domain.MembershipPaid {
		metrics.MatchGateRejectionsTotal.WithLabelValues("membership").Inc()
		return nil, domain.ErrMembershipRequired
	}

	if !user.Profile.Complete() {
		metrics.MatchGateRejectionsTotal.WithLabelValues("incomplete_profile").Inc()
		return nil, domain.ErrProfileIncomplete
	}

	if s.cache != nil {
		cached, hit, cacheErr := s.cache.Get(ctx, userID)
		if cacheErr != nil {
			s.log.Warn().Err(cacheErr).Str("user_id", userID).Msg("match cache read failed")
		} else if hit {
			metrics.MatchCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
		metrics.MatchCacheTotal.WithLabelValues("miss").Inc()
	}

	matches, err := s.repo.FindMatches(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("find matches: %w", err)
	}

	candidates := make([]ports.MatchCandidate, 0, len(matches))
	for _, m := range matches {
		candidates = append(candidates, ports.MatchCandidate{
			ID:       m.ID,
			Username: m.Username,
			Email:    m.Email,
			Profile:  *m.Profile,
			HasRated: m.HasRatedBy(user.ID),
		})
	}

	if s.cache != nil {
		if cacheErr := s.cache.Set(ctx, userID, candidates); cacheErr != nil {
			s.log.Warn().Err(cacheErr).Str("user_id", userID).Msg("match cache write failed")
		}
	}

	metrics.MatchesComputedTotal.Inc()
	s.log.Debug().Str("user_id", userID).Int("candidates", len(candidates)).Msg("matches computed")
	return candidates, nil
}
