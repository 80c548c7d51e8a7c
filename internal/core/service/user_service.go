package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/matchpoint/dating-api/internal/core/domain"
	"github.com/matchpoint/dating-api/internal/core/ports"
)

// NotRatedSentinel is returned as the averageRating for users with no ratings,
// instead of zero or a NaN from empty-list arithmetic.
const NotRatedSentinel = "Not rated"

// MatchCache abstracts the match-result cache (Redis). Entries are
// best-effort: cache failures never fail the request.
type MatchCache interface {
	Get(ctx context.Context, userID string) ([]ports.MatchCandidate, bool, error)
	Set(ctx context.Context, userID string, candidates []ports.MatchCandidate) error
	Invalidate(ctx context.Context, userIDs ...string) error
}

// UserService implements account listing, lookup, profile management, and
// sparse account updates.
type UserService struct {
	repo   ports.UserRepository
	cache  MatchCache
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, cache MatchCache, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, cache: cache, logger: logger}
}

func (s *UserService) ListUsers(ctx context.Context) ([]ports.UserSummary, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	summaries := make([]ports.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, ports.UserSummary{
			ID:         u.ID,
			Username:   u.Username,
			Email:      u.Email,
			Membership: u.Membership,
		})
	}
	return summaries, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// SaveProfile replaces the user's profile wholesale. There are no
// partial-update semantics: omitted fields are gone after a save.
func (s *UserService) SaveProfile(ctx context.Context, id string, input ports.ProfileInput) (*domain.Profile, error) {
	profile := &domain.Profile{
		Bio:        input.Bio,
		Age:        input.Age,
		Gender:     input.Gender,
		LookingFor: input.LookingFor,
		Interests:  input.Interests,
		Location:   input.Location,
		Skills:     input.Skills,
	}

	if err := s.repo.ReplaceProfile(ctx, id, profile, time.Now().UTC()); err != nil {
		return nil, err
	}

	s.invalidateMatches(ctx, id)
	s.logger.Info().Str("user_id", id).Msg("profile saved")
	return profile, nil
}

func (s *UserService) GetProfile(ctx context.Context, id string) (*ports.ProfileView, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	if user.Profile == nil {
		return nil, domain.ErrProfileNotFound
	}

	view := &ports.ProfileView{
		Profile:       *user.Profile,
		AverageRating: NotRatedSentinel,
	}
	if avg, total, ok := user.AverageRating(); ok {
		view.AverageRating = fmt.Sprintf("%.1f", avg)
		view.TotalRatings = total
	}
	return view, nil
}

// UpdateUser applies a sparse update: only supplied fields change, updatedAt
// always refreshes. A membership switch to Paid forces endDate one year out
// regardless of caller input; switching to Free clears it.
func (s *UserService) UpdateUser(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	update := ports.UserUpdate{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Role:      input.Role,
		UpdatedAt: time.Now().UTC(),
	}

	if input.Membership != nil {
		membership, err := buildMembership(input.Membership)
		if err != nil {
			return nil, err
		}
		update.Membership = membership
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.invalidateMatches(ctx, id)
	s.logger.Info().Str("user_id", id).Msg("user updated")
	return updated, nil
}

func buildMembership(input *ports.MembershipInput) (*domain.Membership, error) {
	if !domain.ValidMembershipType(input.Type) {
		return nil, domain.ErrInvalidMembership
	}

	start := time.Now().UTC()
	if input.StartDate != "" {
		parsed, err := time.Parse(time.RFC3339, input.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: bad startDate", domain.ErrInvalidMembership)
		}
		start = parsed.UTC()
	}

	// EndDate is derived, never caller-supplied: +1 year for Paid, nil for Free.
	m := domain.NewMembership(input.Type, start)
	if input.Type == domain.MembershipPaid {
		end := time.Now().UTC().AddDate(1, 0, 0)
		m.EndDate = &end
	}
	return &m, nil
}

func (s *UserService) invalidateMatches(ctx context.Context, userIDs ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userIDs...); err != nil {
		s.logger.Warn().Err(err).Strs("user_ids", userIDs).Msg("match cache invalidation failed")
	}
}
