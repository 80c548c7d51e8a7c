package service

import (
	"context"
	"fmt"
	"time"

	"github.com/matchpoint/dating-api/internal/core/domain"
	"github.com/matchpoint/dating-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository shared by the service tests. FindMatches and
// AppendRating mirror the real Mongo query semantics so the business rules
// are exercised end to end.
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users  map[string]*domain.User // by ID
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	if u.Profile != nil {
		p := *u.Profile
		clone.Profile = &p
	}
	clone.Ratings = append([]domain.Rating(nil), u.Ratings...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	clone := cloneUser(user)
	clone.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[clone.ID] = clone
	return cloneUser(clone), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) ReplaceProfile(_ context.Context, id string, profile *domain.Profile, updatedAt time.Time) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	p := *profile
	u.Profile = &p
	u.UpdatedAt = updatedAt
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.FirstName != nil {
		u.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		u.LastName = *update.LastName
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	if update.Role != nil {
		u.Role = *update.Role
	}
	if update.Membership != nil {
		u.Membership = *update.Membership
	}
	u.UpdatedAt = update.UpdatedAt
	return cloneUser(u), nil
}

func (r *stubUserRepo) AppendRating(_ context.Context, toUserID string, rating domain.Rating) error {
	u, ok := r.users[toUserID]
	if !ok {
		return domain.ErrUserNotFound
	}
	// Mirrors the guarded $push: the rater may appear at most once.
	if u.HasRatedBy(rating.FromUserID) {
		return domain.ErrAlreadyRated
	}
	u.Ratings = append(u.Ratings, rating)
	u.UpdatedAt = rating.RatedAt
	return nil
}

func (r *stubUserRepo) FindMatches(_ context.Context, requester *domain.User) ([]*domain.User, error) {
	p := requester.Profile
	var out []*domain.User
	for _, u := range r.users {
		if u.ID == requester.ID || u.Profile == nil {
			continue
		}
		if u.Profile.LookingFor != p.Gender || u.Profile.Location != p.Location {
			continue
		}
		if !overlaps(u.Profile.Interests, p.Interests) && !overlaps(u.Profile.Skills, p.Skills) {
			continue
		}
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func overlaps(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// mustAdd inserts a prebuilt user directly, bypassing registration.
func (r *stubUserRepo) mustAdd(u *domain.User) *domain.User {
	r.nextID++
	clone := cloneUser(u)
	if clone.ID == "" {
		clone.ID = fmt.Sprintf("user_%d", r.nextID)
	}
	r.users[clone.ID] = clone
	return cloneUser(clone)
}

// ---------------------------------------------------------------------------
// Stub match cache and invalidator
// ---------------------------------------------------------------------------

type stubMatchCache struct {
	entries     map[string][]ports.MatchCandidate
	invalidated []string
}

func newStubMatchCache() *stubMatchCache {
	return &stubMatchCache{entries: make(map[string][]ports.MatchCandidate)}
}

func (c *stubMatchCache) Get(_ context.Context, userID string) ([]ports.MatchCandidate, bool, error) {
	entry, ok := c.entries[userID]
	return entry, ok, nil
}

func (c *stubMatchCache) Set(_ context.Context, userID string, candidates []ports.MatchCandidate) error {
	c.entries[userID] = candidates
	return nil
}

func (c *stubMatchCache) Invalidate(_ context.Context, userIDs ...string) error {
	for _, id := range userIDs {
		delete(c.entries, id)
		c.invalidated = append(c.invalidated, id)
	}
	return nil
}

type stubInvalidator struct {
	enqueued []string
}

func (s *stubInvalidator) Enqueue(userIDs ...string) {
	s.enqueued = append(s.enqueued, userIDs...)
}
