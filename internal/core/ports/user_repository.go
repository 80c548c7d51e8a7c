package ports

import (
	"context"
	"time"

	"github.com/matchpoint/dating-api/internal/core/domain"
)

// UserUpdate carries the sparse field set applied by account updates.
// Nil pointers mean "leave unchanged". UpdatedAt is always applied.
type UserUpdate struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Role       *string
	Membership *domain.Membership
	UpdatedAt  time.Time
}

// UserRepository defines persistence operations for the users collection.
type UserRepository interface {
	// Create inserts a new user. Duplicate username/email surfaces as
	// domain.ErrUserExists (enforced by unique indexes, not read-then-write).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// List returns all users; callers project the summary fields they need.
	List(ctx context.Context) ([]*domain.User, error)

	// ReplaceProfile overwrites the user's profile wholesale and bumps updatedAt.
	ReplaceProfile(ctx context.Context, id string, profile *domain.Profile, updatedAt time.Time) error

	// Update applies a sparse update and returns the updated user.
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)

	// AppendRating atomically appends rating to the target's list. The write is
	// guarded so a rater can appear at most once: domain.ErrAlreadyRated when
	// the rater is already present, domain.ErrUserNotFound when the target
	// does not exist.
	AppendRating(ctx context.Context, toUserID string, rating domain.Rating) error

	// FindMatches returns candidates for the requester: everyone else whose
	// lookingFor equals the requester's gender, in the same location, sharing
	// at least one interest or skill. Natural store order, not guaranteed stable.
	FindMatches(ctx context.Context, requester *domain.User) ([]*domain.User, error)
}
