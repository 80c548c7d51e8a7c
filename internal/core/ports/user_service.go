package ports

import (
	"context"

	"github.com/matchpoint/dating-api/internal/core/domain"
)

// UserSummary is the lightweight view returned by the users listing.
type UserSummary struct {
	ID         string
	Username   string
	Email      string
	Membership domain.Membership
}

// ProfileInput carries a full replacement profile. Profile saves never merge.
type ProfileInput struct {
	Bio        string
	Age        int
	Gender     string
	LookingFor string
	Interests  []string
	Location   string
	Skills     []string
}

// ProfileView is the profile plus rating aggregates returned by GetProfile.
// AverageRating is the mean stars formatted to one decimal, or "Not rated"
// when the user has no ratings yet.
type ProfileView struct {
	Profile       domain.Profile
	AverageRating string
	TotalRatings  int
}

// MembershipInput is the optional membership change in an account update.
// EndDate is never caller-supplied: Paid forces now+1y, Free clears it.
type MembershipInput struct {
	Type      string
	StartDate string // RFC 3339; empty means "now" when switching type
}

// UpdateUserInput carries the sparse account update. Nil means unchanged.
type UpdateUserInput struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Role       *string
	Membership *MembershipInput
}

// UserService covers account listing, lookup, profile management, and updates.
type UserService interface {
	ListUsers(ctx context.Context) ([]UserSummary, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	SaveProfile(ctx context.Context, id string, input ProfileInput) (*domain.Profile, error)
	GetProfile(ctx context.Context, id string) (*ProfileView, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
}
