package ports

import (
	"context"

	"github.com/matchpoint/dating-api/internal/core/domain"
)

// RegisterInput carries raw registration fields from the transport layer.
type RegisterInput struct {
	Username       string
	Email          string
	Password       string
	FirstName      string
	LastName       string
	Role           string // defaults to "user" when empty
	MembershipType string // defaults to "Free" when empty
}

// AuthService implements registration and credential checks.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Authenticate verifies username/password and returns a signed token.
	// Unknown users and bad passwords both yield domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (string, *domain.User, error)
}
