package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/matchpoint/dating-api/internal/core/domain"
)

const seedPassword = "password123"

type seedUser struct {
	username   string
	email      string
	firstName  string
	lastName   string
	membership string
}

var demoUsers = []seedUser{
	{"johndoe", "johndoe@email.com", "John", "Doe", domain.MembershipFree},
	{"janedoe", "janedoe@email.com", "Jane", "Doe", domain.MembershipPaid},
	{"batman", "batman@email.com", "Bruce", "Wayne", domain.MembershipFree},
	{"superman", "superman@email.com", "Clark", "Kent", domain.MembershipPaid},
	{"spiderman", "spiderman@email.com", "Peter", "Parker", domain.MembershipFree},
	{"wonderwoman", "wonderwoman@email.com", "Diana", "Prince", domain.MembershipPaid},
	{"hulk", "hulk@email.com", "Bruce", "Banner", domain.MembershipFree},
	{"ironman", "ironman@email.com", "Tony", "Stark", domain.MembershipPaid},
	{"thor", "thor@email.com", "Thor", "Odinson", domain.MembershipFree},
	{"captainamerica", "captain@email.com", "Steve", "Rogers", domain.MembershipPaid},
}

// SeedDemoUsers inserts the demo accounts when the collection is empty.
// Running against a populated database is a no-op, so startup seeding is safe
// to leave enabled in development.
func (r *UserRepository) SeedDemoUsers(ctx context.Context, log zerolog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, map[string]any{})
	if err != nil {
		return fmt.Errorf("seed users: count: %w", err)
	}
	if n > 0 {
		log.Debug().Int64("existing", n).Msg("users already present, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed users: hash: %w", err)
	}

	now := time.Now().UTC()
	docs := make([]any, 0, len(demoUsers))
	for _, su := range demoUsers {
		docs = append(docs, toMongoUser(&domain.User{
			Username:     su.username,
			Email:        su.email,
			PasswordHash: string(hash),
			FirstName:    su.firstName,
			LastName:     su.lastName,
			Role:         domain.RoleUser,
			Membership:   domain.NewMembership(su.membership, now),
			CreatedAt:    now,
			UpdatedAt:    now,
		}))
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed users: insert: %w", err)
	}

	log.Info().Int("count", len(docs)).Msg("demo users seeded")
	return nil
}
