package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matchpoint/dating-api/internal/core/domain"
	"github.com/matchpoint/dating-api/internal/core/ports"
)

const usersCollection = "users"

// UserRepository implements ports.UserRepository on MongoDB.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

// Field names match the stored document layout so existing data keeps working.
type mongoMembership struct {
	Type      string     `bson:"type"`
	StartDate time.Time  `bson:"startDate"`
	EndDate   *time.Time `bson:"endDate"`
}

type mongoUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"passwordHash"`
	FirstName    string             `bson:"firstName"`
	LastName     string             `bson:"lastName"`
	Role         string             `bson:"role,omitempty"`
	Membership   mongoMembership    `bson:"membershipType"`
	Profile      *domain.Profile    `bson:"profile,omitempty"`
	Ratings      []domain.Rating    `bson:"ratings,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func toMongoUser(u *domain.User) mongoUser {
	return mongoUser{
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         u.Role,
		Membership: mongoMembership{
			Type:      u.Membership.Type,
			StartDate: u.Membership.StartDate,
			EndDate:   u.Membership.EndDate,
		},
		Profile:   u.Profile,
		Ratings:   u.Ratings,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toDomainUser(mu mongoUser) *domain.User {
	return &domain.User{
		ID:           mu.ID.Hex(),
		Username:     mu.Username,
		Email:        mu.Email,
		PasswordHash: mu.PasswordHash,
		FirstName:    mu.FirstName,
		LastName:     mu.LastName,
		Role:         mu.Role,
		Membership: domain.Membership{
			Type:      mu.Membership.Type,
			StartDate: mu.Membership.StartDate,
			EndDate:   mu.Membership.EndDate,
		},
		Profile:   mu.Profile,
		Ratings:   mu.Ratings,
		CreatedAt: mu.CreatedAt,
		UpdatedAt: mu.UpdatedAt,
	}
}

// Create inserts a new user. The unique indexes on username and email turn
// concurrent duplicate registrations into ErrUserExists instead of relying on
// a check-then-insert.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toMongoUser(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return toDomainUser(mu), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return toDomainUser(mu), nil
}

// List returns every user with only the summary fields populated.
func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	projection := bson.M{"username": 1, "email": 1, "membershipType": 1}
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetProjection(projection))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var users []*domain.User
	for cur.Next(ctx) {
		var mu mongoUser
		if err := cur.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, toDomainUser(mu))
	}
	return users, cur.Err()
}

// ReplaceProfile overwrites the profile object wholesale and bumps updatedAt.
func (r *UserRepository) ReplaceProfile(ctx context.Context, id string, profile *domain.Profile, updatedAt time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{"profile": profile, "updatedAt": updatedAt},
	})
	if err != nil {
		return fmt.Errorf("replace profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Update applies a sparse $set built from the non-nil fields of update and
// returns the post-update document.
func (r *UserRepository) Update(ctx context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	set := bson.M{"updatedAt": update.UpdatedAt}
	if update.FirstName != nil {
		set["firstName"] = *update.FirstName
	}
	if update.LastName != nil {
		set["lastName"] = *update.LastName
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Role != nil {
		set["role"] = *update.Role
	}
	if update.Membership != nil {
		set["membershipType"] = mongoMembership{
			Type:      update.Membership.Type,
			StartDate: update.Membership.StartDate,
			EndDate:   update.Membership.EndDate,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mu mongoUser
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&mu)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return toDomainUser(mu), nil
}

// AppendRating pushes the rating only when the rater is not already present in
// the target's list. The guard lives in the update filter, so two concurrent
// submissions from the same rater cannot both match.
func (r *UserRepository) AppendRating(ctx context.Context, toUserID string, rating domain.Rating) error {
	oid, err := primitive.ObjectIDFromHex(toUserID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"_id":               oid,
		"ratings.fromUserId": bson.M{"$ne": rating.FromUserID},
	}
	update := bson.M{
		"$push": bson.M{"ratings": rating},
		"$set":  bson.M{"updatedAt": rating.RatedAt},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("append rating: %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	// Filter missed: either the user is gone or the rater already rated.
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("append rating: %w", err)
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return domain.ErrAlreadyRated
}

// FindMatches runs the candidate query: everyone but the requester, whose
// lookingFor equals the requester's gender (one-directional), in the same
// location, sharing at least one interest or skill. No sort is applied;
// natural order is not guaranteed stable.
func (r *UserRepository) FindMatches(ctx context.Context, requester *domain.User) ([]*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(requester.ID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	p := requester.Profile
	filter := bson.M{
		"_id":                bson.M{"$ne": oid},
		"profile.lookingFor": p.Gender,
		"profile.location":   p.Location,
		"$or": bson.A{
			bson.M{"profile.interests": bson.M{"$in": p.Interests}},
			bson.M{"profile.skills": bson.M{"$in": p.Skills}},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find matches: %w", err)
	}
	defer cur.Close(ctx)

	var matches []*domain.User
	for cur.Next(ctx) {
		var mu mongoUser
		if err := cur.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode match: %w", err)
		}
		matches = append(matches, toDomainUser(mu))
	}
	return matches, cur.Err()
}

// EnsureIndexes creates the uniqueness constraints registration depends on and
// a lookup index for the rating guard.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "ratings.fromUserId", Value: 1}}},
		{Keys: bson.D{
			{Key: "profile.lookingFor", Value: 1},
			{Key: "profile.location", Value: 1},
		}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
