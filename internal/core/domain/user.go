package domain

import (
	"strings"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Membership tiers. Free members can browse and be rated; matching requires Paid.
const (
	MembershipFree = "Free"
	MembershipPaid = "Paid"
)

// Membership describes the user's tier. EndDate is nil for Free members and
// one year past StartDate for Paid members.
type Membership struct {
	Type      string     `json:"type" bson:"type"`
	StartDate time.Time  `json:"startDate" bson:"startDate"`
	EndDate   *time.Time `json:"endDate" bson:"endDate"`
}

// NewMembership builds a membership starting at start. Paid memberships expire
// one year out; Free memberships never expire.
func NewMembership(membershipType string, start time.Time) Membership {
	m := Membership{Type: membershipType, StartDate: start}
	if membershipType == MembershipPaid {
		end := start.AddDate(1, 0, 0)
		m.EndDate = &end
	}
	return m
}

// ValidMembershipType reports whether t is one of the known tiers.
func ValidMembershipType(t string) bool {
	return t == MembershipFree || t == MembershipPaid
}

// Profile is the dating profile a user attaches after registration.
// It is always replaced wholesale, never merged field by field.
type Profile struct {
	Bio        string   `json:"bio" bson:"bio"`
	Age        int      `json:"age" bson:"age"`
	Gender     string   `json:"gender" bson:"gender"`
	LookingFor string   `json:"lookingFor" bson:"lookingFor"`
	Interests  []string `json:"interests" bson:"interests"`
	Location   string   `json:"location" bson:"location"`
	Skills     []string `json:"skills" bson:"skills"`
}

// Complete reports whether the fields the matching engine depends on are all
// present. Bio and age are display-only and do not gate matching.
func (p *Profile) Complete() bool {
	if p == nil {
		return false
	}
	return strings.TrimSpace(p.Gender) != "" &&
		strings.TrimSpace(p.LookingFor) != "" &&
		strings.TrimSpace(p.Location) != "" &&
		len(p.Interests) > 0 &&
		len(p.Skills) > 0
}

// Star rating bounds.
const (
	MinStars = 1
	MaxStars = 5
)

// Rating is a single star rating embedded in the rated user's document.
// Ratings are append-only; a given rater appears at most once per user.
type Rating struct {
	FromUserID string    `json:"fromUserId" bson:"fromUserId"`
	ToUserID   string    `json:"toUserId" bson:"toUserId"`
	Stars      int       `json:"stars" bson:"stars"`
	Comment    string    `json:"comment,omitempty" bson:"comment,omitempty"`
	RatedAt    time.Time `json:"ratedAt" bson:"ratedAt"`
}

// User is the aggregate root: identity, membership, optional profile, and
// the ratings other users have left.
type User struct {
	ID           string     `json:"_id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Role         string     `json:"role"`
	Membership   Membership `json:"membershipType"`
	Profile      *Profile   `json:"profile,omitempty"`
	Ratings      []Rating   `json:"ratings,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// HasRatedBy reports whether fromUserID already appears in the user's ratings.
func (u *User) HasRatedBy(fromUserID string) bool {
	for _, r := range u.Ratings {
		if r.FromUserID == fromUserID {
			return true
		}
	}
	return false
}

// AverageRating returns the mean stars across received ratings and the total
// count. ok is false when the user has no ratings yet.
func (u *User) AverageRating() (avg float64, total int, ok bool) {
	total = len(u.Ratings)
	if total == 0 {
		return 0, 0, false
	}
	sum := 0
	for _, r := range u.Ratings {
		sum += r.Stars
	}
	return float64(sum) / float64(total), total, true
}
