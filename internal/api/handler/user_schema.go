package handler

import (
	"time"

	"github.com/matchpoint/dating-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Registration ---

// Public registration never accepts a role claim; accounts start as "user"
// and only an admin can promote via the account update endpoint.
type registerRequest struct {
	Username       string `json:"username"  validate:"required,min=3"`
	Email          string `json:"email"     validate:"required,email"`
	Password       string `json:"password"  validate:"required,min=8"`
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName"  validate:"required"`
	MembershipType string `json:"type"      validate:"omitempty,oneof=Free Paid"`
}

type createdUser struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type registerResponse struct {
	Message string      `json:"message"`
	User    createdUser `json:"user"`
}

// --- Authentication ---

type authenticateRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authenticateResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// --- User views ---

type userSummaryResponse struct {
	ID         string            `json:"_id"`
	Username   string            `json:"username"`
	Email      string            `json:"email"`
	Membership domain.Membership `json:"membershipType"`
}

type userResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// --- Profile ---

// All seven fields are required: saves replace the profile wholesale, so a
// partial body would silently erase the omitted fields.
type profileRequest struct {
	Bio        string   `json:"bio"        validate:"required"`
	Age        int      `json:"age"        validate:"required,gte=18"`
	Gender     string   `json:"gender"     validate:"required"`
	LookingFor string   `json:"lookingFor" validate:"required"`
	Interests  []string `json:"interests"  validate:"required,min=1,dive,required"`
	Location   string   `json:"location"   validate:"required"`
	Skills     []string `json:"skills"     validate:"required,min=1,dive,required"`
}

type profileSaveResponse struct {
	Message string         `json:"message"`
	Profile domain.Profile `json:"profile"`
}

type profileViewResponse struct {
	Bio           string   `json:"bio"`
	Age           int      `json:"age"`
	Gender        string   `json:"gender"`
	LookingFor    string   `json:"lookingFor"`
	Interests     []string `json:"interests"`
	Location      string   `json:"location"`
	Skills        []string `json:"skills"`
	AverageRating string   `json:"averageRating"`
	TotalRatings  int      `json:"totalRatings"`
}

// --- Rating ---

type rateRequest struct {
	FromUserID string `json:"fromUserId" validate:"required"`
	ToUserID   string `json:"toUserId"   validate:"required"`
	Stars      int    `json:"stars"      validate:"required,gte=1,lte=5"`
	Comment    string `json:"comment"`
}

type rateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// --- Account update ---

type membershipUpdateRequest struct {
	Type      string `json:"type"      validate:"required,oneof=Free Paid"`
	StartDate string `json:"startDate" validate:"omitempty"`
}

type updateUserRequest struct {
	FirstName  *string                  `json:"firstName"      validate:"omitempty,min=1"`
	LastName   *string                  `json:"lastName"       validate:"omitempty,min=1"`
	Email      *string                  `json:"email"          validate:"omitempty,email"`
	Role       *string                  `json:"role"           validate:"omitempty,oneof=user admin"`
	Membership *membershipUpdateRequest `json:"membershipType" validate:"omitempty"`
}

type updatedUserResponse struct {
	ID         string            `json:"_id"`
	Username   string            `json:"username"`
	Email      string            `json:"email"`
	FirstName  string            `json:"firstName"`
	LastName   string            `json:"lastName"`
	Role       string            `json:"role"`
	Membership domain.Membership `json:"membershipType"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

type updateUserResponse struct {
	Message string              `json:"message"`
	User    updatedUserResponse `json:"user"`
}
