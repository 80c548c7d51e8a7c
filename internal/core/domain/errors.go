package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingFields      = errors.New("missing required fields")

	ErrProfileNotFound   = errors.New("profile not found")
	ErrProfileIncomplete = errors.New("complete your profile to find matches")

	ErrMembershipRequired = errors.New("upgrade your membership to view matches")
	ErrForbidden          = errors.New("access forbidden")

	ErrAlreadyRated  = errors.New("already rated")
	ErrInvalidRating = errors.New("stars must be between 1 and 5")

	ErrInvalidMembership = errors.New("invalid membership type")
)
