package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/matchpoint/dating-api/internal/core/domain"
	"github.com/matchpoint/dating-api/internal/core/ports"
)

// newTestContext builds an echo context with the request validator wired,
// mirroring how the router configures the real server.
func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type stubAuthService struct {
	registered   []ports.RegisterInput
	registerErr  error
	registerUser *domain.User

	authErr   error
	authToken string
	authUser  *domain.User
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
	s.registered = append(s.registered, input)
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return s.registerUser, nil
}

func (s *stubAuthService) Authenticate(_ context.Context, username, password string) (string, *domain.User, error) {
	if s.authErr != nil {
		return "", nil, s.authErr
	}
	return s.authToken, s.authUser, nil
}

type stubUserService struct {
	summaries []ports.UserSummary
	user      *domain.User
	profile   *domain.Profile
	view      *ports.ProfileView
	err       error

	savedProfiles []ports.ProfileInput
	updates       []ports.UpdateUserInput
}

func (s *stubUserService) ListUsers(_ context.Context) ([]ports.UserSummary, error) {
	return s.summaries, s.err
}

func (s *stubUserService) GetUser(_ context.Context, id string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubUserService) SaveProfile(_ context.Context, id string, input ports.ProfileInput) (*domain.Profile, error) {
	s.savedProfiles = append(s.savedProfiles, input)
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

func (s *stubUserService) GetProfile(_ context.Context, id string) (*ports.ProfileView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

func (s *stubUserService) UpdateUser(_ context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	s.updates = append(s.updates, input)
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

type stubMatchService struct {
	candidates []ports.MatchCandidate
	err        error
}

func (s *stubMatchService) FindMatches(_ context.Context, userID string) ([]ports.MatchCandidate, error) {
	return s.candidates, s.err
}

type stubRatingService struct {
	inputs []ports.RatingInput
	err    error
}

func (s *stubRatingService) Submit(_ context.Context, input ports.RatingInput) error {
	s.inputs = append(s.inputs, input)
	return s.err
}

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != want {
		t.Fatalf("status = %d, want %d (%v)", he.Code, want, he.Message)
	}
}

// setIdentity simulates the claims the auth middleware injects.
func setIdentity(c echo.Context, userID, role string) {
	c.Set("user_id", userID)
	c.Set("role", role)
}
