package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/matchpoint/dating-api/internal/core/domain"
	"github.com/matchpoint/dating-api/internal/core/ports"
)

const validProfileBody = `{
	"bio": "Love hiking and coffee",
	"age": 28,
	"gender": "female",
	"lookingFor": "male",
	"interests": ["hiking", "coffee"],
	"location": "Berlin",
	"skills": ["cooking"]
}`

func TestProfileHandler_Save_Success(t *testing.T) {
	users := &stubUserService{profile: &domain.Profile{
		Bio: "Love hiking and coffee", Age: 28, Gender: "female",
		LookingFor: "male", Interests: []string{"hiking", "coffee"},
		Location: "Berlin", Skills: []string{"cooking"},
	}}
	h := NewProfileHandler(users)

	c, rec := newTestContext(t, http.MethodPost, "/api/users/u1/profile", validProfileBody)
	c.SetParamNames("id")
	c.SetParamValues("u1")
	if err := h.Save(c); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp profileSaveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Message != "Profile saved successfully" {
		t.Fatalf("message = %q", resp.Message)
	}
	if len(users.savedProfiles) != 1 || users.savedProfiles[0].Location != "Berlin" {
		t.Fatalf("profile input not forwarded: %+v", users.savedProfiles)
	}
}

// A save replaces the whole profile, so partial bodies are rejected instead
// of silently erasing the omitted fields.
func TestProfileHandler_Save_PartialBodyRejected(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing skills", `{"bio":"b","age":28,"gender":"f","lookingFor":"m","interests":["x"],"location":"Berlin"}`},
		{"empty interests", `{"bio":"b","age":28,"gender":"f","lookingFor":"m","interests":[],"location":"Berlin","skills":["x"]}`},
		{"underage", `{"bio":"b","age":17,"gender":"f","lookingFor":"m","interests":["x"],"location":"Berlin","skills":["x"]}`},
		{"empty body", `{}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := &stubUserService{}
			h := NewProfileHandler(users)
			c, _ := newTestContext(t, http.MethodPost, "/api/users/u1/profile", tc.body)
			c.SetParamNames("id")
			c.SetParamValues("u1")
			assertHTTPStatus(t, h.Save(c), http.StatusBadRequest)
			if len(users.savedProfiles) != 0 {
				t.Fatalf("invalid profile must not reach the service")
			}
		})
	}
}

func TestProfileHandler_Get_Success(t *testing.T) {
	users := &stubUserService{view: &ports.ProfileView{
		Profile: domain.Profile{
			Bio: "b", Age: 28, Gender: "female", LookingFor: "male",
			Interests: []string{"hiking"}, Location: "Berlin", Skills: []string{"go"},
		},
		AverageRating: "4.5",
		TotalRatings:  2,
	}}
	h := NewProfileHandler(users)

	c, rec := newTestContext(t, http.MethodGet, "/api/users/u1/profile", "")
	c.SetParamNames("id")
	c.SetParamValues("u1")
	if err := h.Get(c); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	var resp profileViewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.AverageRating != "4.5" || resp.TotalRatings != 2 {
		t.Fatalf("rating aggregates lost in mapping: %+v", resp)
	}
	if resp.Location != "Berlin" {
		t.Fatalf("profile fields lost in mapping: %+v", resp)
	}
}

func TestProfileHandler_Get_NotFound(t *testing.T) {
	users := &stubUserService{err: domain.ErrProfileNotFound}
	h := NewProfileHandler(users)

	c, _ := newTestContext(t, http.MethodGet, "/api/users/u1/profile", "")
	c.SetParamNames("id")
	c.SetParamValues("u1")
	if err := h.Get(c); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}
