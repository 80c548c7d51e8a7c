package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/matchpoint/dating-api/internal/core/domain"
)

func TestRatingHandler_Submit_Success(t *testing.T) {
	svc := &stubRatingService{}
	h := NewRatingHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/rate",
		`{"fromUserId":"u1","toUserId":"u2","stars":4,"comment":"fun date"}`)
	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp rateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Success || resp.Message != "Rating submitted" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(svc.inputs) != 1 || svc.inputs[0].Comment != "fun date" {
		t.Fatalf("rating input not forwarded: %+v", svc.inputs)
	}
}

func TestRatingHandler_Submit_StarsBounds(t *testing.T) {
	for _, body := range []string{
		`{"fromUserId":"u1","toUserId":"u2","stars":0}`,
		`{"fromUserId":"u1","toUserId":"u2","stars":6}`,
		`{"fromUserId":"u1","toUserId":"u2","stars":-1}`,
	} {
		svc := &stubRatingService{}
		h := NewRatingHandler(svc)
		c, _ := newTestContext(t, http.MethodPost, "/api/rate", body)
		assertHTTPStatus(t, h.Submit(c), http.StatusBadRequest)
		if len(svc.inputs) != 0 {
			t.Fatalf("out-of-range stars must not reach the service")
		}
	}
}

func TestRatingHandler_Submit_MissingFields(t *testing.T) {
	for _, body := range []string{
		`{"toUserId":"u2","stars":3}`,
		`{"fromUserId":"u1","stars":3}`,
		`{}`,
	} {
		h := NewRatingHandler(&stubRatingService{})
		c, _ := newTestContext(t, http.MethodPost, "/api/rate", body)
		assertHTTPStatus(t, h.Submit(c), http.StatusBadRequest)
	}
}

func TestRatingHandler_Submit_DuplicatePropagates(t *testing.T) {
	h := NewRatingHandler(&stubRatingService{err: domain.ErrAlreadyRated})

	c, _ := newTestContext(t, http.MethodPost, "/api/rate",
		`{"fromUserId":"u1","toUserId":"u2","stars":5}`)
	if err := h.Submit(c); !errors.Is(err, domain.ErrAlreadyRated) {
		t.Fatalf("expected ErrAlreadyRated to propagate, got %v", err)
	}
}
