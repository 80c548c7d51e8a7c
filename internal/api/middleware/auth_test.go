package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func invokeAuth(t *testing.T, authHeader string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func TestAuth_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":      "user-1",
		"username": "johndoe",
		"role":     "admin",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	c, err := invokeAuth(t, "Bearer "+token)
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}
	if got := c.Get("user_id"); got != "user-1" {
		t.Fatalf("user_id = %v, want user-1", got)
	}
	if got := c.Get("username"); got != "johndoe" {
		t.Fatalf("username = %v, want johndoe", got)
	}
	if got := c.Get("role"); got != "admin" {
		t.Fatalf("role = %v, want admin", got)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := invokeAuth(t, "")
	assertUnauthorized(t, err)
}

func TestAuth_MalformedHeader(t *testing.T) {
	_, err := invokeAuth(t, "Token abc")
	assertUnauthorized(t, err)
}

func TestAuth_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	_, err := invokeAuth(t, "Bearer "+token)
	assertUnauthorized(t, err)
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	_, err := invokeAuth(t, "Bearer "+token)
	assertUnauthorized(t, err)
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", he.Code, http.StatusUnauthorized)
	}
}
