package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type stubVerifier struct{}

func (stubVerifier) VerifyToken(_ context.Context, token string) (string, error) {
	if token == "good-token" {
		return "uid-123", nil
	}
	return "", errors.New("invalid token")
}

func runMiddleware(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, c, handler(c)
}

func TestAuthenticateValidToken(t *testing.T) {
	mw := NewAuthMiddleware(stubVerifier{})

	rec, c, err := runMiddleware(t, mw.Authenticate, "Bearer good-token")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "uid-123", c.Get("uid"))
}

func TestAuthenticateRejections(t *testing.T) {
	mw := NewAuthMiddleware(stubVerifier{})

	for name, header := range map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc123",
		"bad token":      "Bearer bad-token",
	} {
		_, _, err := runMiddleware(t, mw.Authenticate, header)
		assert.Error(t, err, name)
		httpErr, ok := err.(*echo.HTTPError)
		if assert.True(t, ok, name) {
			assert.Equal(t, http.StatusUnauthorized, httpErr.Code, name)
		}
	}
}

func TestOptionalAuthenticateValidToken(t *testing.T) {
	mw := NewAuthMiddleware(stubVerifier{})

	rec, c, err := runMiddleware(t, mw.OptionalAuthenticate, "Bearer good-token")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "uid-123", c.Get("uid"))
}

func TestOptionalAuthenticateFallsBackToAnonymous(t *testing.T) {
	mw := NewAuthMiddleware(stubVerifier{})

	// Missing, malformed, and invalid tokens all continue anonymously.
	for name, header := range map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc123",
		"bad token":      "Bearer bad-token",
	} {
		rec, c, err := runMiddleware(t, mw.OptionalAuthenticate, header)
		assert.NoError(t, err, name)
		assert.Equal(t, http.StatusOK, rec.Code, name)
		assert.Nil(t, c.Get("uid"), name)
	}
}
