package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "lumera/internal/delivery/context"
	"lumera/internal/domain/entity"
	domainerrors "lumera/internal/domain/errors"
	"lumera/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSessionUsecase resolves a single token to a canned identity.
type stubSessionUsecase struct {
	identity *entity.Identity
	token    string
}

func (s *stubSessionUsecase) SignUp(_ context.Context, _ usecase.CredentialsInput) (*usecase.SessionOutput, error) {
	return nil, nil
}

func (s *stubSessionUsecase) SignIn(_ context.Context, _ usecase.CredentialsInput) (*usecase.SessionOutput, error) {
	return nil, nil
}

func (s *stubSessionUsecase) SignOut(_ context.Context, _ string) error {
	return nil
}

func (s *stubSessionUsecase) Authenticate(_ context.Context, idToken string) (*entity.Identity, error) {
	if s.identity != nil && idToken == s.token {
		return s.identity, nil
	}

	return nil, domainerrors.ErrLoginRequired
}

func TestAuthMiddleware_RejectsWithSignInPrompt(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
	}{
		{name: "no header"},
		{name: "not a bearer scheme", authHeader: "Basic dXNlcjpwYXNz"},
		{name: "empty bearer token", authHeader: "Bearer "},
		{name: "unverifiable token", authHeader: "Bearer not-a-real-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(&stubSessionUsecase{})
			errMW := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

			e := echo.New()
			e.HTTPErrorHandler = errMW.HandleHTTPError

			nextCalled := false
			e.PUT("/user/wishlist/:productID", m.Authenticate(func(c echo.Context) error {
				nextCalled = true

				return c.NoContent(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodPut, "/user/wishlist/p1", nil)
			if tt.authHeader != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authHeader)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.False(t, nextCalled)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"LOGIN_REQUIRED"`)
			assert.Contains(t, rec.Body.String(), `"details":"/login"`)
		})
	}
}

func TestAuthMiddleware_AttachesIdentity(t *testing.T) {
	m := NewAuthMiddleware(&stubSessionUsecase{
		identity: &entity.Identity{UID: "uid-1", Email: "zoe@example.com"},
		token:    "valid-token",
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/user/account", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer valid-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *entity.Identity
	err := m.Authenticate(func(c echo.Context) error {
		seen = deliverycontext.GetIdentity(c)

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, "uid-1", seen.UID)
}
