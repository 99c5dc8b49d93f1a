package middleware

import (
	"strings"

	deliverycontext "lumera/internal/delivery/context"
	domainerrors "lumera/internal/domain/errors"
	"lumera/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware verifies the bearer ID token issued by the identity
// provider and attaches the caller identity to the request.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: sessionUC}
}

// Authenticate is the core middleware function that validates the ID token.
// Every failure mode answers with the same sign-in prompt; the response
// never reveals why the token was rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrLoginRequired
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			return domainerrors.ErrLoginRequired
		}

		identity, err := m.sessionUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		// Set the caller identity on the context for handlers to use
		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}
