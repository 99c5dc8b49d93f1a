package context

import (
	"lumera/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetIdentity stores the authenticated caller in echo.Context.
// Called by the auth middleware after token verification.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity extracts the authenticated caller from echo.Context.
// Returns nil when the request did not pass the auth middleware.
func GetIdentity(c echo.Context) *entity.Identity {
	if identity, ok := c.Get(string(KeyIdentity)).(*entity.Identity); ok {
		return identity
	}

	return nil
}
