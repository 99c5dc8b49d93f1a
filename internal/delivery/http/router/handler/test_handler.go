package handler

import (
	"net/http"

	deliverycontext "lumera/internal/delivery/context"
	"lumera/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestAuthMiddleware tests the authentication middleware
// This endpoint requires a valid ID token in the Authorization header
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)

	return response.Success(c, http.StatusOK, map[string]any{
		"message":  "Authentication middleware test successful",
		"identity": identity,
		"status":   "authenticated",
	}, "Authentication middleware test successful")
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	}, "Public endpoint test successful")
}
