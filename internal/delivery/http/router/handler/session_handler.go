package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "lumera/internal/delivery/context"
	"lumera/internal/delivery/http/response"
	domainerrors "lumera/internal/domain/errors"
	"lumera/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// credentialsRequest is the sign-up/sign-in payload. The identity provider
// enforces its own password policy; the six-character floor here just stops
// obviously hopeless requests before the round trip.
type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SessionHandler holds dependencies for authentication handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{uc: uc, logger: logger}
}

// SignUp handles the account registration request.
func (h *SessionHandler) SignUp(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-up input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.SignUp(c.Request().Context(), usecase.CredentialsInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Account created")
}

// Login handles the sign-in request.
func (h *SessionHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.SignIn(c.Request().Context(), usecase.CredentialsInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Logout revokes the caller's refresh tokens.
func (h *SessionHandler) Logout(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrLoginRequired
	}

	if err := h.uc.SignOut(c.Request().Context(), identity.UID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Signed out"}, "Logout successful")
}
