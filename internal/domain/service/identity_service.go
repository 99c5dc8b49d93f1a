// Package service defines contracts for external collaborators the
// application delegates to (identity provider, media host, event bus).
package service

import (
	"context"
	"errors"

	"lumera/internal/domain/entity"
)

// Sentinel errors surfaced by identity providers. The usecase layer maps them
// to fixed user-facing messages; provider detail is never forwarded.
var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrBadCredentials     = errors.New("invalid email or password")
	ErrTokenInvalid       = errors.New("invalid or expired token")
)

// AuthSession is the provider-issued session material returned on successful
// sign-in or sign-up. Tokens are opaque to this service.
type AuthSession struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// IdentityService delegates credential handling to the external auth
// collaborator. The application never stores credentials or validates tokens
// itself.
type IdentityService interface {
	// SignUp registers email/password and returns a fresh session.
	SignUp(ctx context.Context, email, password string) (*AuthSession, error)

	// SignIn authenticates email/password and returns a fresh session.
	SignIn(ctx context.Context, email, password string) (*AuthSession, error)

	// SignOut revokes the user's refresh tokens.
	SignOut(ctx context.Context, uid string) error

	// VerifyToken validates a bearer ID token and returns the caller identity.
	VerifyToken(ctx context.Context, idToken string) (*entity.Identity, error)
}
