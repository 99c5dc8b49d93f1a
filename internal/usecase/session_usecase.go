package usecase

import (
	"context"

	"lumera/internal/domain/entity"
	"lumera/internal/domain/service"
)

// CredentialsInput defines the data required to sign up or sign in.
type CredentialsInput struct {
	Email    string
	Password string
}

// SessionOutput returns the provider session plus the store-side user record.
type SessionOutput struct {
	Session *service.AuthSession `json:"session"`
	User    *entity.User         `json:"user"`
}

// SessionUsecase defines the interface for authentication-related operations.
// Credential handling is fully delegated to the identity provider; this layer
// only keeps the store-side user record in step.
type SessionUsecase interface {
	// SignUp registers a new account and creates the user record.
	SignUp(ctx context.Context, input CredentialsInput) (*SessionOutput, error)

	// SignIn authenticates an existing account, creating the user record
	// lazily if it has never been written.
	SignIn(ctx context.Context, input CredentialsInput) (*SessionOutput, error)

	// SignOut revokes the user's refresh tokens.
	SignOut(ctx context.Context, uid string) error

	// Authenticate validates a bearer ID token and returns the caller
	// identity. Used by the auth middleware.
	Authenticate(ctx context.Context, idToken string) (*entity.Identity, error)
}
