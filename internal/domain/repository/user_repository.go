package repository

import (
	"context"
	"errors"

	"lumera/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user record is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user record persistence.
// User records live at users/{uid} and are created lazily on first sign-in.
type UserRepository interface {
	// FindByID retrieves the record at users/{uid}.
	FindByID(ctx context.Context, uid string) (*entity.User, error)

	// Create writes the record at users/{uid}.
	Create(ctx context.Context, user *entity.User) error

	// List retrieves all user records ordered by creation time, newest first.
	List(ctx context.Context) ([]*entity.User, error)
}
