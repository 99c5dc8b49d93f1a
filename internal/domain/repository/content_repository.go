package repository

import (
	"context"
	"errors"

	"lumera/internal/domain/entity"
)

// ErrContentNotFound is returned when the singleton document has never been written.
var ErrContentNotFound = errors.New("home content not found")

// ContentRepository manages the singleton homepage content document.
type ContentRepository interface {
	// GetHome reads content/home. Returns ErrContentNotFound if absent.
	GetHome(ctx context.Context) (*entity.HomeContent, error)

	// SaveHome merge-writes content/home, creating it on first save.
	// Fields left empty in the input are preserved.
	SaveHome(ctx context.Context, content *entity.HomeContent) error
}
