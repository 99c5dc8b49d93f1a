package firestore

import (
	"context"

	"lumera/internal/domain/entity"
	"lumera/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type contentRepository struct {
	client *firestore.Client
}

// NewContentRepository creates a Firestore-backed ContentRepository.
func NewContentRepository(client *firestore.Client) repository.ContentRepository {
	return &contentRepository{client: client}
}

// GetHome reads the singleton content/home document.
func (r *contentRepository) GetHome(ctx context.Context) (*entity.HomeContent, error) {
	doc, err := r.client.Collection(contentCollection).Doc(homeContentDoc).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrContentNotFound
		}

		return nil, errors.Wrap(err, "failed to get home content")
	}

	content := new(entity.HomeContent)
	if err := doc.DataTo(content); err != nil {
		return nil, errors.Wrap(err, "failed to decode home content")
	}

	return content, nil
}

// SaveHome merge-writes content/home, creating it on first save. Only fields
// present in the input are written; MergeAll requires map data, so the struct
// is flattened to its non-empty fields first.
func (r *contentRepository) SaveHome(ctx context.Context, content *entity.HomeContent) error {
	fields := contentFields(content)
	if len(fields) == 0 {
		return nil
	}

	_, err := r.client.Collection(contentCollection).Doc(homeContentDoc).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return errors.Wrap(err, "failed to save home content")
	}

	return nil
}

func contentFields(content *entity.HomeContent) map[string]any {
	fields := make(map[string]any)
	put := func(key, value string) {
		if value != "" {
			fields[key] = value
		}
	}

	put("preloader_text", content.PreloaderText)
	put("tag_text", content.TagText)
	put("headline_line1", content.HeadlineLine1)
	put("headline_highlight", content.HeadlineHighlight)
	put("subline", content.Subline)
	put("cta_primary", content.CTAPrimary)
	put("cta_secondary", content.CTASecondary)
	put("hero_video_url", content.HeroVideoURL)

	return fields
}
