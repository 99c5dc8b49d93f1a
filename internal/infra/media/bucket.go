package media

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"lumera/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gocloud.dev/blob"

	// Bucket drivers resolved from the configured URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// bucketUploader writes files into a gocloud blob bucket and returns a public
// URL built from the configured base.
type bucketUploader struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// NewBucketUploader opens the bucket at bucketURL. The caller owns closing it
// through the returned closer.
func NewBucketUploader(ctx context.Context, bucketURL, publicBaseURL string, logger *slog.Logger) (service.MediaUploader, func() error, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	uploader := &bucketUploader{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		logger:        logger,
	}

	return uploader, bucket.Close, nil
}

// Upload writes the file under a collision-free key and returns its public URL.
func (u *bucketUploader) Upload(ctx context.Context, file service.UploadFile) (string, error) {
	key := objectKey(file.Name)

	writer, err := u.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: file.ContentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := writer.ReadFrom(file.Reader); err != nil {
		writer.Close()

		return "", errors.Wrapf(err, "failed to write %s", key)
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to finalize %s", key)
	}

	u.logger.Debug("Stored media object", slog.String("key", key))

	return fmt.Sprintf("%s/%s", u.publicBaseURL, key), nil
}

// objectKey prefixes the sanitized filename with a date folder and a random
// component so repeated uploads of the same file never collide.
func objectKey(filename string) string {
	base := path.Base(filename)
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, base)

	return fmt.Sprintf("%s/%s-%s", time.Now().UTC().Format("2006/01/02"), uuid.NewString(), base)
}
