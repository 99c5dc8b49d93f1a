package media

import (
	"context"
	"log/slog"

	"lumera/config"
	"lumera/internal/domain/constants"
	"lumera/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// disabledUploader rejects uploads when no media host is configured. The
// service still boots; only the admin upload surfaces fail.
type disabledUploader struct {
	logger *slog.Logger
}

func (u *disabledUploader) Upload(ctx context.Context, file service.UploadFile) (string, error) {
	u.logger.Warn("[Media] Upload attempted without a configured provider",
		slog.String("file", file.Name),
	)

	return "", errors.New("media uploads are not configured")
}

// UploaderParams holds dependencies for MediaUploader, injected by Fx
type UploaderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewUploader creates a MediaUploader based on configuration
func NewUploader(params UploaderParams) (service.MediaUploader, error) {
	cfg := params.Config.Media
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Media host not configured, uploads disabled")

		return &disabledUploader{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.MediaProviderCloudinary:
		if cfg.CloudName == "" || cfg.UploadPreset == "" {
			return nil, errors.New("cloud name and upload preset are required for cloudinary provider")
		}
		logger.Info("Using Cloudinary media uploader",
			slog.String("cloud_name", cfg.CloudName),
		)

		return NewCloudinaryUploader(cfg.CloudName, cfg.UploadPreset, logger), nil

	case constants.MediaProviderBucket:
		if cfg.BucketURL == "" {
			return nil, errors.New("bucket URL is required for bucket provider")
		}
		logger.Info("Using blob bucket media uploader",
			slog.String("bucket_url", cfg.BucketURL),
		)

		uploader, closeBucket, err := NewBucketUploader(params.Ctx, cfg.BucketURL, cfg.PublicBaseURL, logger)
		if err != nil {
			return nil, err
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing media bucket")

				return closeBucket()
			},
		})

		return uploader, nil

	default:
		return nil, errors.Errorf("unknown media provider: %s", cfg.Provider)
	}
}
