// Package media implements the image upload collaborator. A file goes in, a
// public URL comes out; storage and transcoding belong to the host.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"lumera/internal/domain/service"

	"github.com/pkg/errors"
)

const cloudinaryUploadURLFormat = "https://api.cloudinary.com/v1_1/%s/image/upload"

// cloudinaryUploader posts files to Cloudinary's unsigned-preset endpoint.
type cloudinaryUploader struct {
	uploadURL    string
	uploadPreset string
	httpClient   *http.Client
	logger       *slog.Logger
}

// NewCloudinaryUploader creates an uploader for the given cloud name and
// unsigned upload preset.
func NewCloudinaryUploader(cloudName, uploadPreset string, logger *slog.Logger) service.MediaUploader {
	return &cloudinaryUploader{
		uploadURL:    fmt.Sprintf(cloudinaryUploadURLFormat, cloudName),
		uploadPreset: uploadPreset,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends the file as multipart form data and returns the hosted URL.
func (u *cloudinaryUploader) Upload(ctx context.Context, file service.UploadFile) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", file.Name)
	if err != nil {
		return "", errors.WithStack(err)
	}
	if _, err := io.Copy(part, file.Reader); err != nil {
		return "", errors.Wrap(err, "failed to buffer upload")
	}
	if err := writer.WriteField("upload_preset", u.uploadPreset); err != nil {
		return "", errors.WithStack(err)
	}
	if err := writer.Close(); err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, &body)
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "cloudinary upload request failed")
	}
	defer resp.Body.Close()

	var parsed cloudinaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errors.Wrap(err, "failed to decode cloudinary response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := ""
		if parsed.Error != nil {
			message = parsed.Error.Message
		}
		u.logger.Warn("Cloudinary upload rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("file", file.Name),
		)

		return "", errors.Errorf("cloudinary returned status %d: %s", resp.StatusCode, message)
	}

	if parsed.SecureURL != "" {
		return parsed.SecureURL, nil
	}

	return parsed.URL, nil
}
