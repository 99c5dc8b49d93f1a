package service

import (
	"context"
	"io"
)

// UploadFile is a single incoming file to hand off to the media host.
type UploadFile struct {
	Name        string
	ContentType string
	Reader      io.Reader
}

// MediaUploader accepts a binary file and returns a public URL. Transcoding
// and storage are the host's concern.
type MediaUploader interface {
	Upload(ctx context.Context, file UploadFile) (string, error)
}
