package service

import (
	"context"
	"io"
)

// ThumbnailUpload is an image received from a client.
type ThumbnailUpload struct {
	Filename    string
	Size        int64
	ContentType string // Sniffed media type, filled in before storage.
	Content     io.Reader
}

// ThumbnailStorage stores book cover images and returns the path clients use to fetch them.
type ThumbnailStorage interface {
	// Store writes the upload and returns its public path.
	Store(ctx context.Context, upload *ThumbnailUpload) (string, error)

	// Delete removes a previously stored path. A missing file is not an error.
	Delete(ctx context.Context, path string) error
}
