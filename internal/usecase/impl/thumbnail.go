package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	domainerrors "bookshop/internal/domain/errors"
	"bookshop/internal/domain/service"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

// sniffLen matches the amount of input mimetype inspects by default.
const sniffLen = 3072

var allowedThumbnailTypes = []string{"image/png", "image/jpeg"}

// sniffThumbnail detects the media type from the upload's leading bytes and
// rewinds the content so storage still receives the whole file.
func sniffThumbnail(upload *service.ThumbnailUpload) error {
	header := make([]byte, sniffLen)
	n, err := io.ReadFull(upload.Content, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "failed to read thumbnail")
	}
	header = header[:n]

	detected := mimetype.Detect(header)
	allowed := false
	for _, t := range allowedThumbnailTypes {
		if detected.Is(t) {
			allowed = true

			break
		}
	}
	if !allowed {
		return domainerrors.ErrInvalidThumbnailType.WithDetails(map[string]string{
			"thumbnail": "detected type " + detected.String(),
		})
	}

	upload.ContentType = detected.String()
	upload.Content = io.MultiReader(bytes.NewReader(header), upload.Content)

	return nil
}

// removeThumbnail deletes a stored file. Failures are logged and swallowed.
func removeThumbnail(ctx context.Context, storage service.ThumbnailStorage, logger *slog.Logger, path string) {
	if err := storage.Delete(ctx, path); err != nil {
		logger.Warn("Failed to delete thumbnail", slog.String("path", path), slog.Any("error", err))
	}
}
