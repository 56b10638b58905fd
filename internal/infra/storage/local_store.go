package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bookshop/internal/domain/service"
	"bookshop/internal/errors"
)

// LocalStore writes thumbnails to a directory that the HTTP server exposes under urlPrefix.
type LocalStore struct {
	dir       string
	urlPrefix string
	logger    *slog.Logger
	now       func() time.Time
}

// NewLocalStore creates the base directory if missing.
func NewLocalStore(dir, urlPrefix string, logger *slog.Logger) (*LocalStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("storage directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create storage dir")
	}

	return &LocalStore{
		dir:       dir,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
		logger:    logger,
		now:       time.Now,
	}, nil
}

// Dir returns the directory served as static content.
func (s *LocalStore) Dir() string {
	return s.dir
}

// URLPrefix returns the route prefix under which stored files are served.
func (s *LocalStore) URLPrefix() string {
	return s.urlPrefix
}

func (s *LocalStore) Store(ctx context.Context, upload *service.ThumbnailUpload) (string, error) {
	name := objectName(upload.Filename, s.now())
	target := filepath.Join(s.dir, name)

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", errors.Wrap(err, "create thumbnail file")
	}

	if _, err := io.Copy(out, upload.Content); err != nil {
		_ = out.Close()
		_ = os.Remove(target)

		return "", errors.Wrap(err, "write thumbnail file")
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(target)

		return "", errors.Wrap(err, "close thumbnail file")
	}

	s.logger.DebugContext(ctx, "Stored thumbnail", slog.String("file", name))

	return s.urlPrefix + "/" + name, nil
}

// Delete removes the file behind a path returned by Store. Only the base name
// is honored so a crafted path cannot escape the directory.
func (s *LocalStore) Delete(ctx context.Context, path string) error {
	name := filepath.Base(strings.TrimPrefix(path, s.urlPrefix+"/"))
	if name == "." || name == "/" || name == "" {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "remove thumbnail file")
	}

	return nil
}
