package storage

import (
	"context"
	"strings"
	"time"

	"bookshop/config"
	"bookshop/internal/domain/service"
	"bookshop/internal/errors"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const thumbnailKeyPrefix = "thumbnails/"

// MinioStore keeps thumbnails in an S3-compatible bucket.
type MinioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
	now       func() time.Time
}

// NewMinioStore creates the client. The bucket is checked by EnsureBucket.
func NewMinioStore(cfg config.MinioStorageConfig) (*MinioStore, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, errors.New("minio endpoint and bucket are required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "init minio client")
	}

	return &MinioStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		now:       time.Now,
	}, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (m *MinioStore) EnsureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return errors.Wrap(err, "check bucket")
	}
	if exists {
		return nil
	}

	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return errors.Wrap(err, "create bucket")
	}

	return nil
}

func (m *MinioStore) Store(ctx context.Context, upload *service.ThumbnailUpload) (string, error) {
	key := thumbnailKeyPrefix + objectName(upload.Filename, m.now())

	size := upload.Size
	if size <= 0 {
		size = -1
	}

	_, err := m.client.PutObject(ctx, m.bucket, key, upload.Content, size, minio.PutObjectOptions{
		ContentType: upload.ContentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "put object")
	}

	return m.pathForKey(key), nil
}

func (m *MinioStore) Delete(ctx context.Context, path string) error {
	key := m.keyForPath(path)
	if key == "" {
		return nil
	}

	// RemoveObject succeeds for keys that do not exist.
	if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrap(err, "delete object")
	}

	return nil
}

func (m *MinioStore) pathForKey(key string) string {
	if m.publicURL == "" {
		return key
	}

	return m.publicURL + "/" + key
}

func (m *MinioStore) keyForPath(path string) string {
	if m.publicURL != "" {
		path = strings.TrimPrefix(path, m.publicURL+"/")
	}
	if !strings.HasPrefix(path, thumbnailKeyPrefix) {
		return ""
	}

	return path
}
