package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bookshop/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalStore(t *testing.T) *LocalStore {
	t.Helper()

	store, err := NewLocalStore(filepath.Join(t.TempDir(), "uploads"), "uploads", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return store
}

func TestLocalStore_StoreAndDelete(t *testing.T) {
	store := newTestLocalStore(t)
	store.now = func() time.Time { return time.UnixMilli(1700000000000) }
	ctx := context.Background()

	path, err := store.Store(ctx, &service.ThumbnailUpload{
		Filename:    "cover.png",
		ContentType: "image/png",
		Content:     bytes.NewReader([]byte("png-bytes")),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "/uploads/1700000000000_"))
	assert.True(t, strings.HasSuffix(path, "_cover.png"))

	onDisk := filepath.Join(store.Dir(), filepath.Base(path))
	content, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))

	require.NoError(t, store.Delete(ctx, path))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))

	// missing files are ignored
	require.NoError(t, store.Delete(ctx, path))
}

func TestLocalStore_DeleteStaysInsideDir(t *testing.T) {
	store := newTestLocalStore(t)

	outside := filepath.Join(filepath.Dir(store.Dir()), "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o600))

	require.NoError(t, store.Delete(context.Background(), "/uploads/../keep.txt"))

	_, err := os.Stat(outside)
	assert.NoError(t, err)
}

func TestLocalStore_RequiresDir(t *testing.T) {
	_, err := NewLocalStore(" ", "/uploads", slog.Default())
	assert.Error(t, err)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "cover.png", want: "cover.png"},
		{in: "../../etc/passwd", want: "passwd"},
		{in: `C:\photos\my cover.jpg`, want: "my_cover.jpg"},
		{in: "обложка.jpg", want: "jpg"},
		{in: "", want: "thumbnail"},
		{in: "...", want: "thumbnail"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeFilename(tt.in))
		})
	}
}

func TestMinioStore_KeyForPath(t *testing.T) {
	store := &MinioStore{publicURL: "http://cdn.local/bucket"}

	assert.Equal(t, "thumbnails/a.png", store.keyForPath("http://cdn.local/bucket/thumbnails/a.png"))
	assert.Equal(t, "", store.keyForPath("http://elsewhere/a.png"))
	assert.Equal(t, "http://cdn.local/bucket/thumbnails/a.png", store.pathForKey("thumbnails/a.png"))

	bare := &MinioStore{}
	assert.Equal(t, "thumbnails/a.png", bare.pathForKey("thumbnails/a.png"))
	assert.Equal(t, "thumbnails/a.png", bare.keyForPath("thumbnails/a.png"))
}
