// Package storage provides ThumbnailStorage implementations for local disk and MinIO.
package storage

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

const maxOriginalNameLength = 64

// objectName builds a collision-free file name that keeps a readable trace of
// the uploaded name: <unixMillis>_<uuid>_<sanitized name>.
func objectName(original string, now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10) + "_" + uuid.NewString() + "_" + sanitizeFilename(original)
}

// sanitizeFilename strips directories and keeps only letters, digits, dot, dash and underscore.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('_')
		}
	}

	cleaned := strings.Trim(b.String(), ".")
	if cleaned == "" {
		return "thumbnail"
	}
	if len(cleaned) > maxOriginalNameLength {
		cleaned = cleaned[len(cleaned)-maxOriginalNameLength:]
	}

	return cleaned
}
