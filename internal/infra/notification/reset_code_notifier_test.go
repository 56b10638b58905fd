package notification

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"bookshop/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetCodeNotifier_LogsMaskedEmail(t *testing.T) {
	tests := []struct {
		name     string
		debug    bool
		wantCode bool
	}{
		{name: "production hides code", debug: false, wantCode: false},
		{name: "debug shows code", debug: true, wantCode: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			notifier := NewResetCodeNotifier(cfg, slog.New(slog.NewJSONHandler(&buf, nil)))

			err := notifier.SendResetCode(context.Background(), "reader@example.com", "123456", time.Now())
			require.NoError(t, err)

			out := buf.String()
			assert.Contains(t, out, "r***@example.com")
			assert.NotContains(t, out, "reader@example.com")
			assert.Equal(t, tt.wantCode, bytes.Contains(buf.Bytes(), []byte("123456")))
		})
	}
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "a***@b.io", maskEmail("alice@b.io"))
	assert.Equal(t, "***", maskEmail("no-at-sign"))
	assert.Equal(t, "***", maskEmail("@domain.com"))
}
