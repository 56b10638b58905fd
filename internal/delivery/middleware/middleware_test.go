package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookshop/config"
	deliverycontext "bookshop/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	logger, _ := newBufferLogger()
	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)

	var seenCtxID, seenEchoID string
	e.GET("/", func(c echo.Context) error {
		seenEchoID = deliverycontext.GetRequestID(c)
		seenCtxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.NotEmpty(t, headerID)
	assert.Equal(t, headerID, seenEchoID)
	assert.Equal(t, headerID, seenCtxID)
}

func TestRequestIDMiddleware_ClientID(t *testing.T) {
	tests := []struct {
		name     string
		clientID string
		reused   bool
	}{
		{name: "well formed", clientID: "abc-123", reused: true},
		{name: "control characters", clientID: "abc\x01def", reused: false},
		{name: "too long", clientID: strings.Repeat("a", maxRequestIDLength+1), reused: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := newBufferLogger()
			e := echo.New()
			e.Use(NewRequestIDMiddleware(logger).Process)
			e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, tt.clientID)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			if tt.reused {
				assert.Equal(t, tt.clientID, got)
			} else {
				assert.NotEqual(t, tt.clientID, got)
				assert.NotEmpty(t, got)
			}
		})
	}
}

func newLoggedEcho(t *testing.T, debug bool) (*echo.Echo, *bytes.Buffer) {
	t.Helper()

	logger, buf := newBufferLogger()
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/fail", func(c echo.Context) error { return errors.New("boom") })
	e.GET("/missing", func(c echo.Context) error { return echo.ErrNotFound })

	return e, buf
}

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestLoggerMiddleware_SuccessOnlyInDebug(t *testing.T) {
	e, buf := newLoggedEcho(t, false)
	serve(e, "/ok")
	assert.Empty(t, buf.String())

	e, buf = newLoggedEcho(t, true)
	serve(e, "/ok")
	assert.Contains(t, buf.String(), "HTTP Request")
	assert.Contains(t, buf.String(), "status=200")
	assert.Contains(t, buf.String(), "request_id=")
}

func TestLoggerMiddleware_SkipsHealth(t *testing.T) {
	e, buf := newLoggedEcho(t, true)
	serve(e, "/health")
	assert.Empty(t, buf.String())
}

func TestLoggerMiddleware_FailuresAlwaysLogged(t *testing.T) {
	e, buf := newLoggedEcho(t, false)

	rec := serve(e, "/fail")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "status=500")
	assert.Contains(t, buf.String(), "boom")

	buf.Reset()
	rec = serve(e, "/missing")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestLevelForStatus(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, levelForStatus(http.StatusCreated))
	assert.Equal(t, slog.LevelWarn, levelForStatus(http.StatusConflict))
	assert.Equal(t, slog.LevelError, levelForStatus(http.StatusServiceUnavailable))
}
