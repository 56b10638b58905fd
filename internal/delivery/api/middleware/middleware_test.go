package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookshop/config"
	"bookshop/internal/delivery/api/response"
	deliverycontext "bookshop/internal/delivery/context"
	domainerrors "bookshop/internal/domain/errors"
	"bookshop/internal/infra/ratelimit"
	mockUC "bookshop/internal/mocks/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError

	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body
}

func do(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails bool
	}{
		{
			name:        "validation error keeps details",
			err:         errors.Wrap(domainerrors.NewValidationError(map[string]string{"title": "is required"}), "create book"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: true,
		},
		{
			name:       "conflict",
			err:        domainerrors.ErrUserAlreadyExists.WrapMessage("register"),
			wantStatus: http.StatusConflict,
			wantCode:   "USER_ALREADY_EXISTS",
		},
		{
			name:       "service unavailable keeps its code",
			err:        domainerrors.ErrServiceUnavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "SERVICE_UNAVAILABLE",
		},
		{
			name:       "internal app error is opaque",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "users"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
		{
			name:       "echo not found",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "body too large",
			err:        echo.ErrStatusRequestEntityTooLarge,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "PAYLOAD_TOO_LARGE",
		},
		{
			name:       "unknown error",
			err:        errors.New("pq: relation does not exist"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			e.GET("/", func(c echo.Context) error { return tt.err })

			rec := do(e, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			if tt.wantDetails {
				assert.NotNil(t, body.Error.Details)
			} else {
				assert.Nil(t, body.Error.Details)
			}
			if tt.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, rec.Body.String(), "connection reset")
				assert.NotContains(t, rec.Body.String(), "relation")
			}
		})
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(authUC *mockUC.MockAuthUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "valid token",
			header: "Bearer good-token",
			setup: func(authUC *mockUC.MockAuthUsecase) {
				authUC.EXPECT().Authenticate(mock.Anything, "good-token").Return(int64(7), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:   "rejected token",
			header: "bearer stale-token",
			setup: func(authUC *mockUC.MockAuthUsecase) {
				authUC.EXPECT().Authenticate(mock.Anything, "stale-token").
					Return(int64(0), domainerrors.ErrInvalidToken.WrapMessage("authenticate")).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authUC := mockUC.NewMockAuthUsecase(t)
			if tt.setup != nil {
				tt.setup(authUC)
			}

			e := newTestEcho()
			auth := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC})
			e.GET("/", func(c echo.Context) error {
				userID, ok := deliverycontext.GetUserID(c)
				require.True(t, ok)

				return c.JSON(http.StatusOK, map[string]int64{"userId": userID})
			}, auth.Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := do(e, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Error.Code)
			} else {
				assert.JSONEq(t, `{"userId":7}`, rec.Body.String())
			}
		})
	}
}

func newTestLimiter(t *testing.T, limit int) (*ratelimit.FixedWindowLimiter, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{RateLimit: &config.RateLimitConfig{Enabled: true, Limit: limit, Window: time.Minute}}
	cfg.Redis.KeyPrefix = "test"
	limiter, err := ratelimit.NewFixedWindowLimiter(client, cfg)
	require.NoError(t, err)

	return limiter, server
}

func newRateLimitedEcho(limiter *ratelimit.FixedWindowLimiter) *echo.Echo {
	e := newTestEcho()
	m := NewRateLimitMiddleware(RateLimitMiddlewareParams{
		Limiter: limiter,
		Logger:  slog.New(slog.DiscardHandler),
	})
	e.POST("/login", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, m.Limit("auth"))

	return e
}

func loginFrom(ip string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = ip + ":5000"

	return req
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter, _ := newTestLimiter(t, 2)
	e := newRateLimitedEcho(limiter)

	assert.Equal(t, http.StatusNoContent, do(e, loginFrom("10.0.0.1")).Code)
	assert.Equal(t, http.StatusNoContent, do(e, loginFrom("10.0.0.1")).Code)

	rec := do(e, loginFrom("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decodeError(t, rec).Error.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))

	// a different client has its own window
	assert.Equal(t, http.StatusNoContent, do(e, loginFrom("10.0.0.2")).Code)
}

func TestRateLimitMiddleware_FailsClosed(t *testing.T) {
	limiter, server := newTestLimiter(t, 5)
	e := newRateLimitedEcho(limiter)
	server.Close()

	rec := do(e, loginFrom("10.0.0.1"))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, rec).Error.Code)
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	e := newRateLimitedEcho(nil)

	for range 5 {
		assert.Equal(t, http.StatusNoContent, do(e, loginFrom("10.0.0.1")).Code)
	}
}
