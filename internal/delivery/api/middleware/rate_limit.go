package middleware

import (
	"context"
	"log/slog"
	"strconv"

	"bookshop/internal/delivery/api/response"
	deliverycontext "bookshop/internal/delivery/context"
	domainerrors "bookshop/internal/domain/errors"
	"bookshop/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Limiter decides whether a client key is still within its quota.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimitMiddlewareParams holds dependencies for RateLimitMiddleware, injected by Fx.
type RateLimitMiddlewareParams struct {
	fx.In

	// Limiter is nil when rate limiting is disabled.
	Limiter *ratelimit.FixedWindowLimiter `optional:"true"`
	Logger  *slog.Logger
}

// RateLimitMiddleware throttles requests per client IP.
type RateLimitMiddleware struct {
	limiter Limiter
	limit   int
	logger  *slog.Logger
}

func NewRateLimitMiddleware(params RateLimitMiddlewareParams) *RateLimitMiddleware {
	m := &RateLimitMiddleware{logger: params.Logger}
	if params.Limiter != nil {
		m.limiter = params.Limiter
		m.limit = params.Limiter.Limit()
	}

	return m
}

// Limit returns middleware that counts requests under scope. Redis failures
// reject the request with 503.
func (m *RateLimitMiddleware) Limit(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if m.limiter == nil {
			return next
		}

		return func(c echo.Context) error {
			ctx := c.Request().Context()

			allowed, err := m.limiter.Allow(ctx, scope+":"+c.RealIP())
			if err != nil {
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Error("Rate limiter unavailable",
					slog.String("scope", scope),
					slog.Any("error", err),
				)

				return response.AppError(c, domainerrors.ErrServiceUnavailable)
			}
			if !allowed {
				if m.limit > 0 {
					c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(m.limit))
				}

				return response.AppError(c, domainerrors.ErrTooManyRequests)
			}

			return next(c)
		}
	}
}
