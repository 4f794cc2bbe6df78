package middleware

import (
	"context"
	"fmt"
	"time"

	"burokrat-site/pkg/apperrors"
	"burokrat-site/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// RateLimiterConfig holds the configuration for rate limiting
type RateLimiterConfig struct {
	MaxRequests int           // Requests allowed per window and IP
	Window      time.Duration // Fixed window length
	Prefix      string        // Redis key prefix
	Client      *redis.Client // nil disables limiting
	// OnLimit answers a throttled request. Defaults to a 429 AppError.
	OnLimit echo.HandlerFunc
}

// RateLimiterMiddleware counts requests per IP in fixed Redis windows. Redis
// failures let the request through.
func RateLimiterMiddleware(cfg RateLimiterConfig) echo.MiddlewareFunc {
	if cfg.Prefix == "" {
		cfg.Prefix = "ratelimit"
	}
	if cfg.OnLimit == nil {
		cfg.OnLimit = func(c echo.Context) error {
			return apperrors.NewTooManyRequests(apperrors.ErrCodeRateLimitExceeded,
				"Too many requests from this IP, please try again later.")
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if cfg.Client == nil || cfg.MaxRequests <= 0 {
			return next
		}

		return func(c echo.Context) error {
			ip := c.RealIP()
			key := fmt.Sprintf("%s:%s", cfg.Prefix, ip)

			count, err := hit(c.Request().Context(), cfg.Client, key, cfg.Window)
			if err != nil {
				logger.FromContext(c.Request().Context()).WithComponent("rate_limiter").
					Warn("Rate limiter unavailable, allowing request", logger.Err(err), logger.RemoteIP(ip))
				return next(c)
			}

			if count > int64(cfg.MaxRequests) {
				logger.FromContext(c.Request().Context()).WithComponent("rate_limiter").
					Warn("Rate limit exceeded", logger.RemoteIP(ip), logger.Int64("count", count))
				return cfg.OnLimit(c)
			}
			return next(c)
		}
	}
}

// hit increments key and starts its window on the first request.
func hit(ctx context.Context, rdb *redis.Client, key string, window time.Duration) (int64, error) {
	count, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := rdb.Expire(ctx, key, window).Err(); err != nil {
			return 0, err
		}
	}
	return count, nil
}
