package middleware

import (
	"log/slog"
	"math"
	"strconv"

	"booking/config"
	deliverycontext "booking/internal/delivery/context"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
)

const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRateLimitReset     = "X-RateLimit-Reset"
)

// RateLimitMiddleware bounds the number of API requests per client IP.
type RateLimitMiddleware struct {
	limiter *ratelimit.Limiter
	enabled bool
	logger  *slog.Logger
}

// NewRateLimitMiddleware creates the middleware from the rateLimit config section.
func NewRateLimitMiddleware(limiter *ratelimit.Limiter, cfg *config.Config, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		enabled: cfg.RateLimit != nil && cfg.RateLimit.Enabled,
		logger:  logger,
	}
}

// Handle counts the request against the client's window. When the counter store is
// unreachable the request is let through and the failure logged.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		ctx := c.Request().Context()

		decision, err := m.limiter.Allow(ctx, c.RealIP())
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("rate limit skipped", slog.Any("error", err))

			return next(c)
		}

		resetSeconds := strconv.Itoa(int(math.Ceil(decision.ResetIn.Seconds())))

		header := c.Response().Header()
		header.Set(headerRateLimitLimit, strconv.FormatInt(decision.Limit, 10))
		header.Set(headerRateLimitRemaining, strconv.FormatInt(decision.Remaining, 10))
		header.Set(headerRateLimitReset, resetSeconds)

		if !decision.Allowed {
			header.Set(echo.HeaderRetryAfter, resetSeconds)

			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}
