package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"booking/config"
	deliverycontext "booking/internal/delivery/context"
	"booking/internal/delivery/http/session"
	"booking/internal/domain/access"
	"booking/internal/domain/entity"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/errors"
	"booking/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Mode selects how the gate reacts to a missing or rejected session.
type Mode int

const (
	// ModeReject answers with the authentication error and stops the chain.
	ModeReject Mode = iota
	// ModeDegrade continues the chain as an anonymous request.
	ModeDegrade
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the session token of a request into an account.
type AuthMiddleware struct {
	sessions   usecase.SessionUsecase
	cookieName string
	logger     *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions usecase.SessionUsecase, cfg *config.Config, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:   sessions,
		cookieName: cfg.Session.CookieName,
		logger:     logger,
	}
}

// Protect rejects requests without a valid, fresh session.
func (m *AuthMiddleware) Protect(next echo.HandlerFunc) echo.HandlerFunc {
	return m.Gate(ModeReject)(next)
}

// Identify attaches the account when a valid session is presented and lets
// every request through.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return m.Gate(ModeDegrade)(next)
}

// Gate builds the session middleware for mode.
func (m *AuthMiddleware) Gate(mode Mode) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			account, err := m.sessions.Resolve(ctx, m.tokenFrom(c))
			if err != nil {
				if mode == ModeReject {
					return err
				}

				logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)
				if errors.Is(err, domainerrors.ErrUnauthenticated) {
					logger.Debug("continuing without session", slog.String("reason", err.Error()))
				} else {
					logger.Warn("session lookup failed, continuing without session", slog.Any("error", err))
				}

				return next(c)
			}

			deliverycontext.SetAccount(c, account)

			return next(c)
		}
	}
}

// tokenFrom prefers the Authorization header and falls back to the session cookie.
func (m *AuthMiddleware) tokenFrom(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}

	cookie, err := c.Cookie(m.cookieName)
	if err != nil || cookie.Value == session.LoggedOutValue {
		return ""
	}

	return cookie.Value
}

// RestrictTo only lets accounts holding one of roles through. It must run after Protect.
func (m *AuthMiddleware) RestrictTo(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(slices.Clone(roles))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, _ := deliverycontext.GetAccount(c)
			if err := access.Allow(account, allowed); err != nil {
				return err
			}

			return next(c)
		}
	}
}
