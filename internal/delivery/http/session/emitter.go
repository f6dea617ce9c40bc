// Package session hands session tokens to clients through a cookie and the response envelope.
package session

import (
	"net/http"
	"strings"
	"time"

	"booking/config"
	"booking/internal/delivery/http/response"
	"booking/internal/domain/entity"
	"booking/internal/domain/service"
	"booking/internal/errors"

	"github.com/labstack/echo/v4"
)

const (
	// LoggedOutValue overwrites the session cookie on logout and is never a valid token.
	LoggedOutValue = "loggedout"

	loggedOutTTL = 10 * time.Second
)

// Emitter issues session tokens for accounts and writes them to the client.
type Emitter struct {
	tokens     service.TokenService
	cookieName string
	cookieTTL  time.Duration
	now        func() time.Time
}

// NewEmitter builds an Emitter from the session config section.
func NewEmitter(tokens service.TokenService, cfg *config.Config) *Emitter {
	return newEmitter(tokens, cfg.Session.CookieName, cfg.Session.CookieTTL, time.Now)
}

func newEmitter(tokens service.TokenService, cookieName string, cookieTTL time.Duration, now func() time.Time) *Emitter {
	return &Emitter{
		tokens:     tokens,
		cookieName: cookieName,
		cookieTTL:  cookieTTL,
		now:        now,
	}
}

// Emit issues a token for account, sets it as an HttpOnly cookie and answers with
// {status, token, data:{user}}. The account is sanitized before it is rendered.
func (e *Emitter) Emit(c echo.Context, statusCode int, account *entity.Account) error {
	token, err := e.tokens.Issue(account.ID)
	if err != nil {
		return errors.Wrap(err, "issue session token")
	}

	c.SetCookie(&http.Cookie{
		Name:     e.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  e.now().Add(e.cookieTTL),
		HttpOnly: true,
		Secure:   IsSecure(c),
		SameSite: http.SameSiteLaxMode,
	})

	return response.WithToken(c, statusCode, token, map[string]any{"user": account.Sanitized()})
}

// Clear overwrites the session cookie with a short-lived placeholder and answers 200.
func (e *Emitter) Clear(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     e.cookieName,
		Value:    LoggedOutValue,
		Path:     "/",
		Expires:  e.now().Add(loggedOutTTL),
		HttpOnly: true,
		Secure:   IsSecure(c),
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, nil)
}

// IsSecure reports whether the client reached us over TLS, directly or through a proxy.
func IsSecure(c echo.Context) bool {
	return c.IsTLS() || strings.EqualFold(c.Request().Header.Get(echo.HeaderXForwardedProto), "https")
}
