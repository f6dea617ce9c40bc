package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booking/config"
	deliverycontext "booking/internal/delivery/context"
	"booking/internal/domain/entity"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/errors"
	mockusecase "booking/internal/mocks/usecase"
	"booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Session:   &config.SessionConfig{CookieName: "jwt", CookieTTL: time.Hour},
		RateLimit: &config.RateLimitConfig{Enabled: true, Max: 2, Window: time.Hour},
	}
}

func newAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockusecase.MockSessionUsecase) {
	t.Helper()

	sessions := mockusecase.NewMockSessionUsecase(t)

	return NewAuthMiddleware(sessions, newTestConfig(), newDiscardLogger()), sessions
}

type gateResult struct {
	err      error
	called   bool
	identity *entity.Account
}

func runGate(t *testing.T, mw echo.MiddlewareFunc, req *http.Request) gateResult {
	t.Helper()

	c := echo.New().NewContext(req, httptest.NewRecorder())

	var result gateResult
	result.err = mw(func(c echo.Context) error {
		result.called = true
		result.identity, _ = deliverycontext.GetAccount(c)

		return nil
	})(c)

	return result
}

func basicAccount() *entity.Account {
	return &entity.Account{ID: uuid.New(), Role: entity.RoleBasic, Active: true}
}

func TestGate_BearerHeaderWins(t *testing.T) {
	m, sessions := newAuthMiddleware(t)
	account := basicAccount()
	sessions.EXPECT().Resolve(mock.Anything, "header-token").Return(account, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "cookie-token"})

	result := runGate(t, m.Gate(ModeReject), req)

	require.NoError(t, result.err)
	assert.True(t, result.called)
	assert.Same(t, account, result.identity)
}

func TestGate_CookieFallback(t *testing.T) {
	m, sessions := newAuthMiddleware(t)
	account := basicAccount()
	sessions.EXPECT().Resolve(mock.Anything, "cookie-token").Return(account, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "cookie-token"})

	result := runGate(t, m.Gate(ModeReject), req)

	require.NoError(t, result.err)
	assert.Same(t, account, result.identity)
}

func TestGate_LoggedOutCookieCountsAsNoToken(t *testing.T) {
	m, sessions := newAuthMiddleware(t)
	noToken := domainerrors.ErrUnauthenticated.WithMessage(usecase.ReasonNoToken)
	sessions.EXPECT().Resolve(mock.Anything, "").Return(nil, noToken)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "loggedout"})

	result := runGate(t, m.Gate(ModeReject), req)

	require.Error(t, result.err)
	assert.False(t, result.called)
	assert.Equal(t, usecase.ReasonNoToken, result.err.Error())
}

func TestGate_NonBearerHeaderIgnored(t *testing.T) {
	m, sessions := newAuthMiddleware(t)
	sessions.EXPECT().Resolve(mock.Anything, "").Return(nil, domainerrors.ErrUnauthenticated)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")

	result := runGate(t, m.Gate(ModeReject), req)

	assert.True(t, errors.Is(result.err, domainerrors.ErrUnauthenticated))
}

func TestGate_RejectShortCircuits(t *testing.T) {
	m, sessions := newAuthMiddleware(t)
	stale := domainerrors.ErrUnauthenticated.WithMessage(usecase.ReasonStaleToken)
	sessions.EXPECT().Resolve(mock.Anything, "old").Return(nil, stale)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer old")

	result := runGate(t, m.Gate(ModeReject), req)

	assert.Equal(t, stale, result.err)
	assert.False(t, result.called)
}

func TestGate_DegradeContinuesAnonymously(t *testing.T) {
	testCases := []struct {
		name string
		err  error
	}{
		{"expired token", domainerrors.ErrUnauthenticated.WithMessage(usecase.ReasonExpiredToken)},
		{"store failure", errors.New("connection refused")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, sessions := newAuthMiddleware(t)
			sessions.EXPECT().Resolve(mock.Anything, "tok").Return(nil, tc.err)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(echo.HeaderAuthorization, "Bearer tok")

			result := runGate(t, m.Gate(ModeDegrade), req)

			require.NoError(t, result.err)
			assert.True(t, result.called)
			assert.Nil(t, result.identity)
		})
	}
}

func TestRestrictTo(t *testing.T) {
	m, _ := newAuthMiddleware(t)
	gate := m.RestrictTo(entity.RoleAdministrator, entity.RoleLeadAuthor)

	run := func(account *entity.Account) (bool, error) {
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		deliverycontext.SetAccount(c, account)

		called := false
		err := gate(func(echo.Context) error {
			called = true

			return nil
		})(c)

		return called, err
	}

	admin := basicAccount()
	admin.Role = entity.RoleAdministrator
	called, err := run(admin)
	require.NoError(t, err)
	assert.True(t, called)

	called, err = run(basicAccount())
	assert.Equal(t, domainerrors.ErrForbidden, err)
	assert.False(t, called)
}

func TestRestrictTo_WithoutIdentityPanics(t *testing.T) {
	m, _ := newAuthMiddleware(t)
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Panics(t, func() {
		_ = m.RestrictTo(entity.RoleAdministrator)(func(echo.Context) error { return nil })(c)
	})
}
