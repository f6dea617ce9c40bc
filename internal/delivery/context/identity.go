package context

import (
	"context"

	"booking/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetAccount records the authenticated account on the echo context and on the
// request context, so handlers and anything rendering for the request see the same identity.
func SetAccount(c echo.Context, account *entity.Account) {
	c.Set(string(KeyAccount), account)

	req := c.Request()
	c.SetRequest(req.WithContext(WithAccount(req.Context(), account)))
}

// GetAccount returns the account stored by SetAccount.
func GetAccount(c echo.Context) (*entity.Account, bool) {
	account, ok := c.Get(string(KeyAccount)).(*entity.Account)

	return account, ok && account != nil
}

// WithAccount returns a new context carrying the authenticated account.
func WithAccount(ctx context.Context, account *entity.Account) context.Context {
	return context.WithValue(ctx, KeyAccount, account)
}

// AccountFromContext returns the account carried by ctx, if any.
func AccountFromContext(ctx context.Context) (*entity.Account, bool) {
	account, ok := ctx.Value(KeyAccount).(*entity.Account)

	return account, ok && account != nil
}
