package service

import (
	"context"

	"booking/internal/domain/entity"
)

// Notifier delivers account lifecycle messages to the account owner.
type Notifier interface {
	// SendWelcome greets a newly signed-up account; url points to its profile page.
	SendWelcome(ctx context.Context, account *entity.Account, url string) error

	// SendPasswordReset delivers the reset link carrying the plaintext token.
	SendPasswordReset(ctx context.Context, account *entity.Account, url string) error
}
