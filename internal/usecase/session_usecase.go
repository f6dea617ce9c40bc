package usecase

import (
	"context"

	"booking/internal/domain/entity"
)

// Reasons attached to ErrUnauthenticated by SessionUsecase.Resolve.
const (
	ReasonNoToken        = "You are not logged in! Please log in to get access."
	ReasonInvalidToken   = "Invalid token. Please log in again."
	ReasonExpiredToken   = "Your token has expired. Please log in again."
	ReasonAccountMissing = "The account belonging to this token no longer exists."
	ReasonStaleToken     = "Account recently changed password. Please log in again."
)

// SessionUsecase turns a presented session token into the identity it belongs to.
type SessionUsecase interface {
	// Resolve verifies the token, loads its active account and rejects tokens
	// issued before the last password change.
	Resolve(ctx context.Context, token string) (*entity.Account, error)
}
