// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"time"

	"booking/internal/domain/entity"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/domain/service"
	"booking/internal/errors"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 72 // bcrypt input limit in bytes

	// passwordChangeSkew backdates passwordChangedAt so a token issued right
	// after the change is not mistaken for one issued before it.
	passwordChangeSkew = time.Second
)

// passwordSetter is the only path through which an account's password changes.
type passwordSetter struct {
	hasher service.PasswordHasher
	now    func() time.Time
}

func validatePassword(password, confirm string) error {
	switch {
	case len(password) < passwordMinLength:
		return domainerrors.ErrValidationFailed.WithMessage("Password must be at least 8 characters long.")
	case len(password) > passwordMaxLength:
		return domainerrors.ErrValidationFailed.WithMessage("Password must be at most 72 bytes long.")
	case password != confirm:
		return domainerrors.ErrValidationFailed.WithMessage("Passwords are not the same!")
	}

	return nil
}

// Set validates and hashes password onto account. Existing accounts get
// passwordChangedAt stamped; a brand-new account keeps it nil.
func (p *passwordSetter) Set(ctx context.Context, account *entity.Account, password, confirm string, isNew bool) error {
	if err := validatePassword(password, confirm); err != nil {
		return err
	}

	hash, err := p.hasher.Hash(ctx, password)
	if err != nil {
		return errors.Join(domainerrors.ErrPasswordHashFailed, err)
	}

	account.PasswordHash = hash
	if !isNew {
		changedAt := p.now().Add(-passwordChangeSkew)
		account.PasswordChangedAt = &changedAt
	}

	return nil
}
