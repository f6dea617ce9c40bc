// Package access holds the pure decision rules of the access-control layer:
// whether a session token outlived a password change and whether a role may pass a gate.
package access

import (
	"time"

	"booking/internal/domain/entity"
	domainerrors "booking/internal/domain/errors"
)

// IsTokenStale reports whether a token issued at issuedAt predates the last password change.
// Both instants are compared in whole Unix seconds, the precision of the token's iat claim.
func IsTokenStale(passwordChangedAt *time.Time, issuedAt time.Time) bool {
	if passwordChangedAt == nil {
		return false
	}

	return issuedAt.Unix() < passwordChangedAt.Unix()
}

// Allow admits identity when its role is one of allowed.
// It must only run after the access gate resolved an identity; a nil identity panics.
func Allow(identity *entity.Account, allowed entity.Roles) error {
	if identity == nil {
		panic("access: role gate evaluated without an authenticated identity")
	}

	if !allowed.Contains(identity.Role) {
		return domainerrors.ErrForbidden
	}

	return nil
}
