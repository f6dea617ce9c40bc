// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"booking/internal/errors"

	"github.com/google/uuid"
)

// DefaultPhoto is the avatar assigned to accounts that never uploaded one.
const DefaultPhoto = "default.jpg"

// Account is one registered identity of the booking platform.
// Secret material is tagged out of every JSON representation.
type Account struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Photo string    `json:"photo"`
	Role  Role      `json:"role"`

	PasswordHash           string     `json:"-"`
	PasswordChangedAt      *time.Time `json:"-"`
	PasswordResetTokenHash *string    `json:"-"`
	PasswordResetExpiresAt *time.Time `json:"-"`
	Active                 bool       `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewAccount builds a not-yet-persisted account with the defaults every signup gets.
func NewAccount(name, email string) *Account {
	return &Account{
		Name:   strings.TrimSpace(name),
		Email:  NormalizeEmail(email),
		Photo:  DefaultPhoto,
		Role:   DefaultRole,
		Active: true,
	}
}

// NormalizeEmail lower-cases and trims an address so lookups and the unique index agree.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HasPendingReset reports whether a password reset token is stored on the account.
func (a *Account) HasPendingReset() bool {
	return a.PasswordResetTokenHash != nil && a.PasswordResetExpiresAt != nil
}

// SetPasswordReset stores the digest and expiry of a freshly issued reset token.
func (a *Account) SetPasswordReset(digest string, expiresAt time.Time) {
	a.PasswordResetTokenHash = &digest
	a.PasswordResetExpiresAt = &expiresAt
}

// ClearPasswordReset drops both reset fields together.
func (a *Account) ClearPasswordReset() {
	a.PasswordResetTokenHash = nil
	a.PasswordResetExpiresAt = nil
}

// Sanitized returns a shallow copy that carries no secret material.
func (a *Account) Sanitized() *Account {
	if a == nil {
		return nil
	}

	clone := *a
	clone.PasswordHash = ""
	clone.ClearPasswordReset()

	return &clone
}

// Validate checks the invariants a full save must uphold.
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return errors.New("account name is required")
	}
	if a.Email == "" || !strings.Contains(a.Email, "@") {
		return errors.New("account email is invalid")
	}
	if a.Email != NormalizeEmail(a.Email) {
		return errors.New("account email must be normalized")
	}
	if a.PasswordHash == "" {
		return errors.New("account password hash is required")
	}
	if !a.Role.IsValid() {
		return errors.Errorf("account role %q is not supported", a.Role)
	}
	if (a.PasswordResetTokenHash == nil) != (a.PasswordResetExpiresAt == nil) {
		return errors.New("password reset digest and expiry must be set together")
	}

	return nil
}
