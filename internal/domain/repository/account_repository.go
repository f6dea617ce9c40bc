// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"booking/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when no active account matches a lookup.
var ErrAccountNotFound = errors.New("account not found")

// ErrEmailTaken is returned by Create when the email is already registered.
var ErrEmailTaken = errors.New("email already registered")

// AccountRepository defines the persistence operations for accounts.
// Every finder ignores inactive accounts and loads the password hash.
type AccountRepository interface {
	// FindByID retrieves an active account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByIDWithPassword retrieves an active account for a credential check.
	FindByIDWithPassword(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves an active account by its normalized email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByResetTokenHash retrieves the active account holding digest with an expiry after now.
	// Inside a transaction the row is locked until commit.
	FindByResetTokenHash(ctx context.Context, digest string, now time.Time) (*entity.Account, error)

	// Create persists a new account and fills in its generated fields.
	Create(ctx context.Context, account *entity.Account) error

	// Update validates and persists every mutable field of an account.
	Update(ctx context.Context, account *entity.Account) error

	// SetPasswordResetToken stores a reset digest and its expiry in one statement, skipping validation.
	SetPasswordResetToken(ctx context.Context, id uuid.UUID, digest string, expiresAt time.Time) error

	// ClearPasswordResetToken removes the reset digest and expiry in one statement.
	ClearPasswordResetToken(ctx context.Context, id uuid.UUID) error

	// Deactivate marks the account inactive so every finder ignores it afterwards.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
