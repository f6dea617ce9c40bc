// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"booking/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Name            string
	Email           string
	Password        string
	PasswordConfirm string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdatePasswordInput defines the data required to change a known password.
type UpdatePasswordInput struct {
	PasswordCurrent string
	Password        string
	PasswordConfirm string
}

// ForgotPasswordInput identifies the account that asked for a reset link.
type ForgotPasswordInput struct {
	Email string
}

// ResetPasswordInput carries the new password submitted with a reset token.
type ResetPasswordInput struct {
	Password        string
	PasswordConfirm string
}

// ResetURLBuilder turns a plaintext reset token into the link mailed to the account owner.
type ResetURLBuilder func(token string) string

// AuthUsecase defines the credential and password lifecycle flows.
// Flows that end in a new session return the account; the delivery layer emits the token.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput, profileURL string) (*entity.Account, error)
	Login(ctx context.Context, input *LoginInput) (*entity.Account, error)
	UpdatePassword(ctx context.Context, accountID uuid.UUID, input *UpdatePasswordInput) (*entity.Account, error)
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput, resetURL ResetURLBuilder) error
	ResetPassword(ctx context.Context, token string, input *ResetPasswordInput) (*entity.Account, error)
}
