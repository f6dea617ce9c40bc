package usecase

import (
	"context"

	"booking/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountUsecase defines the self-service operations on the current account.
type AccountUsecase interface {
	GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, input *UpdateProfileInput) (*entity.Account, error)
	Deactivate(ctx context.Context, accountID uuid.UUID) error
}

// UpdateProfileInput carries the profile fields an account may change about itself.
// Nil fields are left as stored.
type UpdateProfileInput struct {
	Name  *string
	Email *string
}
