package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "booking/internal/delivery/context"
	"booking/internal/domain/entity"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/domain/repository"
	"booking/internal/errors"
	"booking/internal/usecase"

	"github.com/google/uuid"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(accountRepo repository.AccountRepository, logger *slog.Logger) usecase.AccountUsecase {
	return &accountService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// GetAccount loads the current account.
func (srv *accountService) GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

// UpdateProfile changes the name and login email of the current account.
func (srv *accountService) UpdateProfile(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByIDWithPassword(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if input.Name != nil {
		account.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		account.Email = entity.NormalizeEmail(*input.Email)
	}
	if err := account.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Invalid input data. " + err.Error())
	}

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, errors.Wrap(domainerrors.ErrAccountAlreadyExists, "update profile")
		}
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "account not found")
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Profile updated", slog.Any("accountID", accountID))

	return account, nil
}

// Deactivate soft-deletes the current account; its tokens stop resolving at once.
func (srv *accountService) Deactivate(ctx context.Context, accountID uuid.UUID) error {
	if err := srv.accountRepo.Deactivate(ctx, accountID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "account not found")
		}

		return errors.Wrap(err, "failed to deactivate account")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Account deactivated", slog.Any("accountID", accountID))

	return nil
}
