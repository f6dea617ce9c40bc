package impl

import (
	"context"
	"log/slog"
	"time"

	"booking/config"
	deliverycontext "booking/internal/delivery/context"
	"booking/internal/domain/entity"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/domain/repository"
	"booking/internal/domain/service"
	"booking/internal/errors"
	"booking/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager     repository.TransactionManager
	accountRepo   repository.AccountRepository
	hasher        service.PasswordHasher
	resetTokens   service.ResetTokenGenerator
	notifier      service.Notifier
	passwords     *passwordSetter
	resetTokenTTL time.Duration
	now           func() time.Time
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	ResetTokens service.ResetTokenGenerator
	Notifier    service.Notifier
	Config      *config.Config
	Logger      *slog.Logger
	// Now overrides the wall clock used for reset expiry and password change stamps.
	Now func() time.Time `optional:"true"`
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	now := params.Now
	if now == nil {
		now = time.Now
	}

	return newAuthService(params, now)
}

func newAuthService(params AuthServiceParams, now func() time.Time) *authService {
	return &authService{
		txManager:     params.TxManager,
		accountRepo:   params.AccountRepo,
		hasher:        params.Hasher,
		resetTokens:   params.ResetTokens,
		notifier:      params.Notifier,
		passwords:     &passwordSetter{hasher: params.Hasher, now: now},
		resetTokenTTL: params.Config.Auth.ResetTokenTTL,
		now:           now,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates a basic account and sends the welcome mail.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput, profileURL string) (*entity.Account, error) {
	account := entity.NewAccount(input.Name, input.Email)
	if err := srv.passwords.Set(ctx, account, input.Password, input.PasswordConfirm, true); err != nil {
		return nil, err
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, errors.Wrap(domainerrors.ErrAccountAlreadyExists, "signup")
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account created", slog.Any("accountID", account.ID))

	// The account exists either way; a lost welcome mail is not worth failing signup.
	if err := srv.notifier.SendWelcome(ctx, account, profileURL); err != nil {
		srv.log(ctx).Warn("Failed to send welcome mail", slog.Any("accountID", account.ID), slog.Any("error", err))
	}

	return account, nil
}

// Login checks the credentials of an active account.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.Account, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Please provide email and password!")
	}

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	ok, err := srv.hasher.Check(ctx, input.Password, account.PasswordHash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check password")
	}
	if !ok {
		srv.log(ctx).Info("Login rejected", slog.Any("accountID", account.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	return account, nil
}

// UpdatePassword replaces a password after re-checking the current one.
func (srv *authService) UpdatePassword(ctx context.Context, accountID uuid.UUID, input *usecase.UpdatePasswordInput) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByIDWithPassword(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrUnauthenticated.WithMessage(usecase.ReasonAccountMissing)
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	ok, err := srv.hasher.Check(ctx, input.PasswordCurrent, account.PasswordHash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check current password")
	}
	if !ok {
		return nil, domainerrors.ErrInvalidCredentials.WithMessage("Your current password is wrong.")
	}

	if err := srv.passwords.Set(ctx, account, input.Password, input.PasswordConfirm, false); err != nil {
		return nil, err
	}

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to save new password")
	}

	srv.log(ctx).Info("Password changed", slog.Any("accountID", account.ID))

	return account, nil
}

// ForgotPassword stores a reset digest and mails the plaintext link.
// A failed delivery withdraws the token again.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput, resetURL usecase.ResetURLBuilder) error {
	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrAccountNotFound, "forgot password")
		}

		return errors.Wrap(err, "failed to find account by email")
	}

	plaintext, digest, err := srv.resetTokens.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	expiresAt := srv.now().Add(srv.resetTokenTTL)
	if err := srv.accountRepo.SetPasswordResetToken(ctx, account.ID, digest, expiresAt); err != nil {
		return errors.Wrap(err, "failed to store reset token")
	}

	if err := srv.notifier.SendPasswordReset(ctx, account, resetURL(plaintext)); err != nil {
		srv.log(ctx).Error("Failed to send reset mail", slog.Any("accountID", account.ID), slog.Any("error", err))

		// Detached so a cancelled request still withdraws the token.
		if clearErr := srv.accountRepo.ClearPasswordResetToken(context.WithoutCancel(ctx), account.ID); clearErr != nil {
			srv.log(ctx).Error("Failed to clear reset token", slog.Any("accountID", account.ID), slog.Any("error", clearErr))
		}

		return errors.Join(domainerrors.ErrDeliveryFailed, err)
	}

	srv.log(ctx).Info("Reset token issued", slog.Any("accountID", account.ID), slog.Time("expiresAt", expiresAt))

	return nil
}

// ResetPassword redeems a reset token once and sets the new password.
func (srv *authService) ResetPassword(ctx context.Context, token string, input *usecase.ResetPasswordInput) (*entity.Account, error) {
	digest := srv.resetTokens.Digest(token)

	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		found, err := accountRepo.FindByResetTokenHash(ctx, digest, srv.now())
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidOrExpiredToken, "reset password")
			}

			return errors.Wrap(err, "failed to find account by reset token")
		}

		if err := srv.passwords.Set(ctx, found, input.Password, input.PasswordConfirm, false); err != nil {
			return err
		}
		found.ClearPasswordReset()

		if err := accountRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to save reset password")
		}

		account = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Password reset", slog.Any("accountID", account.ID))

	return account, nil
}
