package impl

import (
	"context"
	"log/slog"

	deliverycontext "booking/internal/delivery/context"
	"booking/internal/domain/access"
	"booking/internal/domain/entity"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/domain/repository"
	"booking/internal/domain/service"
	"booking/internal/errors"
	"booking/internal/usecase"

	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	accountRepo  repository.AccountRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		accountRepo:  params.AccountRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve returns the active account a valid, fresh token belongs to.
// Every failure is an ErrUnauthenticated variant whose message names the reason.
func (srv *sessionService) Resolve(ctx context.Context, token string) (*entity.Account, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated.WithMessage(usecase.ReasonNoToken)
	}

	claims, err := srv.tokenService.Verify(token)
	if err != nil {
		srv.log(ctx).Debug("Session token rejected", slog.Any("error", err))

		if errors.Is(err, service.ErrTokenExpired) {
			return nil, domainerrors.ErrUnauthenticated.WithMessage(usecase.ReasonExpiredToken)
		}

		return nil, domainerrors.ErrUnauthenticated.WithMessage(usecase.ReasonInvalidToken)
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.SubjectID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrUnauthenticated.WithMessage(usecase.ReasonAccountMissing)
		}

		return nil, errors.Wrap(err, "failed to load session account")
	}

	if access.IsTokenStale(account.PasswordChangedAt, claims.IssuedAt) {
		return nil, domainerrors.ErrUnauthenticated.WithMessage(usecase.ReasonStaleToken)
	}

	return account, nil
}
