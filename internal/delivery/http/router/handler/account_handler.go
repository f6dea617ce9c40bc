package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "booking/internal/delivery/context"
	"booking/internal/delivery/http/response"
	"booking/internal/domain/entity"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var errNotForPasswords = domainerrors.ErrValidationFailed.WithMessage(
	"This route is not for password updates. Please use /updateMyPassword.",
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves the self-service endpoints of the logged-in account.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// Me returns the current account as stored.
func (h *AccountHandler) Me(c echo.Context) error {
	current, err := currentAccount(c)
	if err != nil {
		return err
	}

	account, err := h.accountUC.GetAccount(c.Request().Context(), current.ID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, userData(account))
}

// UpdateMeRequest is the body of PATCH /updateMe. Password fields are only read to refuse them.
type UpdateMeRequest struct {
	Name            *string `json:"name" validate:"omitnil,min=1,max=100"`
	Email           *string `json:"email" validate:"omitnil,email"`
	Password        string  `json:"password"`
	PasswordConfirm string  `json:"passwordConfirm"`
}

// UpdateMe changes the name and email of the current account.
func (h *AccountHandler) UpdateMe(c echo.Context) error {
	current, err := currentAccount(c)
	if err != nil {
		return err
	}

	var req UpdateMeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Password != "" || req.PasswordConfirm != "" {
		return errNotForPasswords
	}

	account, err := h.accountUC.UpdateProfile(c.Request().Context(), current.ID, &usecase.UpdateProfileInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, userData(account))
}

// DeleteMe deactivates the current account.
func (h *AccountHandler) DeleteMe(c echo.Context) error {
	current, err := currentAccount(c)
	if err != nil {
		return err
	}

	if err := h.accountUC.Deactivate(c.Request().Context(), current.ID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Session reports the identity of the request, or null for anonymous visitors.
func (h *AccountHandler) Session(c echo.Context) error {
	account, _ := deliverycontext.GetAccount(c)

	return response.Success(c, http.StatusOK, userData(account))
}

// CreateAccount is the administrator entry point for account creation, which is only
// possible through signup.
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	return domainerrors.ErrRouteNotDefined
}

func currentAccount(c echo.Context) (*entity.Account, error) {
	account, ok := deliverycontext.GetAccount(c)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated
	}

	return account, nil
}

func userData(account *entity.Account) map[string]any {
	return map[string]any{"user": account.Sanitized()}
}

func messageResponse(c echo.Context, message string) response.Response {
	return response.Response{
		Status:  response.StatusSuccess,
		Message: message,
		Meta:    response.MetaInfo{RequestID: deliverycontext.GetRequestID(c)},
	}
}
