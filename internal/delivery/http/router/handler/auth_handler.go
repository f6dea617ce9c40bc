// Package handler contains the HTTP handlers of the account API.
package handler

import (
	"log/slog"
	"net/http"

	"booking/config"
	"booking/internal/delivery/http/session"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/errors"
	"booking/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	profilePath   = "/me"
	resetPathBase = "/api/v1/users/resetPassword/"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Config  *config.Config
	AuthUC  usecase.AuthUsecase
	Emitter *session.Emitter
	Logger  *slog.Logger
}

// AuthHandler serves the credential and password lifecycle endpoints.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	emitter *session.Emitter
	logger  *slog.Logger
	// publicURL prefixes every mailed link; the request Host is client-controlled.
	publicURL string
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:    params.AuthUC,
		emitter:   params.Emitter,
		logger:    params.Logger,
		publicURL: params.Config.HTTP.PublicURL,
	}
}

// SignupRequest is the body of POST /signup. A role in the body is ignored.
type SignupRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest is the body of POST /forgotPassword.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

// ResetPasswordRequest is the body of PATCH /resetPassword/:token.
type ResetPasswordRequest struct {
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required"`
}

// UpdatePasswordRequest is the body of PATCH /updateMyPassword.
type UpdatePasswordRequest struct {
	PasswordCurrent string `json:"passwordCurrent" validate:"required"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required"`
}

// Signup registers a basic account and logs it in.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	account, err := h.authUC.Signup(c.Request().Context(), &usecase.SignupInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	}, h.publicURL+profilePath)
	if err != nil {
		return err
	}

	return h.emitter.Emit(c, http.StatusCreated, account)
}

// Login checks the credentials and starts a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	account, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return h.emitter.Emit(c, http.StatusOK, account)
}

// Logout overwrites the session cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	return h.emitter.Clear(c)
}

// ForgotPassword mails a reset link to the account owner.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resetURL := func(token string) string {
		return h.publicURL + resetPathBase + token
	}

	if err := h.authUC.ForgotPassword(c.Request().Context(), &usecase.ForgotPasswordInput{Email: req.Email}, resetURL); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse(c, "Token sent to email!"))
}

// ResetPassword redeems a reset token and starts a session with the new password.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	account, err := h.authUC.ResetPassword(c.Request().Context(), c.Param("token"), &usecase.ResetPasswordInput{
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		return err
	}

	return h.emitter.Emit(c, http.StatusOK, account)
}

// UpdatePassword changes the password of the logged-in account and re-issues its session.
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	current, err := currentAccount(c)
	if err != nil {
		return err
	}

	var req UpdatePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	account, err := h.authUC.UpdatePassword(c.Request().Context(), current.ID, &usecase.UpdatePasswordInput{
		PasswordCurrent: req.PasswordCurrent,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		return err
	}

	return h.emitter.Emit(c, http.StatusOK, account)
}

// bindAndValidate decodes the body into req and runs the struct tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusRequestEntityTooLarge {
			return err
		}

		return domainerrors.ErrValidationFailed.WithMessage("Invalid request body.")
	}

	return c.Validate(req)
}
