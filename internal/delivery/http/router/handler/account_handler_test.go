package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "booking/internal/delivery/context"
	"booking/internal/delivery/http/validator"
	"booking/internal/domain/entity"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/errors"
	mockusecase "booking/internal/mocks/usecase"
	"booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccountHandler(t *testing.T) (*AccountHandler, *mockusecase.MockAccountUsecase) {
	t.Helper()

	accountUC := mockusecase.NewMockAccountUsecase(t)

	return NewAccountHandler(AccountHandlerParams{
		AccountUC: accountUC,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), accountUC
}

func newContext(method string, account *entity.Account) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(method, "/api/v1/users/me", nil), rec)
	if account != nil {
		deliverycontext.SetAccount(c, account)
	}

	return c, rec
}

func TestAccountHandler_Me(t *testing.T) {
	h, accountUC := newAccountHandler(t)
	current := &entity.Account{ID: uuid.New(), Email: "ada@example.com", Role: entity.RoleBasic, PasswordHash: "$2a$12$secret"}
	accountUC.EXPECT().GetAccount(mock.Anything, current.ID).Return(current, nil)

	c, rec := newContext(http.MethodGet, current)
	require.NoError(t, h.Me(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "$2a$12$secret")

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ada@example.com", body["data"].(map[string]any)["user"].(map[string]any)["email"])
}

func TestAccountHandler_Me_WithoutIdentity(t *testing.T) {
	h, _ := newAccountHandler(t)
	c, _ := newContext(http.MethodGet, nil)

	err := h.Me(c)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAccountHandler_DeleteMe(t *testing.T) {
	h, accountUC := newAccountHandler(t)
	current := &entity.Account{ID: uuid.New(), Role: entity.RoleBasic}
	accountUC.EXPECT().Deactivate(mock.Anything, current.ID).Return(nil)

	c, rec := newContext(http.MethodDelete, current)
	require.NoError(t, h.DeleteMe(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAccountHandler_DeleteMe_Failure(t *testing.T) {
	h, accountUC := newAccountHandler(t)
	current := &entity.Account{ID: uuid.New(), Role: entity.RoleBasic}
	accountUC.EXPECT().Deactivate(mock.Anything, current.ID).Return(domainerrors.ErrNotFound)

	c, _ := newContext(http.MethodDelete, current)

	assert.Equal(t, domainerrors.ErrNotFound, h.DeleteMe(c))
}

func TestAccountHandler_CreateAccount(t *testing.T) {
	h, _ := newAccountHandler(t)
	c, _ := newContext(http.MethodPost, &entity.Account{ID: uuid.New(), Role: entity.RoleAdministrator})

	err := h.CreateAccount(c)

	assert.Equal(t, domainerrors.ErrRouteNotDefined, err)
	assert.Equal(t, http.StatusNotImplemented, domainerrors.ErrRouteNotDefined.HTTPCode())
}

func newJSONContext(method, body string, account *entity.Account) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, "/api/v1/users/updateMe", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetAccount(c, account)

	return c, rec
}

func TestAccountHandler_UpdateMe(t *testing.T) {
	h, accountUC := newAccountHandler(t)
	current := &entity.Account{ID: uuid.New(), Email: "ada@example.com", Role: entity.RoleBasic}
	updated := &entity.Account{ID: current.ID, Name: "Ada King", Email: "ada@example.com", Role: entity.RoleBasic, PasswordHash: "$2a$12$secret"}
	accountUC.EXPECT().
		UpdateProfile(mock.Anything, current.ID, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
			return in.Name != nil && *in.Name == "Ada King" && in.Email == nil
		})).
		Return(updated, nil)

	c, rec := newJSONContext(http.MethodPatch, `{"name":"Ada King","role":"administrator"}`, current)
	require.NoError(t, h.UpdateMe(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "$2a$12$secret")

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Ada King", body["data"].(map[string]any)["user"].(map[string]any)["name"])
	assert.Equal(t, "basic", body["data"].(map[string]any)["user"].(map[string]any)["role"])
}

func TestAccountHandler_UpdateMe_RefusesPasswords(t *testing.T) {
	for _, body := range []string{
		`{"name":"Ada","password":"newpass123"}`,
		`{"passwordConfirm":"newpass123"}`,
	} {
		h, _ := newAccountHandler(t)
		c, _ := newJSONContext(http.MethodPatch, body, &entity.Account{ID: uuid.New(), Role: entity.RoleBasic})

		err := h.UpdateMe(c)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr), body)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
		assert.Equal(t, "This route is not for password updates. Please use /updateMyPassword.", appErr.Message())
	}
}

func TestAccountHandler_UpdateMe_InvalidEmail(t *testing.T) {
	h, _ := newAccountHandler(t)
	c, _ := newJSONContext(http.MethodPatch, `{"email":"not-an-email"}`, &entity.Account{ID: uuid.New(), Role: entity.RoleBasic})

	err := h.UpdateMe(c)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
