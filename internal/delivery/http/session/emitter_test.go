package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booking/internal/domain/entity"
	"booking/internal/errors"
	mockservice "booking/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var emitNow = time.Date(2026, 6, 1, 9, 30, 0, 0, time.UTC)

func newTestContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func testAccount() *entity.Account {
	digest := "digest"
	expires := emitNow.Add(time.Minute)

	return &entity.Account{
		ID:                     uuid.New(),
		Name:                   "Ada Lovelace",
		Email:                  "ada@example.com",
		Role:                   entity.RoleBasic,
		PasswordHash:           "$2a$12$secret",
		PasswordResetTokenHash: &digest,
		PasswordResetExpiresAt: &expires,
		Active:                 true,
	}
}

func TestEmitter_Emit(t *testing.T) {
	tokens := mockservice.NewMockTokenService(t)
	emitter := newEmitter(tokens, "jwt", 90*24*time.Hour, func() time.Time { return emitNow })
	account := testAccount()
	tokens.EXPECT().Issue(account.ID).Return("signed.token.value", nil)

	c, rec := newTestContext(httptest.NewRequest(http.MethodPost, "/api/v1/users/login", nil))
	require.NoError(t, emitter.Emit(c, http.StatusCreated, account))

	assert.Equal(t, http.StatusCreated, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "jwt", cookies[0].Name)
	assert.Equal(t, "signed.token.value", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.False(t, cookies[0].Secure)
	assert.Equal(t, "/", cookies[0].Path)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.Equal(t, emitNow.Add(90*24*time.Hour).Unix(), cookies[0].Expires.Unix())

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "SUCCESS", body["status"])
	assert.Equal(t, "signed.token.value", body["token"])

	user := body["data"].(map[string]any)["user"].(map[string]any)
	assert.Equal(t, account.Email, user["email"])
	assert.NotContains(t, rec.Body.String(), "$2a$12$secret")
	assert.NotContains(t, rec.Body.String(), "digest")

	// The caller's account is left untouched.
	assert.Equal(t, "$2a$12$secret", account.PasswordHash)
}

func TestEmitter_Emit_SecureBehindProxy(t *testing.T) {
	tokens := mockservice.NewMockTokenService(t)
	emitter := newEmitter(tokens, "jwt", time.Hour, func() time.Time { return emitNow })
	account := testAccount()
	tokens.EXPECT().Issue(account.ID).Return("tok", nil)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(echo.HeaderXForwardedProto, "https")
	c, rec := newTestContext(req)

	require.NoError(t, emitter.Emit(c, http.StatusOK, account))
	assert.True(t, rec.Result().Cookies()[0].Secure)
}

func TestEmitter_Emit_IssueFailure(t *testing.T) {
	tokens := mockservice.NewMockTokenService(t)
	emitter := newEmitter(tokens, "jwt", time.Hour, func() time.Time { return emitNow })
	account := testAccount()
	tokens.EXPECT().Issue(account.ID).Return("", errors.New("signing failed"))

	c, rec := newTestContext(httptest.NewRequest(http.MethodPost, "/", nil))

	err := emitter.Emit(c, http.StatusOK, account)
	require.Error(t, err)
	assert.Empty(t, rec.Result().Cookies())
}

func TestEmitter_Clear(t *testing.T) {
	emitter := newEmitter(mockservice.NewMockTokenService(t), "jwt", time.Hour, func() time.Time { return emitNow })
	c, rec := newTestContext(httptest.NewRequest(http.MethodGet, "/api/v1/users/logout", nil))

	require.NoError(t, emitter.Clear(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, LoggedOutValue, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, emitNow.Add(10*time.Second).Unix(), cookies[0].Expires.Unix())
	assert.JSONEq(t, `{"status":"SUCCESS","meta":{}}`, rec.Body.String())
}

func TestIsSecure(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, _ := newTestContext(req)
	assert.False(t, IsSecure(c))

	req.Header.Set(echo.HeaderXForwardedProto, "HTTPS")
	assert.True(t, IsSecure(c))
}
