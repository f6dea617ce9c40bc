package impl

import (
	"context"
	"strings"
	"testing"

	"booking/internal/domain/entity"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/errors"
	mockSvc "booking/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	testCases := []struct {
		name     string
		password string
		confirm  string
		message  string
	}{
		{"too short", "short", "short", "Password must be at least 8 characters long."},
		{"too long", strings.Repeat("a", 73), strings.Repeat("a", 73), "Password must be at most 72 bytes long."},
		{"mismatch", "pass1234", "pass12345", "Passwords are not the same!"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validatePassword(tc.password, tc.confirm)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			assert.Equal(t, tc.message, err.Error())
		})
	}

	assert.NoError(t, validatePassword("pass1234", "pass1234"))
}

func TestPasswordSetter_NewAccountKeepsChangedAtNil(t *testing.T) {
	hasher := mockSvc.NewMockPasswordHasher(t)
	setter := &passwordSetter{hasher: hasher, now: fixedClock}
	ctx := context.Background()

	hasher.EXPECT().Hash(ctx, "pass1234").Return("hashed", nil)

	account := entity.NewAccount("Ada", "ada@example.com")
	require.NoError(t, setter.Set(ctx, account, "pass1234", "pass1234", true))

	assert.Equal(t, "hashed", account.PasswordHash)
	assert.Nil(t, account.PasswordChangedAt)
}

func TestPasswordSetter_ExistingAccountBackdatesChange(t *testing.T) {
	hasher := mockSvc.NewMockPasswordHasher(t)
	setter := &passwordSetter{hasher: hasher, now: fixedClock}
	ctx := context.Background()

	hasher.EXPECT().Hash(ctx, "newpass123").Return("hashed-new", nil)

	account := entity.NewAccount("Ada", "ada@example.com")
	account.PasswordHash = "hashed-old"
	require.NoError(t, setter.Set(ctx, account, "newpass123", "newpass123", false))

	assert.Equal(t, "hashed-new", account.PasswordHash)
	require.NotNil(t, account.PasswordChangedAt)
	assert.Equal(t, fixedNow.Add(-passwordChangeSkew), *account.PasswordChangedAt)
}

func TestPasswordSetter_HashFailure(t *testing.T) {
	hasher := mockSvc.NewMockPasswordHasher(t)
	setter := &passwordSetter{hasher: hasher, now: fixedClock}
	ctx := context.Background()

	hasher.EXPECT().Hash(ctx, "pass1234").Return("", context.DeadlineExceeded)

	account := entity.NewAccount("Ada", "ada@example.com")
	err := setter.Set(ctx, account, "pass1234", "pass1234", true)

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Empty(t, account.PasswordHash)
}
