package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAccount() *Account {
	account := NewAccount("Ada Lovelace", "  Ada@Example.COM ")
	account.PasswordHash = "$2a$12$hash"

	return account
}

func TestNewAccount_Defaults(t *testing.T) {
	account := NewAccount(" Ada ", "Ada@Example.com")

	assert.Equal(t, "Ada", account.Name)
	assert.Equal(t, "ada@example.com", account.Email)
	assert.Equal(t, RoleBasic, account.Role)
	assert.Equal(t, DefaultPhoto, account.Photo)
	assert.True(t, account.Active)
	assert.Nil(t, account.PasswordChangedAt)
	assert.False(t, account.HasPendingReset())
}

func TestAccount_Validate(t *testing.T) {
	require.NoError(t, validAccount().Validate())

	testCases := []struct {
		name   string
		mutate func(a *Account)
	}{
		{"missing name", func(a *Account) { a.Name = " " }},
		{"invalid email", func(a *Account) { a.Email = "nobody" }},
		{"unnormalized email", func(a *Account) { a.Email = "Ada@example.com" }},
		{"missing hash", func(a *Account) { a.PasswordHash = "" }},
		{"unknown role", func(a *Account) { a.Role = "guide" }},
		{"digest without expiry", func(a *Account) {
			digest := "abc"
			a.PasswordResetTokenHash = &digest
		}},
		{"expiry without digest", func(a *Account) {
			expires := time.Now()
			a.PasswordResetExpiresAt = &expires
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			account := validAccount()
			tc.mutate(account)
			assert.Error(t, account.Validate())
		})
	}
}

func TestAccount_PasswordResetPair(t *testing.T) {
	account := validAccount()
	expires := time.Now().Add(10 * time.Minute)

	account.SetPasswordReset("digest", expires)
	assert.True(t, account.HasPendingReset())
	require.NoError(t, account.Validate())

	account.ClearPasswordReset()
	assert.False(t, account.HasPendingReset())
	assert.Nil(t, account.PasswordResetTokenHash)
	assert.Nil(t, account.PasswordResetExpiresAt)
}

func TestAccount_SanitizedDropsSecrets(t *testing.T) {
	account := validAccount()
	account.SetPasswordReset("digest", time.Now())

	clean := account.Sanitized()

	assert.Empty(t, clean.PasswordHash)
	assert.False(t, clean.HasPendingReset())
	assert.Equal(t, "$2a$12$hash", account.PasswordHash)
	assert.True(t, account.HasPendingReset())
}

func TestRoles(t *testing.T) {
	assert.True(t, RoleLeadAuthor.IsValid())
	assert.False(t, Role("user").IsValid())

	roles := Roles{RoleAdministrator, RoleBasic}
	assert.True(t, roles.Contains(RoleBasic))
	assert.False(t, roles.Contains(RoleContentAuthor))
}
