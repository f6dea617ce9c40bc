package auth

import (
	"context"
	"strings"
	"testing"

	"booking/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T) *bcryptHasher {
	t.Helper()

	hasher, err := newBcryptHasher(bcrypt.MinCost, 2)
	require.NoError(t, err)

	return hasher
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher(t)
	ctx := context.Background()

	password := "pass1234"
	hash, err := hasher.Hash(ctx, password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	ok, err := hasher.Check(ctx, password, hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Check(ctx, "wrongpass", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = hasher.Check(ctx, "", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher := newTestHasher(t)
	ctx := context.Background()

	first, err := hasher.Hash(ctx, "pass1234")
	require.NoError(t, err)
	second, err := hasher.Hash(ctx, "pass1234")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	hasher := newTestHasher(t)

	ok, err := hasher.Check(context.Background(), "pass1234", "invalid_hash")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_RejectsOverlongPassword(t *testing.T) {
	hasher := newTestHasher(t)

	_, err := hasher.Hash(context.Background(), strings.Repeat("a", 73))
	assert.Error(t, err)
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 6, HashConcurrency: 1}}

	hasher, err := NewBcryptHasher(cfg)
	require.NoError(t, err)

	hash, err := hasher.Hash(context.Background(), "pass1234")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_InvalidSettings(t *testing.T) {
	_, err := newBcryptHasher(bcrypt.MaxCost+1, 1)
	assert.Error(t, err)

	_, err = newBcryptHasher(bcrypt.MinCost-1, 1)
	assert.Error(t, err)

	_, err = newBcryptHasher(bcrypt.MinCost, 0)
	assert.Error(t, err)
}

func TestBcryptHasher_CancelledWhileWaiting(t *testing.T) {
	hasher, err := newBcryptHasher(bcrypt.MinCost, 1)
	require.NoError(t, err)

	require.NoError(t, hasher.slots.Acquire(context.Background(), 1))
	defer hasher.slots.Release(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = hasher.Hash(ctx, "pass1234")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = hasher.Check(ctx, "pass1234", "irrelevant")
	assert.ErrorIs(t, err, context.Canceled)
}
