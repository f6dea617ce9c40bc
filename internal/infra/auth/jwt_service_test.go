package auth

import (
	"strings"
	"testing"
	"time"

	"booking/config"
	"booking/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_session_secret_key_very_long_for_testing"

type fakeClock struct {
	at time.Time
}

func (c *fakeClock) Now() time.Time { return c.at }

func newTestJWTService(t *testing.T, clock *fakeClock) *jwtService {
	t.Helper()

	svc, err := newJWTService(testSecret, time.Hour, clock.Now)
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	clock := &fakeClock{at: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, clock)

	subjectID := uuid.New()
	token, err := svc.Issue(subjectID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, subjectID, claims.SubjectID)
	assert.True(t, claims.IssuedAt.Equal(clock.at))
	assert.True(t, claims.ExpiresAt.Equal(clock.at.Add(time.Hour)))
}

func TestJWTService_Expired(t *testing.T) {
	clock := &fakeClock{at: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, clock)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	clock.at = clock.at.Add(time.Hour + time.Second)

	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_Malformed(t *testing.T) {
	svc := newTestJWTService(t, &fakeClock{at: time.Now()})

	claims, err := svc.Verify("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}

func TestJWTService_WrongKey(t *testing.T) {
	clock := &fakeClock{at: time.Now()}
	other, err := newJWTService("another_secret_key_entirely", time.Hour, clock.Now)
	require.NoError(t, err)

	token, err := other.Issue(uuid.New())
	require.NoError(t, err)

	_, err = newTestJWTService(t, clock).Verify(token)
	assert.ErrorIs(t, err, service.ErrSignatureInvalid)
}

func TestJWTService_TamperedPayload(t *testing.T) {
	clock := &fakeClock{at: time.Now()}
	svc := newTestJWTService(t, clock)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	forged, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	// Header and payload of one token, signature of another.
	parts := strings.Split(token, ".")
	forgedParts := strings.Split(forged, ".")
	tampered := parts[0] + "." + forgedParts[1] + "." + parts[2]

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, service.ErrSignatureInvalid)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	clock := &fakeClock{at: time.Now()}
	svc := newTestJWTService(t, clock)

	claims := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(clock.at),
		ExpiresAt: jwt.NewNumericDate(clock.at.Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(unsigned)
	assert.ErrorIs(t, err, service.ErrSignatureInvalid)
}

func TestJWTService_RejectsNonAccountSubject(t *testing.T) {
	clock := &fakeClock{at: time.Now()}
	svc := newTestJWTService(t, clock)

	claims := jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		IssuedAt:  jwt.NewNumericDate(clock.at),
		ExpiresAt: jwt.NewNumericDate(clock.at.Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: time.Hour}}

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
