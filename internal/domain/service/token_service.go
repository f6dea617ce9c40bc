package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Verification failures reported by TokenService.Verify.
var (
	ErrTokenMalformed   = errors.New("token is malformed")
	ErrTokenExpired     = errors.New("token has expired")
	ErrSignatureInvalid = errors.New("token signature is invalid")
)

// TokenClaims is the verified content of a session token.
type TokenClaims struct {
	SubjectID uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	// Issue signs a token for the subject, stamped with the current time.
	Issue(subjectID uuid.UUID) (string, error)

	// Verify checks signature and expiry and returns the token's claims.
	Verify(token string) (*TokenClaims, error)
}
