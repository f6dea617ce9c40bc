package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"booking/internal/domain/service"
	"booking/internal/errors"
)

const resetTokenBytes = 32

// resetTokenGenerator issues random reset tokens and stores only their SHA-256 digest.
type resetTokenGenerator struct{}

// NewResetTokenGenerator is the constructor for resetTokenGenerator.
func NewResetTokenGenerator() service.ResetTokenGenerator {
	return &resetTokenGenerator{}
}

// Generate returns 32 random bytes as hex together with the hex SHA-256 digest.
func (g *resetTokenGenerator) Generate() (string, string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.Wrap(err, "read random bytes")
	}

	plaintext := hex.EncodeToString(buf)

	return plaintext, g.Digest(plaintext), nil
}

// Digest hashes a plaintext token the way it is stored.
func (g *resetTokenGenerator) Digest(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))

	return hex.EncodeToString(sum[:])
}

// Matches compares in constant time.
func (g *resetTokenGenerator) Matches(candidate, digest string) bool {
	return subtle.ConstantTimeCompare([]byte(g.Digest(candidate)), []byte(digest)) == 1
}
