package service

// ResetTokenGenerator produces single-use password reset tokens.
// Only the digest is ever stored; the plaintext is handed to the account owner once.
type ResetTokenGenerator interface {
	// Generate returns a fresh plaintext token and its digest.
	Generate() (plaintext, digest string, err error)

	// Digest returns the storage digest of a plaintext token.
	Digest(plaintext string) string

	// Matches compares a candidate plaintext against a stored digest in constant time.
	Matches(candidate, digest string) bool
}
