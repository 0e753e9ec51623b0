package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// NewSalt returns a random 8-byte hex salt for credential derivation.
func NewSalt() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// DigestPassword derives the stored credential hash: hex(sha256(salt || password)).
func DigestPassword(salt, password string) string {
	sum := sha256.Sum256([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether the password matches the stored salt/hash pair.
func VerifyPassword(password, salt, hash string) bool {
	derived := DigestPassword(salt, password)
	return subtle.ConstantTimeCompare([]byte(derived), []byte(hash)) == 1
}

// NewToken generates an opaque session token: 24 random bytes, hex encoded.
func NewToken() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashToken computes a SHA-256 hash of the token string. Only token hashes
// are persisted and cached; the raw token stays with the client.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
