package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strings"
)

func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// TokenHashMatches compares a stored hash against the hash of a submitted
// value in constant time.
func TokenHashMatches(storedHash, submitted string) bool {
	return subtle.ConstantTimeCompare([]byte(storedHash), []byte(HashToken(submitted))) == 1
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
