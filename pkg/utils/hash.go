package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashString creates a SHA-256 hash of the input string
func HashString(input string) string {
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:])
}

// EmailFingerprint identifies an address in logs without printing it.
// Case and surrounding whitespace do not change the result.
func EmailFingerprint(email string) string {
	return HashString(strings.ToLower(strings.TrimSpace(email)))[:12]
}
