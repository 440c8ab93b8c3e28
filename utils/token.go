package utils

import (
	"github.com/google/uuid"
)

// NewPortalToken generates the per-patient bearer secret embedded in portal
// links. The token is random, unique and immutable after intake.
func NewPortalToken() string {
	return uuid.New().String()
}

// SecureCompare performs a constant-time comparison of two strings to
// mitigate timing attacks.
func SecureCompare(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	result := byte(0)
	for i := 0; i < len(a); i++ {
		result |= a[i] ^ b[i]
	}
	return result == 0
}
