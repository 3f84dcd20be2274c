package id

import (
	"strings"

	"github.com/google/uuid"
)

// NewID32 returns a random (v4) identifier as exactly 32 lowercase hex characters.
func NewID32() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NewToken returns an opaque session token. Tokens keep the canonical dashed form
// so they are never confused with entity identifiers.
func NewToken() string {
	return uuid.NewString()
}

// Valid reports whether s looks like an identifier produced by NewID32.
func Valid(s string) bool {
	if len(s) != 32 {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
