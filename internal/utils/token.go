package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// sessionTokenBytes is the entropy of a session token before hex encoding.
// 32 random bytes make accidental collisions and guessing negligible.
const sessionTokenBytes = 32

// NewSessionToken generates a cryptographically unguessable opaque session
// token: 32 bytes from crypto/rand, hex-encoded to a 64-character string.
//
// Returns an error only if the operating system's entropy source fails.
func NewSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating session token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
