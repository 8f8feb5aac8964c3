package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// TokenSource produces opaque session tokens. Implementations must yield at
// least 128 bits of entropy per token.
type TokenSource func() (string, error)

// RandomToken is the default TokenSource: 32 bytes from crypto/rand,
// hex-encoded (256 bits of entropy).
func RandomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
