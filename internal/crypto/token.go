package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// tokenLen is the number of random bytes in a session token: 256 bits of
// entropy, well above the 128-bit minimum needed to make collisions and
// guessing negligible over the system's lifetime.
const tokenLen = 32

// GenerateToken produces an opaque, unguessable session token value: 32
// bytes from the OS CSPRNG, URL-safe base64 encoded without padding
// (43 characters). Returns an error only if the random read fails.
func GenerateToken() (string, error) {
	raw := make([]byte, tokenLen)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("error generating session token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}
