package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"io"
)

// ConstantTimeCompare reports whether two byte slices are equal without
// leaking where they differ.
func ConstantTimeCompare(val1, val2 []byte) bool {
	return subtle.ConstantTimeCompare(val1, val2) == 1
}

// RandomBytes returns size cryptographically secure random bytes.
func RandomBytes(size int) ([]byte, error) {
	value := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, value); err != nil {
		return nil, err
	}

	return value, nil
}
