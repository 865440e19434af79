package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAlgorithm is returned when a hash algorithm is not in the
	// registry accepted by the package.
	ErrInvalidAlgorithm = errors.New("invalid hash algorithm")

	// ErrUnsafeSeparator is returned when a Signer separator could collide
	// with the URL-safe base64 alphabet used for signatures.
	ErrUnsafeSeparator = errors.New("unsafe signer separator")

	// ErrInvalidKey is returned when key material has the wrong size or
	// encoding.
	ErrInvalidKey = errors.New("invalid key")

	// ErrBadSignature is returned when signature verification fails.
	ErrBadSignature = errors.New("bad signature")

	// ErrSignatureExpired is returned when a timestamped signature is older
	// than its allowed age. It matches ErrBadSignature in errors.Is checks.
	ErrSignatureExpired = fmt.Errorf("%w: signature expired", ErrBadSignature)

	// ErrInvalidToken is returned when a Fernet token cannot be decoded or
	// decrypted. Malformed and tampered tokens are indistinguishable.
	ErrInvalidToken = errors.New("invalid token")
)
