package crypto

import (
	"crypto/hmac"
	"encoding/base64"
	"fmt"
)

// BytesSigner signs and verifies byte values with a salted HMAC. The raw
// digest is appended to the value with no separator.
type BytesSigner struct {
	key     []byte
	salt    string
	hasher  Hasher
	hmacKey []byte
}

// NewBytesSigner returns a BytesSigner for the given key. WithSep has no
// effect here.
func NewBytesSigner(key []byte, opts ...SignerOption) (*BytesSigner, error) {
	o := signerOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.salt == "" {
		o.salt = defaultBytesSignerSalt
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: key must not be empty", ErrInvalidKey)
	}
	hasher, err := o.algorithm.Hasher()
	if err != nil {
		return nil, err
	}

	return &BytesSigner{
		key:     key,
		salt:    o.salt,
		hasher:  hasher,
		hmacKey: deriveHMACKey(hasher, []byte(o.salt+"signer"), key),
	}, nil
}

// Signature returns the raw HMAC digest of value.
func (s *BytesSigner) Signature(value []byte) []byte {
	mac := hmac.New(s.hasher.New, s.hmacKey)
	mac.Write(value)
	return mac.Sum(nil)
}

// Sign appends the signature of value.
func (s *BytesSigner) Sign(value []byte) []byte {
	signed := make([]byte, 0, len(value)+s.hasher.Size)
	signed = append(signed, value...)
	return append(signed, s.Signature(value)...)
}

// Unsign verifies the trailing signature and returns the original value.
func (s *BytesSigner) Unsign(signedValue []byte) ([]byte, error) {
	if len(signedValue) < s.hasher.Size {
		return nil, fmt.Errorf("%w: value too short to hold a signature", ErrBadSignature)
	}
	value, sig := signedValue[:len(signedValue)-s.hasher.Size], signedValue[len(signedValue)-s.hasher.Size:]
	if ConstantTimeCompare(sig, s.Signature(value)) {
		return value, nil
	}
	return nil, fmt.Errorf(
		"%w: signature %q does not match",
		ErrBadSignature, base64.StdEncoding.EncodeToString(sig),
	)
}
