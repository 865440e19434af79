package crypto

import (
	"crypto/hmac"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
)

// Salts default to the django-cryptography class paths so that signatures
// verify across implementations.
const (
	defaultSignerSalt          = "django_cryptography.core.signing.Signer"
	defaultTimestampSignerSalt = "django_cryptography.core.signing.TimestampSigner"
	defaultBytesSignerSalt     = "django_cryptography.core.signing.BytesSigner"
)

// sepUnsafe matches separators that could collide with the URL-safe base64
// alphabet used for signatures.
var sepUnsafe = regexp.MustCompile(`^[A-Za-z0-9_=-]*$`)

type signerOptions struct {
	sep       string
	salt      string
	algorithm Algorithm
}

// SignerOption configures a signer.
type SignerOption func(*signerOptions)

// WithSep overrides the ":" separator placed between value and signature.
// The separator cannot be empty or consist of only URL-safe base64
// characters.
func WithSep(sep string) SignerOption {
	return func(o *signerOptions) {
		o.sep = sep
	}
}

// WithSalt namespaces the signature. Reusing a salt across different parts
// of an application without good cause is a security risk.
func WithSalt(salt string) SignerOption {
	return func(o *signerOptions) {
		o.salt = salt
	}
}

// WithAlgorithm selects the HMAC hash, DefaultAlgorithm when unset.
func WithAlgorithm(algorithm Algorithm) SignerOption {
	return func(o *signerOptions) {
		o.algorithm = algorithm
	}
}

// Signer signs and verifies strings with a salted HMAC. Signatures are
// unpadded URL-safe base64, appended to the value after the separator.
type Signer struct {
	key     []byte
	sep     string
	salt    string
	hasher  Hasher
	hmacKey []byte
}

// NewSigner returns a Signer for the given key. The key is used to derive
// the HMAC key and must not be empty.
func NewSigner(key []byte, opts ...SignerOption) (*Signer, error) {
	o := signerOptions{sep: ":"}
	for _, opt := range opts {
		opt(&o)
	}
	if o.salt == "" {
		o.salt = defaultSignerSalt
	}
	return newSigner(key, o)
}

func newSigner(key []byte, o signerOptions) (*Signer, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: key must not be empty", ErrInvalidKey)
	}
	if sepUnsafe.MatchString(o.sep) {
		return nil, fmt.Errorf(
			"%w: %q (cannot be empty or consist of only A-Za-z0-9-_=)",
			ErrUnsafeSeparator, o.sep,
		)
	}
	hasher, err := o.algorithm.Hasher()
	if err != nil {
		return nil, err
	}

	return &Signer{
		key:     key,
		sep:     o.sep,
		salt:    o.salt,
		hasher:  hasher,
		hmacKey: deriveHMACKey(hasher, []byte(o.salt+"signer"), key),
	}, nil
}

// Signature returns the unpadded URL-safe base64 signature of value.
func (s *Signer) Signature(value string) string {
	mac := hmac.New(s.hasher.New, s.hmacKey)
	mac.Write([]byte(value))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Sign appends the signature of value after the separator.
func (s *Signer) Sign(value string) string {
	return value + s.sep + s.Signature(value)
}

// Unsign verifies the signature appended after the last separator and
// returns the original value.
func (s *Signer) Unsign(signedValue string) (string, error) {
	i := strings.LastIndex(signedValue, s.sep)
	if i < 0 {
		return "", fmt.Errorf("%w: no %q found in value", ErrBadSignature, s.sep)
	}
	value, sig := signedValue[:i], signedValue[i+len(s.sep):]
	if ConstantTimeCompare([]byte(sig), []byte(s.Signature(value))) {
		return value, nil
	}
	return "", fmt.Errorf("%w: signature %q does not match", ErrBadSignature, sig)
}
