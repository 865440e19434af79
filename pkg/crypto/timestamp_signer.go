package crypto

import (
	"fmt"
	"strings"
	"time"
)

// TimestampSigner is a Signer that appends a base62 timestamp to the
// value, letting signatures expire.
type TimestampSigner struct {
	Signer

	now func() time.Time
}

// NewTimestampSigner returns a TimestampSigner for the given key.
func NewTimestampSigner(key []byte, opts ...SignerOption) (*TimestampSigner, error) {
	o := signerOptions{sep: ":"}
	for _, opt := range opts {
		opt(&o)
	}
	if o.salt == "" {
		o.salt = defaultTimestampSignerSalt
	}
	signer, err := newSigner(key, o)
	if err != nil {
		return nil, err
	}

	return &TimestampSigner{Signer: *signer, now: time.Now}, nil
}

func (s *TimestampSigner) timestamp() string {
	return base62Encode(s.now().Unix())
}

// Sign appends a timestamp and the signature of value after the separator.
func (s *TimestampSigner) Sign(value string) string {
	return s.Signer.Sign(value + s.sep + s.timestamp())
}

// Unsign verifies the signature, checks that the value was signed no more
// than maxAge ago and returns the original value. A zero maxAge skips the
// age check.
func (s *TimestampSigner) Unsign(signedValue string, maxAge time.Duration) (string, error) {
	result, err := s.Signer.Unsign(signedValue)
	if err != nil {
		return "", err
	}
	i := strings.LastIndex(result, s.sep)
	if i < 0 {
		return "", fmt.Errorf("%w: no timestamp found in value", ErrBadSignature)
	}
	value, timestamp := result[:i], result[i+len(s.sep):]
	if maxAge != 0 {
		signedAt, err := base62Decode(timestamp)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrBadSignature, err)
		}
		age := s.now().Sub(time.Unix(signedAt, 0))
		if age > maxAge {
			return "", fmt.Errorf("%w: signature age %v > %v", ErrSignatureExpired, age, maxAge)
		}
	}
	return value, nil
}
