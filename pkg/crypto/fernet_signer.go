package crypto

import (
	"crypto/hmac"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"time"
)

// fernetVersion is the magic byte leading every signed payload.
const fernetVersion = byte(0x80)

// fernetHeaderSize is the size of the ">cQ" header: the version byte plus
// a big-endian uint64 timestamp.
const fernetHeaderSize = 9

// maxClockSkew widens the expiry window to allow for clock drift between
// the signing and verifying hosts.
const maxClockSkew = 60 * time.Second

// FernetSigner signs byte payloads in the Fernet style: a version byte
// and a timestamp are prepended to the value and an HMAC of the whole
// payload is appended. Unlike Signer the key is used directly, without a
// salted derivation.
type FernetSigner struct {
	key    []byte
	hasher Hasher
	now    func() time.Time
}

// NewFernetSigner returns a FernetSigner for the given key. A zero
// algorithm selects DefaultAlgorithm.
func NewFernetSigner(key []byte, algorithm Algorithm) (*FernetSigner, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: key must not be empty", ErrInvalidKey)
	}
	hasher, err := algorithm.Hasher()
	if err != nil {
		return nil, err
	}

	return &FernetSigner{key: key, hasher: hasher, now: time.Now}, nil
}

// Signature returns the raw HMAC digest of value.
func (s *FernetSigner) Signature(value []byte) []byte {
	mac := hmac.New(s.hasher.New, s.key)
	mac.Write(value)
	return mac.Sum(nil)
}

// Sign prepends the version byte and big-endian timestamp to value and
// appends the HMAC of the resulting payload.
func (s *FernetSigner) Sign(value []byte, t time.Time) []byte {
	payload := make([]byte, 0, fernetHeaderSize+len(value)+s.hasher.Size)
	payload = append(payload, fernetVersion)
	payload = binary.BigEndian.AppendUint64(payload, uint64(t.Unix()))
	payload = append(payload, value...)

	mac := hmac.New(s.hasher.New, s.key)
	mac.Write(payload)
	return mac.Sum(payload)
}

// Unsign verifies a signed payload and returns the original value. The
// signature is checked before the timestamp, so expiry reveals nothing
// about payloads that were never authentic. Timestamps further than
// maxAge plus a 60 second clock skew from now, in either direction, are
// rejected. A zero maxAge skips the age check.
func (s *FernetSigner) Unsign(signedValue []byte, maxAge time.Duration) ([]byte, error) {
	if len(signedValue) < fernetHeaderSize+s.hasher.Size {
		return nil, fmt.Errorf("%w: signature is not valid", ErrBadSignature)
	}
	payload, sig := signedValue[:len(signedValue)-s.hasher.Size], signedValue[len(signedValue)-s.hasher.Size:]
	if !ConstantTimeCompare(sig, s.Signature(payload)) {
		return nil, fmt.Errorf(
			"%w: signature %q does not match",
			ErrBadSignature, base64.StdEncoding.EncodeToString(sig),
		)
	}
	if payload[0] != fernetVersion {
		return nil, fmt.Errorf("%w: signature version not supported", ErrBadSignature)
	}
	if maxAge != 0 {
		signedAt := time.Unix(int64(binary.BigEndian.Uint64(payload[1:fernetHeaderSize])), 0)
		age := s.now().Sub(signedAt)
		if age < 0 {
			age = -age
		}
		if age > maxAge+maxClockSkew {
			return nil, fmt.Errorf("%w: signature age %v > %v", ErrSignatureExpired, age, maxAge)
		}
	}
	return payload[fernetHeaderSize:], nil
}
