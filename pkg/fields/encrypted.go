package fields

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/doodlesbykumbi/cryptography-in-go/pkg/crypto"
)

// Field configures an encrypted column of T: the codec for the value,
// the cipher that protects it, and an optional TTL after which reads
// report the value as expired. A Field is immutable once built and safe
// for concurrent use.
type Field[T any] struct {
	cipher *crypto.FernetBytes
	codec  Codec[T]
	ttl    time.Duration

	// algorithm is recorded for Spec when the field was rebuilt from
	// one; the cipher itself hides it.
	algorithm crypto.Algorithm
}

// FieldOption customizes a Field.
type FieldOption func(*fieldOptions)

type fieldOptions struct {
	ttl time.Duration
}

// WithTTL expires stored values d after they were written. Reads of
// older values yield the zero value with Expired set. Zero disables
// expiry.
func WithTTL(d time.Duration) FieldOption {
	return func(o *fieldOptions) {
		o.ttl = d
	}
}

// NewField builds a Field from a cipher and codec. A nil codec selects
// JSONCodec.
func NewField[T any](cipher *crypto.FernetBytes, codec Codec[T], opts ...FieldOption) (*Field[T], error) {
	if cipher == nil {
		return nil, errors.New("fields: a cipher is required")
	}
	if codec == nil {
		codec = JSONCodec[T]{}
	}
	var o fieldOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Field[T]{cipher: cipher, codec: codec, ttl: o.ttl}, nil
}

// TTL returns the configured expiry window, zero when disabled.
func (f *Field[T]) TTL() time.Duration {
	return f.ttl
}

// Wrap returns an Encrypted value for v, bound to this field's cipher
// and codec. The returned value is what a model struct stores.
func (f *Field[T]) Wrap(v T) Encrypted[T] {
	return Encrypted[T]{Plaintext: v, field: f}
}

// Encrypted is a column value that encrypts its plaintext on write and
// decrypts on read. It must be created through Field.Wrap so it carries
// the cipher and codec; scanning preserves that binding because
// database/sql and GORM scan into the existing value in place.
type Encrypted[T any] struct {
	// Plaintext is the decrypted value. Zero when Expired is set.
	Plaintext T

	// Expired reports that the stored token was authentic but older
	// than the field's TTL.
	Expired bool

	field *Field[T]
}

// Set replaces the plaintext and clears the expired flag.
func (e *Encrypted[T]) Set(v T) {
	e.Plaintext = v
	e.Expired = false
}

// Value implements driver.Valuer: the codec-encoded plaintext wrapped
// in a fernet token. Expired values refuse to write back; the caller
// must Set a fresh plaintext first.
func (e Encrypted[T]) Value() (driver.Value, error) {
	if e.field == nil {
		return nil, errUnbound
	}
	if e.Expired {
		return nil, errors.New("fields: refusing to store an expired value")
	}
	data, err := e.field.codec.Encode(e.Plaintext)
	if err != nil {
		return nil, fmt.Errorf("encode encrypted column: %w", err)
	}
	token, err := e.field.cipher.Encrypt(data)
	if err != nil {
		return nil, err
	}
	return token, nil
}

// Scan implements sql.Scanner. Tokens that fail authentication fail the
// scan; authentic tokens older than the field's TTL zero the plaintext
// and set Expired instead.
func (e *Encrypted[T]) Scan(src any) error {
	if e.field == nil {
		return errUnbound
	}

	var token []byte
	switch v := src.(type) {
	case nil:
		var zero T
		e.Plaintext = zero
		e.Expired = false
		return nil
	case []byte:
		token = v
	case string:
		token = []byte(v)
	default:
		return fmt.Errorf("fields: cannot scan %T into Encrypted", src)
	}

	data, err := e.field.cipher.Decrypt(token, e.field.ttl)
	if errors.Is(err, crypto.ErrSignatureExpired) {
		var zero T
		e.Plaintext = zero
		e.Expired = true
		return nil
	}
	if err != nil {
		return err
	}

	v, err := e.field.codec.Decode(data)
	if err != nil {
		return fmt.Errorf("decode encrypted column: %w", err)
	}
	e.Plaintext = v
	e.Expired = false
	return nil
}

// GormDataType tells GORM to map the column to its byte type.
func (Encrypted[T]) GormDataType() string {
	return "bytes"
}

var errUnbound = errors.New("fields: Encrypted value is not bound to a Field; use Field.Wrap")
