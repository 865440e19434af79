package fields

import (
	"time"

	"github.com/doodlesbykumbi/cryptography-in-go/pkg/crypto"
)

// FieldSpec describes a configured encrypted column as plain data, for
// recording in schema-migration logs. It is the composition analog of
// reconstructing a field from its constructor arguments: a spec plus a
// cipher rebuilds an equivalent Field.
type FieldSpec struct {
	// Codec is a name from the CodecName constants. Empty means json.
	Codec string `yaml:"codec" json:"codec"`

	// Algorithm is the hash behind the cipher's HMAC. The zero value
	// means the package default.
	Algorithm crypto.Algorithm `yaml:"algorithm,omitempty" json:"algorithm,omitempty"`

	// TTL is the expiry window in seconds, zero for none.
	TTL int64 `yaml:"ttl,omitempty" json:"ttl,omitempty"`
}

// Spec describes the field for persistence. Codecs that do not
// implement CodecNamer describe with an empty name and cannot be
// rebuilt by NewFieldFromSpec.
func (f *Field[T]) Spec() FieldSpec {
	spec := FieldSpec{
		Algorithm: f.algorithm,
		TTL:       int64(f.ttl / time.Second),
	}
	if n, ok := f.codec.(CodecNamer); ok {
		spec.Codec = n.CodecName()
	}
	return spec
}

// NewFieldFromSpec rebuilds a Field from its recorded spec. The cipher
// is supplied by the caller, built from the same key material and
// spec.Algorithm the original field used.
func NewFieldFromSpec[T any](spec FieldSpec, cipher *crypto.FernetBytes) (*Field[T], error) {
	codec, err := CodecFor[T](spec.Codec)
	if err != nil {
		return nil, err
	}
	f, err := NewField[T](cipher, codec, WithTTL(time.Duration(spec.TTL)*time.Second))
	if err != nil {
		return nil, err
	}
	f.algorithm = spec.Algorithm
	return f, nil
}
