package fields

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
)

// Codec converts a Go value to and from the bytes that get encrypted.
type Codec[T any] interface {
	Encode(v T) ([]byte, error)
	Decode(data []byte) (T, error)
}

// Stable codec names for FieldSpec serialization.
const (
	CodecNameJSON   = "json"
	CodecNameGob    = "gob"
	CodecNameString = "string"
	CodecNameBytes  = "bytes"
)

// CodecNamer is implemented by codecs that report a stable name. Field
// uses it to fill FieldSpec; codecs without one describe as "".
type CodecNamer interface {
	CodecName() string
}

// JSONCodec encodes values with encoding/json. It is the default codec,
// mirroring the JSONField backing of the Python implementation.
type JSONCodec[T any] struct{}

func (JSONCodec[T]) Encode(v T) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec[T]) Decode(data []byte) (T, error) {
	var v T
	err := json.Unmarshal(data, &v)
	return v, err
}

func (JSONCodec[T]) CodecName() string { return CodecNameJSON }

// GobCodec encodes values with encoding/gob. It stands in for the
// PickledField of the Python implementation; payloads are not
// interchangeable between the two.
type GobCodec[T any] struct{}

func (GobCodec[T]) Encode(v T) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (GobCodec[T]) Decode(data []byte) (T, error) {
	var v T
	err := gob.NewDecoder(bytes.NewReader(data)).Decode(&v)
	return v, err
}

func (GobCodec[T]) CodecName() string { return CodecNameGob }

// StringCodec passes strings through as UTF-8 bytes.
type StringCodec struct{}

func (StringCodec) Encode(v string) ([]byte, error) { return []byte(v), nil }

func (StringCodec) Decode(data []byte) (string, error) { return string(data), nil }

func (StringCodec) CodecName() string { return CodecNameString }

// BytesCodec passes byte slices through unchanged.
type BytesCodec struct{}

func (BytesCodec) Encode(v []byte) ([]byte, error) { return v, nil }

func (BytesCodec) Decode(data []byte) ([]byte, error) { return data, nil }

func (BytesCodec) CodecName() string { return CodecNameBytes }

// CodecFor resolves a codec name from a FieldSpec for the value type T.
// The json and gob codecs work for any T; string and bytes only for
// their own types.
func CodecFor[T any](name string) (Codec[T], error) {
	switch name {
	case CodecNameJSON, "":
		return JSONCodec[T]{}, nil
	case CodecNameGob:
		return GobCodec[T]{}, nil
	case CodecNameString:
		if c, ok := any(StringCodec{}).(Codec[T]); ok {
			return c, nil
		}
		return nil, fmt.Errorf("fields: codec %q requires a string value type", name)
	case CodecNameBytes:
		if c, ok := any(BytesCodec{}).(Codec[T]); ok {
			return c, nil
		}
		return nil, fmt.Errorf("fields: codec %q requires a []byte value type", name)
	}
	return nil, fmt.Errorf("fields: unknown codec %q", name)
}
