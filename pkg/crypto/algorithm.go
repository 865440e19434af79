package crypto

//go:generate go run github.com/dmarkham/enumer -type Algorithm -trimprefix Algorithm -transform lower -yaml -text -output algorithm.gen.go

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"github.com/emmansun/gmsm/sm3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// Algorithm identifies a hash primitive accepted by the package. The zero
// value selects DefaultAlgorithm.
type Algorithm int

const (
	AlgorithmMD5 Algorithm = iota + 1
	AlgorithmSHA1
	AlgorithmSHA224
	AlgorithmSHA256
	AlgorithmSHA384
	AlgorithmSHA512
	AlgorithmSHA512_224
	AlgorithmSHA512_256
	AlgorithmSHA3_224
	AlgorithmSHA3_256
	AlgorithmSHA3_384
	AlgorithmSHA3_512
	AlgorithmBLAKE2b
	AlgorithmBLAKE2s
	AlgorithmSM3
)

// DefaultAlgorithm is used by signers and KDFs built without an explicit
// algorithm.
const DefaultAlgorithm = AlgorithmSHA256

// Hasher bundles a hash constructor with the sizes derived from it.
type Hasher struct {
	New       func() hash.Hash
	Size      int
	BlockSize int
}

var hashes = map[Algorithm]Hasher{
	AlgorithmMD5:        newHasher(md5.New),
	AlgorithmSHA1:       newHasher(sha1.New),
	AlgorithmSHA224:     newHasher(sha256.New224),
	AlgorithmSHA256:     newHasher(sha256.New),
	AlgorithmSHA384:     newHasher(sha512.New384),
	AlgorithmSHA512:     newHasher(sha512.New),
	AlgorithmSHA512_224: newHasher(sha512.New512_224),
	AlgorithmSHA512_256: newHasher(sha512.New512_256),
	AlgorithmSHA3_224:   newHasher(sha3.New224),
	AlgorithmSHA3_256:   newHasher(sha3.New256),
	AlgorithmSHA3_384:   newHasher(sha3.New384),
	AlgorithmSHA3_512:   newHasher(sha3.New512),
	AlgorithmBLAKE2b:    newHasher(newBLAKE2b),
	AlgorithmBLAKE2s:    newHasher(newBLAKE2s),
	AlgorithmSM3:        newHasher(sm3.New),
}

func newHasher(f func() hash.Hash) Hasher {
	h := f()
	return Hasher{New: f, Size: h.Size(), BlockSize: h.BlockSize()}
}

// The keyed constructors never fail with a nil key.

func newBLAKE2b() hash.Hash {
	h, _ := blake2b.New512(nil)
	return h
}

func newBLAKE2s() hash.Hash {
	h, _ := blake2s.New256(nil)
	return h
}

// Hasher resolves the algorithm, substituting DefaultAlgorithm for the
// zero value.
func (i Algorithm) Hasher() (Hasher, error) {
	if i == 0 {
		i = DefaultAlgorithm
	}
	h, ok := hashes[i]
	if !ok {
		return Hasher{}, fmt.Errorf("%w: %d is not an algorithm accepted by the cryptography module", ErrInvalidAlgorithm, int(i))
	}
	return h, nil
}

// ParseAlgorithm converts an algorithm name like "sha256" into an
// Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	algorithm, err := AlgorithmString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an algorithm accepted by the cryptography module", ErrInvalidAlgorithm, s)
	}
	return algorithm, nil
}
