package crypto

import (
	"errors"
	"strings"
	"testing"
)

func TestParseAlgorithm(t *testing.T) {
	algorithm, err := ParseAlgorithm("sha256")
	if err != nil {
		t.Fatalf("ParseAlgorithm failed: %v", err)
	}
	if algorithm != AlgorithmSHA256 {
		t.Errorf("got %v, want %v", algorithm, AlgorithmSHA256)
	}

	// Lookups fall back to lower case
	if algorithm, _ := ParseAlgorithm("SHA512"); algorithm != AlgorithmSHA512 {
		t.Errorf("got %v, want %v", algorithm, AlgorithmSHA512)
	}

	_, err = ParseAlgorithm("whatever")
	if !errors.Is(err, ErrInvalidAlgorithm) {
		t.Fatalf("expected ErrInvalidAlgorithm, got %v", err)
	}
	if !strings.Contains(err.Error(), "is not an algorithm accepted by the cryptography module") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestAlgorithmHasherSizes(t *testing.T) {
	tests := []struct {
		algorithm Algorithm
		size      int
		blockSize int
	}{
		{AlgorithmMD5, 16, 64},
		{AlgorithmSHA1, 20, 64},
		{AlgorithmSHA224, 28, 64},
		{AlgorithmSHA256, 32, 64},
		{AlgorithmSHA384, 48, 128},
		{AlgorithmSHA512, 64, 128},
		{AlgorithmSHA512_224, 28, 128},
		{AlgorithmSHA512_256, 32, 128},
		{AlgorithmSHA3_224, 28, 144},
		{AlgorithmSHA3_256, 32, 136},
		{AlgorithmSHA3_384, 48, 104},
		{AlgorithmSHA3_512, 64, 72},
		{AlgorithmBLAKE2b, 64, 128},
		{AlgorithmBLAKE2s, 32, 64},
		{AlgorithmSM3, 32, 64},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm.String(), func(t *testing.T) {
			hasher, err := tt.algorithm.Hasher()
			if err != nil {
				t.Fatalf("Hasher failed: %v", err)
			}
			if hasher.Size != tt.size {
				t.Errorf("size = %d, want %d", hasher.Size, tt.size)
			}
			if hasher.BlockSize != tt.blockSize {
				t.Errorf("block size = %d, want %d", hasher.BlockSize, tt.blockSize)
			}
			if got := hasher.New().Size(); got != tt.size {
				t.Errorf("constructed hash size = %d, want %d", got, tt.size)
			}
		})
	}
}

func TestAlgorithmZeroValue(t *testing.T) {
	hasher, err := Algorithm(0).Hasher()
	if err != nil {
		t.Fatalf("Hasher failed: %v", err)
	}
	if hasher.Size != 32 {
		t.Errorf("zero algorithm should resolve to sha256, got size %d", hasher.Size)
	}
}

func TestAlgorithmString(t *testing.T) {
	if got := AlgorithmSHA512_224.String(); got != "sha512_224" {
		t.Errorf("got %q, want %q", got, "sha512_224")
	}
	for _, algorithm := range AlgorithmValues() {
		parsed, err := ParseAlgorithm(algorithm.String())
		if err != nil {
			t.Errorf("ParseAlgorithm(%q) failed: %v", algorithm.String(), err)
			continue
		}
		if parsed != algorithm {
			t.Errorf("ParseAlgorithm(%q) = %v, want %v", algorithm.String(), parsed, algorithm)
		}
	}
}
