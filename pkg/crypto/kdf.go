package crypto

import (
	"crypto/hmac"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// SaltedHMAC returns the HMAC of value, keyed from keySalt and secret.
//
// The HMAC key is a single hash pass over keySalt and secret. The hmac
// package would hash a key longer than the block size anyway; hashing
// unconditionally keeps the derived key independent of the key length.
//
// A different keySalt should be passed in for every application of HMAC.
func SaltedHMAC(keySalt, value, secret []byte, algorithm Algorithm) ([]byte, error) {
	hasher, err := algorithm.Hasher()
	if err != nil {
		return nil, err
	}

	mac := hmac.New(hasher.New, deriveHMACKey(hasher, keySalt, secret))
	mac.Write(value)
	return mac.Sum(nil), nil
}

func deriveHMACKey(hasher Hasher, keySalt, secret []byte) []byte {
	digest := hasher.New()
	digest.Write(keySalt)
	digest.Write(secret)
	return digest.Sum(nil)
}

// PBKDF2 derives a key of length dklen from the password. A dklen of 0
// selects the digest size of the algorithm. Leading zero bytes of the
// derived key are significant and never stripped.
func PBKDF2(password, salt []byte, iterations, dklen int, algorithm Algorithm) ([]byte, error) {
	hasher, err := algorithm.Hasher()
	if err != nil {
		return nil, err
	}
	if iterations <= 0 {
		return nil, fmt.Errorf("pbkdf2: iteration count %d out of range", iterations)
	}
	if dklen < 0 {
		return nil, fmt.Errorf("pbkdf2: derived key length %d out of range", dklen)
	}
	if dklen == 0 {
		dklen = hasher.Size
	}

	return pbkdf2.Key(password, salt, iterations, dklen, hasher.New), nil
}
