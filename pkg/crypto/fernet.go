package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"errors"
	"fmt"
	"time"
)

// FernetBytes encrypts byte payloads with AES-CBC and authenticates them
// with a FernetSigner. It is a modified version of the Fernet scheme that
// allows any AES key size instead of the base 128-bit.
type FernetBytes struct {
	block  cipher.Block
	signer *FernetSigner
}

// NewFernetBytes returns a cipher for the given AES key. The signer
// authenticates every token and its key is separate from the AES key.
func NewFernetBytes(key []byte, signer *FernetSigner) (*FernetBytes, error) {
	if signer == nil {
		return nil, errors.New("fernet: signer is required")
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return &FernetBytes{block: block, signer: signer}, nil
}

// Encrypt encrypts data under a fresh IV, stamped with the current time.
func (f *FernetBytes) Encrypt(data []byte) ([]byte, error) {
	return f.EncryptAtTime(data, time.Now())
}

// EncryptAtTime encrypts data with an explicit timestamp.
func (f *FernetBytes) EncryptAtTime(data []byte, t time.Time) ([]byte, error) {
	iv, err := RandomBytes(aes.BlockSize)
	if err != nil {
		return nil, err
	}
	return f.encrypt(data, t, iv), nil
}

// encrypt pads and encrypts data under the given iv and signs the result.
// The token layout matches the Python implementation:
// version, timestamp, iv, ciphertext, HMAC.
func (f *FernetBytes) encrypt(data []byte, t time.Time, iv []byte) []byte {
	padded := pkcs7Pad(data, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(f.block, iv).CryptBlocks(ciphertext, padded)

	payload := make([]byte, 0, len(iv)+len(ciphertext))
	payload = append(payload, iv...)
	payload = append(payload, ciphertext...)
	return f.signer.Sign(payload, t)
}

// Decrypt authenticates and decrypts a token. A non-zero ttl rejects
// tokens whose timestamp is further than ttl from now. Tokens that fail
// to decrypt after authenticating yield ErrInvalidToken without revealing
// which part was invalid.
func (f *FernetBytes) Decrypt(token []byte, ttl time.Duration) ([]byte, error) {
	data, err := f.signer.Unsign(token, ttl)
	if err != nil {
		return nil, err
	}
	if len(data) < aes.BlockSize || len(data)%aes.BlockSize != 0 {
		return nil, ErrInvalidToken
	}
	iv, ciphertext := data[:aes.BlockSize], data[aes.BlockSize:]
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(f.block, iv).CryptBlocks(plaintext, ciphertext)
	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return unpadded, nil
}

// fernetKeySize is the decoded size of a standard Fernet key: 16 bytes of
// signing key followed by 16 bytes of encryption key.
const fernetKeySize = 32

// Fernet implements the standard Fernet scheme on top of FernetBytes:
// keys and tokens are padded URL-safe base64 strings and the 32-byte key
// splits into signing and encryption halves.
type Fernet struct {
	fb *FernetBytes
}

// NewFernet returns a cipher for a key produced by GenerateKey.
func NewFernet(key string) (*Fernet, error) {
	raw, err := base64.URLEncoding.DecodeString(key)
	if err != nil || len(raw) != fernetKeySize {
		return nil, fmt.Errorf("%w: fernet key must be 32 url-safe base64-encoded bytes", ErrInvalidKey)
	}
	signer, err := NewFernetSigner(raw[:16], DefaultAlgorithm)
	if err != nil {
		return nil, err
	}
	fb, err := NewFernetBytes(raw[16:], signer)
	if err != nil {
		return nil, err
	}
	return &Fernet{fb: fb}, nil
}

// GenerateKey returns a fresh random key in the encoding NewFernet
// accepts.
func GenerateKey() (string, error) {
	key, err := RandomBytes(fernetKeySize)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(key), nil
}

// Encrypt returns a URL-safe base64 token for data, stamped with the
// current time.
func (f *Fernet) Encrypt(data []byte) (string, error) {
	token, err := f.fb.Encrypt(data)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(token), nil
}

// EncryptAtTime encrypts data with an explicit timestamp.
func (f *Fernet) EncryptAtTime(data []byte, t time.Time) (string, error) {
	token, err := f.fb.EncryptAtTime(data, t)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(token), nil
}

// Decrypt authenticates and decrypts a token produced by Encrypt. A
// non-zero ttl rejects tokens whose timestamp is further than ttl from
// now.
func (f *Fernet) Decrypt(token string, ttl time.Duration) ([]byte, error) {
	data, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return f.fb.Decrypt(data, ttl)
}
