package crypto

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"testing"
	"time"
)

// deriveEncryptionKey mirrors the settings chain of the Python
// implementation: the encryption key is the secret run through PBKDF2
// under the default salt, iteration count and digest.
func deriveEncryptionKey(t *testing.T, secret string) []byte {
	t.Helper()
	key, err := PBKDF2([]byte(secret), []byte("django-cryptography"), 30000, 0, 0)
	if err != nil {
		t.Fatalf("PBKDF2 failed: %v", err)
	}
	return key
}

func TestDerivedEncryptionKey(t *testing.T) {
	key := deriveEncryptionKey(t, "django_tests_secret_key")
	want := "83c75905b45ce12bb61d2e883896d274c1790473186692519d076de55c49483c"
	if got := hex.EncodeToString(key); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestFernetBytesEncryptDecrypt(t *testing.T) {
	secret := "django_tests_secret_key"
	signer, err := NewFernetSigner([]byte(secret), 0)
	if err != nil {
		t.Fatalf("NewFernetSigner failed: %v", err)
	}
	fb, err := NewFernetBytes(deriveEncryptionKey(t, secret), signer)
	if err != nil {
		t.Fatalf("NewFernetBytes failed: %v", err)
	}

	value := []byte("hello")
	iv := []byte("0123456789abcdef")
	want := "8000000000075bcd15303132333435363738396162636465669a7ce822f47" +
		"33dd8ba87469b264d835c34b2892b06ec88098de6bcb6ca662f5e3240d5c2" +
		"f5af5728e6198c93a2888b78"

	token := fb.encrypt(value, time.Unix(123456789, 0), iv)
	if got := hex.EncodeToString(token); got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	got, err := fb.Decrypt(token, 0)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if !bytes.Equal(got, value) {
		t.Errorf("got %q, want %q", got, value)
	}
}

func TestFernetBytesInvalidToken(t *testing.T) {
	secret := "test_key"
	signer, err := NewFernetSigner([]byte(secret), 0)
	if err != nil {
		t.Fatalf("NewFernetSigner failed: %v", err)
	}
	fb, err := NewFernetBytes(deriveEncryptionKey(t, secret), signer)
	if err != nil {
		t.Fatalf("NewFernetBytes failed: %v", err)
	}

	// Both tokens carry a valid signature. The failure must come from
	// the cipher layer and must not reveal which part was invalid.
	tests := []struct {
		name string
		data string
	}{
		{
			// ciphertext is not a whole number of AES blocks
			"misaligned ciphertext",
			"8000000000075bcd153031323334353637383961626364656629b930b1955" +
				"ddaec2d74fb4ff565d549d94cc75de940d1d25507f30763f05c412390d15d" +
				"a26bccee69f1b4543e75",
		},
		{
			// ciphertext decrypts to a block with broken padding
			"invalid padding",
			"8000000000075bcd15303132333435363738396162636465660ecd40b0f64" +
				"8f001b78b5a77b334b40fbbff559444b3325233e71c24e53f6028116b0377" +
				"b910ebe5498396de36dee59b",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := hex.DecodeString(tt.data)
			if err != nil {
				t.Fatalf("bad test data: %v", err)
			}
			if _, err := fb.Decrypt(token, 0); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestFernetBytesRequiresSigner(t *testing.T) {
	if _, err := NewFernetBytes(make([]byte, 32), nil); err == nil {
		t.Error("expected an error for a nil signer")
	}
}

func TestFernetBytesRejectsBadKeySize(t *testing.T) {
	signer, err := NewFernetSigner([]byte("predictable-key"), 0)
	if err != nil {
		t.Fatalf("NewFernetSigner failed: %v", err)
	}
	if _, err := NewFernetBytes(make([]byte, 12), signer); err == nil {
		t.Error("expected an error for a 12-byte AES key")
	}
}

func TestFernetEncryptDecrypt(t *testing.T) {
	f, err := NewFernet("cw_0x689RpI-jtRR7oE8h_eQsKImvJapLeSbXpwF4e4=")
	if err != nil {
		t.Fatalf("NewFernet failed: %v", err)
	}

	value := []byte("hello")
	iv := []byte("0123456789abcdef")
	want := "gAAAAAAdwJ6wMDEyMzQ1Njc4OWFiY2RlZjYYKxzJY4VTm9YIi4" +
		"Pp6o_RvhRbEt-VW6a0zE-ys6tS1_2Xd2011mjXrVrMV0QfRA=="

	token := base64.URLEncoding.EncodeToString(f.fb.encrypt(value, time.Unix(499162800, 0), iv))
	if token != want {
		t.Errorf("got %s, want %s", token, want)
	}

	f.fb.signer.now = func() time.Time { return time.Unix(499162800, 0) }
	got, err := f.Decrypt(token, 60*time.Second)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if !bytes.Equal(got, value) {
		t.Errorf("got %q, want %q", got, value)
	}

	// The same token long after its timestamp
	f.fb.signer.now = func() time.Time { return time.Unix(123456789, 0) }
	if _, err := f.Decrypt(token, 60*time.Second); !errors.Is(err, ErrSignatureExpired) {
		t.Errorf("expected ErrSignatureExpired, got %v", err)
	}
}

func TestFernetDefaultKeyChain(t *testing.T) {
	// A settings-derived encryption key paired with a raw-secret signer
	// produces the same tokens as the Python implementation configured
	// with only a SECRET_KEY.
	secret := "django_tests_secret_key"
	signer, err := NewFernetSigner([]byte(secret), 0)
	if err != nil {
		t.Fatalf("NewFernetSigner failed: %v", err)
	}
	fb, err := NewFernetBytes(deriveEncryptionKey(t, secret), signer)
	if err != nil {
		t.Fatalf("NewFernetBytes failed: %v", err)
	}

	value := []byte("hello")
	iv := []byte("0123456789abcdef")
	want := "gAAAAAAdwJ6wMDEyMzQ1Njc4OWFiY2RlZpp86CL0cz3YuodGmy" +
		"ZNg1zHC5ForoIhr0F33y_CAv2hNHxmx-ZBcM7FK-Fimskaww=="

	token := base64.URLEncoding.EncodeToString(fb.encrypt(value, time.Unix(499162800, 0), iv))
	if token != want {
		t.Errorf("got %s, want %s", token, want)
	}
}

func TestFernetBadKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"not base64", "not base64!"},
		{"wrong size", base64.URLEncoding.EncodeToString(make([]byte, 16))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewFernet(tt.key); !errors.Is(err, ErrInvalidKey) {
				t.Errorf("expected ErrInvalidKey, got %v", err)
			}
		})
	}
}

func TestFernetInvalidTokenType(t *testing.T) {
	f, err := NewFernet("cw_0x689RpI-jtRR7oE8h_eQsKImvJapLeSbXpwF4e4=")
	if err != nil {
		t.Fatalf("NewFernet failed: %v", err)
	}
	if _, err := f.Decrypt("Hi", 0); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestGenerateKey(t *testing.T) {
	key, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}
	f, err := NewFernet(key)
	if err != nil {
		t.Fatalf("NewFernet rejected a generated key: %v", err)
	}

	value := []byte("hello")
	token, err := f.Encrypt(value)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	got, err := f.Decrypt(token, 0)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if !bytes.Equal(got, value) {
		t.Errorf("got %q, want %q", got, value)
	}

	// A fresh IV is drawn on every call
	token2, err := f.Encrypt(value)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if token == token2 {
		t.Error("two encryptions of the same value produced the same token")
	}
}
