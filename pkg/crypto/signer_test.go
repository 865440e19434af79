package crypto

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestSignerSignature(t *testing.T) {
	signer, err := NewSigner([]byte("predictable-secret"))
	if err != nil {
		t.Fatalf("NewSigner failed: %v", err)
	}
	signer2, err := NewSigner([]byte("predictable-secret2"))
	if err != nil {
		t.Fatalf("NewSigner failed: %v", err)
	}

	for _, s := range []string{
		"hello",
		"3098247:529:087:",
		"’",
	} {
		mac, err := SaltedHMAC(
			[]byte(defaultSignerSalt+"signer"), []byte(s), []byte("predictable-secret"), AlgorithmSHA256,
		)
		if err != nil {
			t.Fatalf("SaltedHMAC failed: %v", err)
		}
		want := base64.RawURLEncoding.EncodeToString(mac)
		if got := signer.Signature(s); got != want {
			t.Errorf("Signature(%q) = %q, want %q", s, got, want)
		}
		if signer.Signature(s) == signer2.Signature(s) {
			t.Errorf("signatures under different keys should differ for %q", s)
		}
	}
}

func TestSignerSignatureWithSalt(t *testing.T) {
	signer, err := NewSigner([]byte("predictable-secret"), WithSalt("extra-salt"))
	if err != nil {
		t.Fatalf("NewSigner failed: %v", err)
	}
	mac, err := SaltedHMAC(
		[]byte("extra-salt"+"signer"), []byte("hello"), []byte("predictable-secret"), AlgorithmSHA256,
	)
	if err != nil {
		t.Fatalf("SaltedHMAC failed: %v", err)
	}
	if got, want := signer.Signature("hello"), base64.RawURLEncoding.EncodeToString(mac); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	one, _ := NewSigner([]byte("predictable-secret"), WithSalt("one"))
	two, _ := NewSigner([]byte("predictable-secret"), WithSalt("two"))
	if one.Signature("hello") == two.Signature("hello") {
		t.Error("signatures under different salts should differ")
	}
}

func TestSignerCustomAlgorithm(t *testing.T) {
	signer, err := NewSigner([]byte("predictable-secret"), WithAlgorithm(AlgorithmSHA512))
	if err != nil {
		t.Fatalf("NewSigner failed: %v", err)
	}
	want := "39g7myx24wdsEj07XSFiTNoGIzdolUgcHk-ynx3nGA8HP-y01_2HLRJIqhNIlkvfb" +
		"2wKijVMry1wHKIo66TSTw"
	if got := signer.Signature("hello"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSignerInvalidAlgorithm(t *testing.T) {
	_, err := NewSigner([]byte("predictable-secret"), WithAlgorithm(Algorithm(99)))
	if !errors.Is(err, ErrInvalidAlgorithm) {
		t.Errorf("expected ErrInvalidAlgorithm, got %v", err)
	}
}

func TestSignerSignUnsign(t *testing.T) {
	signer, err := NewSigner([]byte("predictable-secret"))
	if err != nil {
		t.Fatalf("NewSigner failed: %v", err)
	}
	examples := []string{
		"q;wjmbk;wkmb",
		"3098247529087",
		"3098247:529:087:",
		"jkw osanteuh ,rcuh nthu aou oauh ,ud du",
		"’",
	}
	for _, example := range examples {
		signed := signer.Sign(example)
		if signed == example {
			t.Errorf("signing should change the value %q", example)
		}
		got, err := signer.Unsign(signed)
		if err != nil {
			t.Errorf("Unsign(%q) failed: %v", signed, err)
			continue
		}
		if got != example {
			t.Errorf("got %q, want %q", got, example)
		}
	}
}

func TestSignerUnsignDetectsTampering(t *testing.T) {
	signer, err := NewSigner([]byte("predictable-secret"))
	if err != nil {
		t.Fatalf("NewSigner failed: %v", err)
	}
	value := "Another string"
	signedValue := signer.Sign(value)

	got, err := signer.Unsign(signedValue)
	if err != nil || got != value {
		t.Fatalf("Unsign of untouched value failed: %v", err)
	}

	transforms := []struct {
		name      string
		transform func(string) string
	}{
		{"uppercased", strings.ToUpper},
		{"suffix appended", func(s string) string { return s + "a" }},
		{"first byte changed", func(s string) string { return "a" + s[1:] }},
		{"separator removed", func(s string) string { return strings.ReplaceAll(s, ":", "") }},
	}
	for _, tt := range transforms {
		t.Run(tt.name, func(t *testing.T) {
			_, err := signer.Unsign(tt.transform(signedValue))
			if !errors.Is(err, ErrBadSignature) {
				t.Errorf("expected ErrBadSignature, got %v", err)
			}
		})
	}
}

func TestSignerWorksWithNonASCIIKeys(t *testing.T) {
	signer, err := NewSigner([]byte{0xe7})
	if err != nil {
		t.Fatalf("NewSigner failed: %v", err)
	}
	if got, want := signer.Sign("foo"), "foo:fc5zKyRI0Ktcf8db752abovGMa_u2CW9kPCaw5Znhag"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSignerValidSep(t *testing.T) {
	for _, sep := range []string{"/", "*sep*", ","} {
		signer, err := NewSigner([]byte("predictable-secret"), WithSep(sep))
		if err != nil {
			t.Errorf("NewSigner with sep %q failed: %v", sep, err)
			continue
		}
		want := "foo" + sep + "LQ8wXoKVFLoLwqvrZsOL9FWEwOy1XDzvduylmAZwNaI"
		if got := signer.Sign("foo"); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestSignerInvalidSep(t *testing.T) {
	for _, sep := range []string{"", "-", "abc"} {
		_, err := NewSigner([]byte("predictable-secret"), WithSep(sep))
		if !errors.Is(err, ErrUnsafeSeparator) {
			t.Errorf("expected ErrUnsafeSeparator for %q, got %v", sep, err)
		}
	}
}

func TestSignerEmptyKey(t *testing.T) {
	if _, err := NewSigner(nil); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}
