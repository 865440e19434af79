// Package crypto provides symmetric encryption and signing primitives
// compatible with django-cryptography.
//
// This package implements the salted HMAC signers, the PBKDF2 key
// derivation and the Fernet-style authenticated encryption that
// django-cryptography builds on, so values signed or encrypted by one
// implementation verify and decrypt in the other.
//
// # Signing
//
// Signer produces URL-safe signed strings. TimestampSigner adds an
// expiring timestamp:
//
//	signer, err := crypto.NewTimestampSigner(key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	signed := signer.Sign("hello")
//
//	// Reject signatures older than an hour
//	value, err := signer.Unsign(signed, time.Hour)
//
// BytesSigner and FernetSigner work on byte payloads. FernetSigner keys
// the HMAC directly and stamps payloads with a version and timestamp.
//
// # Encryption
//
// FernetBytes encrypts byte payloads with AES-CBC and authenticates them
// with a FernetSigner. It accepts any AES key size. Fernet restricts keys
// to the standard 32-byte URL-safe base64 encoding and emits base64
// tokens:
//
//	fernet, err := crypto.NewFernet(key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	token, err := fernet.Encrypt([]byte("secret"))
//
//	// Reject tokens older than an hour
//	plaintext, err := fernet.Decrypt(token, time.Hour)
//
// # Object Signing
//
// Dumps and Loads sign serialized objects the way Django's signing
// module does, with optional zlib compression:
//
//	s, err := crypto.Dumps(obj, key, "", nil, false)
//
//	var out T
//	err = crypto.Loads(s, key, "", nil, 0, &out)
package crypto
