// Package vault defines the storage abstraction for encrypted entries.
//
// This package declares the Store interface and the Entry type it returns,
// allowing the CLI commands to be decoupled from the specific database
// implementation. This enables easier testing with mocks and potential
// support for different storage backends.
//
// Values passed to a Store are plaintext. Implementations are expected to
// encrypt at rest; the GORM implementation does so through the fernet
// store plugin.
//
// # Semantics
//
//   - Set replaces any previous value under the key and resets its TTL
//   - Get reports ErrEntryNotFound for missing keys and ErrEntryExpired
//     for keys whose TTL has lapsed
//   - List returns entry metadata only, never values
//   - Delete reports ErrEntryNotFound for missing keys
//   - Import applies a whole map of entries in one transaction
//
// # Usage
//
//	store := gorm.NewStore(db)
//	if err := store.Set("api-key", []byte("t0k3n"), time.Hour); err != nil {
//	    // Handle write failure
//	}
//	entry, err := store.Get("api-key")
//	if err != nil {
//	    if errors.Is(err, vault.ErrEntryExpired) {
//	        // Authentic but stale
//	    }
//	}
package vault
