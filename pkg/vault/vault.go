package vault

import (
	"errors"
	"time"
)

// ErrEntryNotFound is returned when an entry doesn't exist
var ErrEntryNotFound = errors.New("entry not found")

// ErrEntryExpired is returned when an entry's value has expired
var ErrEntryExpired = errors.New("entry has expired")

// Entry represents a stored value with metadata
type Entry struct {
	Key       string
	Value     []byte
	TTL       time.Duration
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store abstracts encrypted entry storage operations
type Store interface {
	// Set stores a value under key, replacing any previous value. A
	// non-zero ttl bounds how long reads return the value.
	Set(key string, value []byte, ttl time.Duration) error

	// Get retrieves the value stored under key.
	// Returns ErrEntryNotFound if the entry doesn't exist.
	// Returns ErrEntryExpired if the entry's value has expired.
	Get(key string) (*Entry, error)

	// List returns the metadata of every entry, without values.
	List() ([]Entry, error)

	// Delete removes the entry stored under key.
	// Returns ErrEntryNotFound if the entry doesn't exist.
	Delete(key string) error

	// Import stores every pair in entries, replacing existing values.
	Import(entries map[string]string) error
}
