package integration

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"gopkg.in/yaml.v3"

	"github.com/doodlesbykumbi/cryptography-in-go/pkg/vault"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc      *TestContext
	lastErr error
	value   []byte
	entries []vault.Entry
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{tc: tc}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	// Background steps
	sc.Step(`^the vault is empty$`, s.theVaultIsEmpty)

	// Entry steps
	sc.Step(`^I set "([^"]*)" to "([^"]*)"$`, s.iSetTo)
	sc.Step(`^I set "([^"]*)" to "([^"]*)" expiring after "([^"]*)"$`, s.iSetToExpiringAfter)
	sc.Step(`^I get "([^"]*)"$`, s.iGet)
	sc.Step(`^I delete "([^"]*)"$`, s.iDelete)
	sc.Step(`^I import the following entries:$`, s.iImportTheFollowingEntries)
	sc.Step(`^I list the entries$`, s.iListTheEntries)

	// Assertion steps
	sc.Step(`^the value should be "([^"]*)"$`, s.theValueShouldBe)
	sc.Step(`^the operation should succeed$`, s.theOperationShouldSucceed)
	sc.Step(`^the operation should fail with "([^"]*)"$`, s.theOperationShouldFailWith)
	sc.Step(`^I should see (\d+) entries$`, s.iShouldSeeEntries)
	sc.Step(`^the listing should carry no values$`, s.theListingShouldCarryNoValues)

	// At-rest steps
	sc.Step(`^the stored bytes for "([^"]*)" should not contain "([^"]*)"$`, s.theStoredBytesShouldNotContain)
	sc.Step(`^I corrupt the stored bytes for "([^"]*)"$`, s.iCorruptTheStoredBytesFor)
	sc.Step(`^the token for "([^"]*)" was signed "([^"]*)" ago$`, s.theTokenWasSignedAgo)
}

// Background steps

func (s *StepsContext) theVaultIsEmpty() error {
	s.lastErr = nil
	s.value = nil
	s.entries = nil
	_, err := s.tc.RawDB.Exec(`DELETE FROM entries`)
	return err
}

// Entry steps

func (s *StepsContext) iSetTo(key, value string) error {
	s.lastErr = s.tc.Store.Set(key, []byte(value), 0)
	return nil
}

func (s *StepsContext) iSetToExpiringAfter(key, value, ttl string) error {
	d, err := time.ParseDuration(ttl)
	if err != nil {
		return fmt.Errorf("bad ttl %q: %w", ttl, err)
	}
	s.lastErr = s.tc.Store.Set(key, []byte(value), d)
	return nil
}

func (s *StepsContext) iGet(key string) error {
	entry, err := s.tc.Store.Get(key)
	s.lastErr = err
	s.value = nil
	if entry != nil {
		s.value = entry.Value
	}
	return nil
}

func (s *StepsContext) iDelete(key string) error {
	s.lastErr = s.tc.Store.Delete(key)
	return nil
}

func (s *StepsContext) iImportTheFollowingEntries(doc *godog.DocString) error {
	var entries map[string]string
	if err := yaml.Unmarshal([]byte(doc.Content), &entries); err != nil {
		return fmt.Errorf("failed to parse entries: %w", err)
	}
	s.lastErr = s.tc.Store.Import(entries)
	return nil
}

func (s *StepsContext) iListTheEntries() error {
	entries, err := s.tc.Store.List()
	s.lastErr = err
	s.entries = entries
	return nil
}

// Assertion steps

func (s *StepsContext) theValueShouldBe(expected string) error {
	if s.lastErr != nil {
		return fmt.Errorf("last operation failed: %v", s.lastErr)
	}
	if string(s.value) != expected {
		return fmt.Errorf("expected value %q, got %q", expected, string(s.value))
	}
	return nil
}

func (s *StepsContext) theOperationShouldSucceed() error {
	if s.lastErr != nil {
		return fmt.Errorf("expected success, got: %v", s.lastErr)
	}
	return nil
}

func (s *StepsContext) theOperationShouldFailWith(message string) error {
	if s.lastErr == nil {
		return fmt.Errorf("expected failure containing %q, got success", message)
	}
	if !strings.Contains(s.lastErr.Error(), message) {
		return fmt.Errorf("expected failure containing %q, got: %v", message, s.lastErr)
	}
	return nil
}

func (s *StepsContext) iShouldSeeEntries(count int) error {
	if s.lastErr != nil {
		return fmt.Errorf("listing failed: %v", s.lastErr)
	}
	if len(s.entries) != count {
		return fmt.Errorf("expected %d entries, got %d", count, len(s.entries))
	}
	return nil
}

func (s *StepsContext) theListingShouldCarryNoValues() error {
	for _, entry := range s.entries {
		if entry.Value != nil {
			return fmt.Errorf("entry %s carries a value", entry.Key)
		}
	}
	return nil
}

// At-rest steps

func (s *StepsContext) theStoredBytesShouldNotContain(key, plaintext string) error {
	stored, err := s.storedBytes(key)
	if err != nil {
		return err
	}
	if bytes.Contains(stored, []byte(plaintext)) {
		return fmt.Errorf("stored bytes for %s carry the plaintext", key)
	}
	return nil
}

func (s *StepsContext) iCorruptTheStoredBytesFor(key string) error {
	stored, err := s.storedBytes(key)
	if err != nil {
		return err
	}
	if len(stored) == 0 {
		return fmt.Errorf("no stored bytes for %s", key)
	}

	stored[len(stored)-1] ^= 0xff
	_, err = s.tc.RawDB.Exec(`UPDATE entries SET value = $1 WHERE key = $2`, stored, key)
	return err
}

// theTokenWasSignedAgo re-signs the stored token with a timestamp in the
// past. Token age drives expiry, and the signing clock allows 60 seconds
// of skew, so tests age the token instead of sleeping through the window.
func (s *StepsContext) theTokenWasSignedAgo(key, ago string) error {
	d, err := time.ParseDuration(ago)
	if err != nil {
		return fmt.Errorf("bad duration %q: %w", ago, err)
	}
	stored, err := s.storedBytes(key)
	if err != nil {
		return err
	}
	plaintext, err := s.tc.Cipher.Decrypt(stored, 0)
	if err != nil {
		return fmt.Errorf("failed to decrypt stored token for %s: %w", key, err)
	}
	backdated, err := s.tc.Cipher.EncryptAtTime(plaintext, time.Now().Add(-d))
	if err != nil {
		return fmt.Errorf("failed to re-encrypt token for %s: %w", key, err)
	}
	_, err = s.tc.RawDB.Exec(`UPDATE entries SET value = $1 WHERE key = $2`, backdated, key)
	return err
}

// storedBytes reads the raw value column, bypassing the fernet plugin
func (s *StepsContext) storedBytes(key string) ([]byte, error) {
	var stored []byte
	err := s.tc.RawDB.QueryRow(`SELECT value FROM entries WHERE key = $1`, key).Scan(&stored)
	if err != nil {
		return nil, fmt.Errorf("failed to read stored bytes for %s: %w", key, err)
	}
	return stored, nil
}
