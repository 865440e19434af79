package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validChangelog = `# Changelog

All notable changes to this project will be documented in this file.

The format is based on [Keep a Changelog](https://keepachangelog.com/en/1.1.0/),
and this project adheres to [Semantic Versioning](https://semver.org/spec/v2.0.0.html).

## [Unreleased]

### Added
- Vault watch command

## [1.0.0] - 2026-04-15

### Added
- Fernet token encryption and decryption
- Keyed signers with timestamp support

### Fixed
- PKCS7 padding validation on short tokens

## [0.2.0] - 2026-02-20 [YANKED]

### Added
- Encrypted vault backed by PostgreSQL

## [0.1.0] - 2026-01-14

### Added
- Initial release

[Unreleased]: https://github.com/doodlesbykumbi/cryptography-in-go/compare/v1.0.0...HEAD
[1.0.0]: https://github.com/doodlesbykumbi/cryptography-in-go/compare/v0.2.0...v1.0.0
[0.2.0]: https://github.com/doodlesbykumbi/cryptography-in-go/compare/v0.1.0...v0.2.0
[0.1.0]: https://github.com/doodlesbykumbi/cryptography-in-go/releases/tag/v0.1.0
`

func TestParse(t *testing.T) {
	changelog, err := Parse([]byte(validChangelog))
	require.NoError(t, err)
	require.Len(t, changelog.Releases, 4)

	assert.Equal(t, "Changelog", changelog.Title)

	// Check first release (Unreleased)
	assert.Equal(t, "Unreleased", changelog.Releases[0].Version)
	assert.Empty(t, changelog.Releases[0].Date)

	// Check second release (1.0.0)
	release := changelog.Releases[1]
	assert.Equal(t, "1.0.0", release.Version)
	assert.Equal(t, "2026-04-15", release.Date)
	assert.False(t, release.Yanked)
	require.Len(t, release.Sections, 2)
	assert.Equal(t, "Added", release.Sections[0].Type)
	assert.Equal(t, []string{
		"Fernet token encryption and decryption",
		"Keyed signers with timestamp support",
	}, release.Sections[0].Items)
	assert.Equal(t, "Fixed", release.Sections[1].Type)

	// Check links
	assert.Len(t, changelog.Links, 4)
	assert.Equal(t,
		"https://github.com/doodlesbykumbi/cryptography-in-go/compare/v0.2.0...v1.0.0",
		changelog.Links["1.0.0"],
	)
}

func TestParseYanked(t *testing.T) {
	changelog, err := Parse([]byte(validChangelog))
	require.NoError(t, err)

	release := changelog.Release("0.2.0")
	require.NotNil(t, release)
	assert.True(t, release.Yanked)
	assert.Equal(t, "2026-02-20", release.Date)
}

func TestRelease(t *testing.T) {
	changelog, _ := Parse([]byte(validChangelog))

	tests := []struct {
		name     string
		version  string
		expected string
	}{
		{"exact version", "1.0.0", "1.0.0"},
		{"with v prefix", "v1.0.0", "1.0.0"},
		{"older version", "0.1.0", "0.1.0"},
		{"unreleased", "Unreleased", "Unreleased"},
		{"non-existent", "2.0.0", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			release := changelog.Release(tt.version)
			if tt.expected == "" {
				assert.Nil(t, release)
			} else {
				require.NotNil(t, release)
				assert.Equal(t, tt.expected, release.Version)
			}
		})
	}
}

func TestLatest(t *testing.T) {
	changelog, _ := Parse([]byte(validChangelog))

	release := changelog.Latest()
	require.NotNil(t, release)
	assert.Equal(t, "1.0.0", release.Version)
}

func TestLatestNoReleases(t *testing.T) {
	changelog, _ := Parse([]byte("# Changelog\n\n## [Unreleased]\n"))
	assert.Nil(t, changelog.Latest())
}

func TestValidate_Valid(t *testing.T) {
	result := Validate([]byte(validChangelog))
	assert.True(t, result.IsValid(), "Expected valid changelog, got errors: %v", result.Errors)
}

func TestValidate_MissingTitle(t *testing.T) {
	changelog := `## [Unreleased]

## [1.0.0] - 2026-04-15

### Added
- Something

[Unreleased]: https://example.com
[1.0.0]: https://example.com
`
	result := Validate([]byte(changelog))
	assert.False(t, result.IsValid())
	assert.True(t, hasError(result, "Missing changelog title (# Changelog)"))
}

func TestValidate_MissingUnreleased(t *testing.T) {
	changelog := `# Changelog

## [1.0.0] - 2026-04-15

### Added
- Something

[1.0.0]: https://example.com
`
	result := Validate([]byte(changelog))
	assert.False(t, result.IsValid())
	assert.True(t, hasError(result, "Missing [Unreleased] section"))
}

func TestValidate_InvalidDate(t *testing.T) {
	changelog := `# Changelog

## [Unreleased]

## [1.0.0] - 15-04-2026

### Added
- Something

[Unreleased]: https://example.com
[1.0.0]: https://example.com
`
	result := Validate([]byte(changelog))
	assert.False(t, result.IsValid())
	assert.True(t, hasErrorContaining(result, "ISO 8601"))
}

func TestValidate_InvalidChangeType(t *testing.T) {
	changelog := `# Changelog

## [Unreleased]

### New
- Something

[Unreleased]: https://example.com
`
	result := Validate([]byte(changelog))
	assert.False(t, result.IsValid())
	assert.True(t, hasErrorContaining(result, "Invalid change type"))
}

func TestValidate_MissingLinkDefinition(t *testing.T) {
	changelog := `# Changelog

## [Unreleased]

## [1.0.0] - 2026-04-15

### Added
- Something
`
	result := Validate([]byte(changelog))
	assert.False(t, result.IsValid())
	assert.True(t, hasErrorContaining(result, "Missing link definition for [Unreleased]"))
	assert.True(t, hasErrorContaining(result, "Missing link definition for version [1.0.0]"))
}

func TestValidate_DuplicateVersion(t *testing.T) {
	changelog := `# Changelog

## [Unreleased]

## [1.0.0] - 2026-04-15

## [1.0.0] - 2026-04-15

[Unreleased]: https://example.com
[1.0.0]: https://example.com
`
	result := Validate([]byte(changelog))
	assert.False(t, result.IsValid())
	assert.True(t, hasErrorContaining(result, "Duplicate entry for version '1.0.0'"))
}

func TestValidate_VersionsOutOfOrder(t *testing.T) {
	changelog := `# Changelog

## [Unreleased]

## [0.1.0] - 2026-01-14

## [1.0.0] - 2026-04-15

[Unreleased]: https://example.com
[0.1.0]: https://example.com
[1.0.0]: https://example.com
`
	result := Validate([]byte(changelog))
	assert.False(t, result.IsValid())
	assert.True(t, hasErrorContaining(result, "Versions out of order"))
}

func hasError(result *ValidationResult, message string) bool {
	for _, e := range result.Errors {
		if e.Message == message {
			return true
		}
	}
	return false
}

func hasErrorContaining(result *ValidationResult, substr string) bool {
	for _, e := range result.Errors {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
