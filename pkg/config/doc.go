// Package config provides configuration management for the cryptography
// toolkit.
//
// This package handles loading and validating key material and vault
// configuration from environment variables and configuration files.
//
// # Configuration Sources
//
// Configuration is loaded from:
//
//   - Environment variables (primary)
//   - Configuration files (optional)
//
// # Key Configuration Options
//
//   - CRYPTOGRAPHY_SECRET: Signing secret and key derivation input
//   - CRYPTOGRAPHY_KEY: Optional key derivation input overriding the secret
//   - CRYPTOGRAPHY_SALT: Key derivation salt
//   - CRYPTOGRAPHY_DIGEST: Hash algorithm for signing and derivation
//   - CRYPTOGRAPHY_LOG_LEVEL: Logging verbosity
//   - DATABASE_URL: Database connection
package config
