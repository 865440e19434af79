// Package cryptoctl provides a Go port of Django's cryptography module.
//
// The toolkit wraps authenticated symmetric encryption (Fernet tokens),
// keyed signing for strings and structured objects, and an encrypted
// key-value vault backed by PostgreSQL.
//
// # Architecture
//
// The toolkit is organized into several packages:
//
//   - pkg/crypto: Cryptographic operations (Fernet tokens, signers, KDFs)
//   - pkg/crypto/store: GORM plugin encrypting tagged model fields at rest
//   - pkg/fields: Typed encrypted column values for model structs
//   - pkg/vault: Encrypted key-value store interface
//   - pkg/vault/gorm: GORM implementation of the vault store
//   - pkg/model: Database models
//   - pkg/db: Database connection utilities
//   - pkg/audit: Audit logging
//   - pkg/config: Configuration management
//
// # Quick Start
//
// The toolkit is run via the cryptoctl CLI:
//
//	# Configure the signing secret
//	export CRYPTOGRAPHY_SECRET="$(cryptoctl key generate)"
//
//	# Run database migrations
//	cryptoctl db migrate
//
//	# Store and retrieve an encrypted value
//	cryptoctl vault set db/password hunter2
//	cryptoctl vault get db/password
//
//	# Encrypt and sign without the vault
//	cryptoctl encrypt "attack at dawn"
//	cryptoctl sign "hello"
//
// # Environment Variables
//
//   - CRYPTOGRAPHY_SECRET: Signing secret and key derivation input
//   - CRYPTOGRAPHY_KEY: Optional key derivation input overriding the secret
//   - CRYPTOGRAPHY_SALT: Key derivation salt
//   - CRYPTOGRAPHY_DIGEST: Hash algorithm (default sha256)
//   - DATABASE_URL: PostgreSQL connection string
//   - AUDIT_DATABASE_URL: Optional audit database connection string
//   - CRYPTOGRAPHY_LOG_LEVEL: Log level (debug for SQL logging)
package main
