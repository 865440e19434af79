// Package gorm provides the GORM-based implementation of the store
// interface defined in the parent vault package.
//
// This package contains the concrete implementation that uses GORM for
// database operations. Encryption at rest comes from the fernet store
// plugin registered on the *gorm.DB, so the store itself only moves
// plaintext through model.Entry records.
package gorm
