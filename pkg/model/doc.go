// Package model defines the database models for the vault.
//
// This package contains GORM models that map to the PostgreSQL schema
// created by db/migrations. The schema is designed to be compatible with
// the tables the Python implementation manages through Django.
//
// # Core Models
//
//   - Entry: A named value with an optional TTL, encrypted at rest
//
// # Database Schema
//
// The database uses PostgreSQL with the following key tables:
//
//   - entries: Vault entries, with the value column holding fernet tokens
//   - django_migrations: Migration bookkeeping shared with Django
//   - go_schema_migrations: golang-migrate bookkeeping
//
// Models carry no encryption logic themselves. Fields tagged
// `fernet:"encrypted"` are sealed and opened by the crypto/store plugin
// registered on the *gorm.DB.
package model
