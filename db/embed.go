// Package db embeds the SQL migrations for the vault schema.
package db

import "embed"

// Migrations holds the SQL migration files applied by cryptoctl db migrate.
//
//go:embed migrations/*.sql
var Migrations embed.FS
