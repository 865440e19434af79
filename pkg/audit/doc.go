// Package audit provides audit logging for vault operations.
//
// This package implements structured audit logging for security-relevant
// operations such as entry reads, writes, and bulk imports.
//
// # Event Types
//
// The package defines event types for various operations:
//
//   - Entry set events
//   - Entry fetch events
//   - Entry delete events
//   - Listing events
//   - Bulk import events
//
// # Usage
//
//	audit.Log(audit.FetchEvent{
//	    User:    user,
//	    Key:     key,
//	    Success: true,
//	})
//
// Events are written to stdout in RFC5424 syslog format and, when
// AUDIT_DATABASE_URL is set, persisted to a messages table.
package audit
