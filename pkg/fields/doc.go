// Package fields provides encrypted column types for GORM models built
// on composition: a Field pairs a Codec for the Go value with a token
// cipher, and mints Encrypted values that encrypt themselves on write
// and decrypt on read through database/sql's Valuer and Scanner
// interfaces.
//
// Unlike the tag-driven plugin in pkg/crypto/store, which rewrites
// whole records in GORM callbacks, an Encrypted value carries its own
// configuration and works with plain database/sql as well. Values that
// are authentic but older than the field's TTL scan to the zero value
// with Expired set, so staleness is an outcome the caller inspects, not
// an error that aborts the query.
package fields
