// Package store provides a GORM plugin that transparently encrypts and
// decrypts model fields tagged `fernet:"encrypted"`. A companion
// `fernet:"ttl"` field supplies the decryption max age in seconds, and a
// `fernet:"expired"` bool field reports values that were authentic but
// stale instead of failing the whole query.
package store

import (
	"encoding/base64"
	"errors"
	"reflect"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/doodlesbykumbi/cryptography-in-go/pkg/crypto"
)

const (
	tagKey       = "fernet"
	tagEncrypted = "encrypted"
	tagTTL       = "ttl"
	tagExpired   = "expired"
)

type options struct {
	// The cipher used for encrypt/decrypt operations
	cipher *crypto.FernetBytes
}

// ApplyOption applies a given set of supplied options
type ApplyOption func(o *options)

// WithCipher applies the supplied cipher to the options for use in
// encryption/decryption
func WithCipher(cipher *crypto.FernetBytes) ApplyOption {
	return func(o *options) {
		o.cipher = cipher
	}
}

func defaultOptions() *options {
	return new(options)
}

type fernetPlugin struct {
	opt *options
}

// NewPlugin constructs the column encryption plugin. It encrypts all
// tagged fields before write and decrypts them after read.
func NewPlugin(opts ...ApplyOption) gorm.Plugin {
	dst := defaultOptions()

	for _, apply := range opts {
		apply(dst)
	}

	return fernetPlugin{
		opt: dst,
	}
}

func (p fernetPlugin) Name() string {
	return "fernet"
}

func (p fernetPlugin) Initialize(db *gorm.DB) error {
	if p.opt.cipher == nil {
		return errors.New("fernet: plugin requires a cipher")
	}

	db.Callback().Create().Before("gorm:create").Register("fernet:before_create", p.encryptRecords)
	db.Callback().Create().After("gorm:create").Register("fernet:after_create", p.decryptRecords)
	db.Callback().Update().Before("gorm:update").Register("fernet:before_update", p.encryptRecords)
	db.Callback().Query().After("gorm:query").Register("fernet:after_query", p.decryptRecords)

	return nil
}

type fieldProcessor func(db *gorm.DB, reflectValue reflect.Value, dataDestination map[string]interface{})

func (p fernetPlugin) encryptRecords(db *gorm.DB) {
	p.processRecords(db, p.encryptFields)
}

func (p fernetPlugin) decryptRecords(db *gorm.DB) {
	p.processRecords(db, p.decryptFields)
}

func (p fernetPlugin) processRecords(db *gorm.DB, fn fieldProcessor) {
	if db.Statement.Schema == nil {
		return
	}
	switch db.Statement.ReflectValue.Kind() {
	case reflect.Struct:
		var destMap map[string]interface{}
		if dest, ok := db.Statement.Dest.(map[string]interface{}); ok {
			destMap = dest
		}
		fn(db, db.Statement.ReflectValue, destMap)
	case reflect.Slice, reflect.Array:
		var destMapList []map[string]interface{}
		if dest, ok := db.Statement.Dest.([]map[string]interface{}); ok {
			destMapList = dest
		}
		for i := 0; i < db.Statement.ReflectValue.Len(); i++ {
			var destMap map[string]interface{}
			if i < len(destMapList) {
				destMap = destMapList[i]
			}
			fn(db, db.Statement.ReflectValue.Index(i), destMap)
		}
	}
}

// encryptFields replaces tagged plaintext fields with fernet tokens.
// Byte fields hold the binary token; string fields hold its padded
// URL-safe base64 form.
func (p fernetPlugin) encryptFields(db *gorm.DB, reflectValue reflect.Value, dataDestination map[string]interface{}) {
	for _, field := range db.Statement.Schema.Fields {
		if field.Tag.Get(tagKey) != tagEncrypted {
			continue
		}
		fieldValue, isZero := field.ValueOf(reflectValue)
		if isZero {
			continue
		}

		switch {
		case field.FieldType.Kind() == reflect.String:
			token, err := p.opt.cipher.Encrypt([]byte(fieldValue.(string)))
			if err != nil {
				_ = db.AddError(err)
				continue
			}
			p.setField(db, field, reflectValue, dataDestination, base64.URLEncoding.EncodeToString(token))
		case isByteSlice(field.FieldType):
			token, err := p.opt.cipher.Encrypt(fieldValue.([]byte))
			if err != nil {
				_ = db.AddError(err)
				continue
			}
			p.setField(db, field, reflectValue, dataDestination, token)
		default:
			_ = db.AddError(errUnsupportedField(field.Name))
		}
	}
}

// decryptFields restores tagged fields to plaintext. Values that fail
// authentication abort the query; values that are authentic but older
// than the record's ttl are zeroed and flagged on the expired field.
func (p fernetPlugin) decryptFields(db *gorm.DB, reflectValue reflect.Value, dataDestination map[string]interface{}) {
	ttl := recordTTL(db, reflectValue)

	for _, field := range db.Statement.Schema.Fields {
		if field.Tag.Get(tagKey) != tagEncrypted {
			continue
		}
		fieldValue, isZero := field.ValueOf(reflectValue)
		if isZero {
			continue
		}

		var token []byte
		switch {
		case field.FieldType.Kind() == reflect.String:
			decoded, err := base64.URLEncoding.DecodeString(fieldValue.(string))
			if err != nil {
				_ = db.AddError(crypto.ErrInvalidToken)
				continue
			}
			token = decoded
		case isByteSlice(field.FieldType):
			token = fieldValue.([]byte)
		default:
			_ = db.AddError(errUnsupportedField(field.Name))
			continue
		}

		data, err := p.opt.cipher.Decrypt(token, ttl)
		switch {
		case errors.Is(err, crypto.ErrSignatureExpired):
			p.setField(db, field, reflectValue, dataDestination, reflect.Zero(field.FieldType).Interface())
			markExpired(db, reflectValue)
			continue
		case err != nil:
			_ = db.AddError(err)
			continue
		}

		if field.FieldType.Kind() == reflect.String {
			p.setField(db, field, reflectValue, dataDestination, string(data))
		} else {
			p.setField(db, field, reflectValue, dataDestination, data)
		}
	}
}

func (p fernetPlugin) setField(db *gorm.DB, field *schema.Field, reflectValue reflect.Value, dataDestination map[string]interface{}, result interface{}) {
	if err := field.Set(reflectValue, result); err != nil {
		_ = db.AddError(err)
		return
	}
	if _, ok := dataDestination[field.Name]; ok {
		dataDestination[field.Name] = result
	}
}

// recordTTL reads the record's ttl field, in seconds. Records without
// one have no expiry.
func recordTTL(db *gorm.DB, reflectValue reflect.Value) time.Duration {
	for _, field := range db.Statement.Schema.Fields {
		if field.Tag.Get(tagKey) != tagTTL {
			continue
		}
		fieldValue, isZero := field.ValueOf(reflectValue)
		if isZero {
			return 0
		}
		switch v := fieldValue.(type) {
		case int64:
			return time.Duration(v) * time.Second
		case time.Duration:
			return v
		}
	}
	return 0
}

func markExpired(db *gorm.DB, reflectValue reflect.Value) {
	for _, field := range db.Statement.Schema.Fields {
		if field.Tag.Get(tagKey) != tagExpired {
			continue
		}
		if field.FieldType.Kind() != reflect.Bool {
			_ = db.AddError(errUnsupportedField(field.Name))
			return
		}
		if err := field.Set(reflectValue, true); err != nil {
			_ = db.AddError(err)
		}
		return
	}
}

func isByteSlice(t reflect.Type) bool {
	return t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8
}

func errUnsupportedField(name string) error {
	return errors.New("fernet: unsupported encrypted field type on " + name)
}
