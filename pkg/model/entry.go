package model

import "time"

// Entry is a vault record. The value column holds a fernet token: the
// store plugin encrypts it before writes and decrypts it after reads,
// honoring TTL and reporting authentic-but-stale values on Expired.
type Entry struct {
	ID        uint64 `gorm:"primary_key"`
	Key       string `gorm:"column:key;uniqueIndex"`
	Value     []byte `gorm:"type:bytea" fernet:"encrypted"`
	TTL       int64  `gorm:"column:ttl" fernet:"ttl"`
	Expired   bool   `gorm:"-" fernet:"expired"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Entry) TableName() string {
	return "entries"
}
