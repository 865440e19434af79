package gorm

import (
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/doodlesbykumbi/cryptography-in-go/pkg/model"
	"github.com/doodlesbykumbi/cryptography-in-go/pkg/vault"
)

// Ensure Store implements vault.Store
var _ vault.Store = (*Store)(nil)

// Store implements vault.Store using GORM
type Store struct {
	db *gorm.DB
}

// NewStore creates a new Store
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Set stores a value under key, replacing any previous value.
func (s *Store) Set(key string, value []byte, ttl time.Duration) error {
	entry := model.Entry{
		Key:   key,
		Value: value,
		TTL:   int64(ttl / time.Second),
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "ttl", "updated_at"}),
	}).Create(&entry).Error
}

// Get retrieves the value stored under key.
func (s *Store) Get(key string) (*vault.Entry, error) {
	var entry model.Entry
	tx := s.db.Where("key = ?", key).First(&entry)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, vault.ErrEntryNotFound
		}
		return nil, tx.Error
	}

	if entry.Expired {
		return nil, vault.ErrEntryExpired
	}

	return &vault.Entry{
		Key:       entry.Key,
		Value:     entry.Value,
		TTL:       time.Duration(entry.TTL) * time.Second,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}, nil
}

// List returns the metadata of every entry. The value column is never
// selected, so nothing is decrypted.
func (s *Store) List() ([]vault.Entry, error) {
	var entries []model.Entry
	err := s.db.Select("id", "key", "ttl", "created_at", "updated_at").
		Order("key").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	result := make([]vault.Entry, 0, len(entries))
	for _, entry := range entries {
		result = append(result, vault.Entry{
			Key:       entry.Key,
			TTL:       time.Duration(entry.TTL) * time.Second,
			CreatedAt: entry.CreatedAt,
			UpdatedAt: entry.UpdatedAt,
		})
	}
	return result, nil
}

// Delete removes the entry stored under key.
func (s *Store) Delete(key string) error {
	tx := s.db.Where("key = ?", key).Delete(&model.Entry{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return vault.ErrEntryNotFound
	}
	return nil
}

// Import stores every pair in one transaction. Keys are written in
// sorted order.
func (s *Store) Import(entries map[string]string) error {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return s.db.Transaction(func(tx *gorm.DB) error {
		store := &Store{db: tx}
		for _, key := range keys {
			if err := store.Set(key, []byte(entries[key]), 0); err != nil {
				return err
			}
		}
		return nil
	})
}
