package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store persists named JSON documents. Last write wins; there are no
// transactions across keys.
type Store interface {
	// Get unmarshals the document stored under key into dest. The boolean
	// reports whether the key existed.
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Set marshals value and stores it under key, replacing any prior
	// document.
	Set(ctx context.Context, key string, value any) error
}

// Entry is the backing row for one logical document.
type Entry struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     []byte    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName maps Entry onto the kv_entries table.
func (Entry) TableName() string { return "kv_entries" }

type gormStore struct {
	db  *gorm.DB
	now func() time.Time
}

// New returns a Store backed by the kv_entries table.
func New(db *gorm.DB) (Store, error) {
	if db == nil {
		return nil, errors.New("db required")
	}
	return &gormStore{db: db, now: time.Now}, nil
}

func (s *gormStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	var entry Entry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("kvstore get %q: %w", key, err)
	}
	if err := json.Unmarshal(entry.Value, dest); err != nil {
		return false, fmt.Errorf("kvstore decode %q: %w", key, err)
	}
	return true, nil
}

func (s *gormStore) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kvstore encode %q: %w", key, err)
	}
	entry := Entry{Key: key, Value: raw, UpdatedAt: s.now().UTC()}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		return fmt.Errorf("kvstore set %q: %w", key, err)
	}
	return nil
}
