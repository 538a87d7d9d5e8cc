package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// entry is a single key-value row.
type entry struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     []byte    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the gorm default.
func (entry) TableName() string { return "kv_entries" }

// DB is a Store backed by a relational database through GORM.
type DB struct {
	gorm *gorm.DB
}

// Open connects to the store database and migrates the schema.
// A postgres:// URL selects the postgres driver; anything else is treated
// as a sqlite file path.
func Open(ctx context.Context, storeURL string) (*DB, error) {
	if storeURL == "" {
		return nil, errors.New("store URL cannot be empty")
	}

	var dialector gorm.Dialector
	if strings.HasPrefix(storeURL, "postgres://") || strings.HasPrefix(storeURL, "postgresql://") {
		dialector = postgres.Open(storeURL)
	} else {
		dialector = sqlite.Open(storeURL)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if err := gdb.WithContext(ctx).AutoMigrate(&entry{}); err != nil {
		return nil, fmt.Errorf("migrate kv schema: %w", err)
	}

	return &DB{gorm: gdb}, nil
}

// Get returns the raw value for key.
func (db *DB) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var e entry
	err := db.gorm.WithContext(ctx).First(&e, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get entry: %w", err)
	}
	return e.Value, true, nil
}

// Set writes the value for key, last writer wins.
func (db *DB) Set(ctx context.Context, key string, value []byte) error {
	e := entry{Key: key, Value: value, UpdatedAt: time.Now()}
	err := db.gorm.WithContext(ctx).Save(&e).Error
	if err != nil {
		return fmt.Errorf("set entry: %w", err)
	}
	return nil
}

// Delete removes the key if present.
func (db *DB) Delete(ctx context.Context, key string) error {
	err := db.gorm.WithContext(ctx).Delete(&entry{}, "key = ?", key).Error
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	sqlDB, err := db.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
