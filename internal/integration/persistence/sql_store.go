package persistence

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-tracker/goals/internal/application/adapter"
	"github.com/finance-tracker/goals/internal/integration/persistence/model"
)

// sqlStore implements the adapter.KeyValueStore interface on a GORM table.
type sqlStore struct {
	db *gorm.DB
}

// NewSQLStore creates a new SQL-backed key-value store. The
// key_value_records table must already be migrated.
func NewSQLStore(db *gorm.DB) adapter.KeyValueStore {
	return &sqlStore{
		db: db,
	}
}

// Get retrieves the value stored under key.
func (s *sqlStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var record model.KeyValueModel
	result := s.db.WithContext(ctx).Where("record_key = ?", key).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, result.Error
	}
	return []byte(record.Value), true, nil
}

// Set inserts or replaces the value stored under key.
func (s *sqlStore) Set(ctx context.Context, key string, value []byte) error {
	record := model.KeyValueModel{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	}

	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record)
	return result.Error
}

// HealthCheck pings the underlying database connection.
func (s *sqlStore) HealthCheck() bool {
	sqlDB, err := s.db.DB()
	if err != nil {
		slog.Error("Failed to get sql.DB for health check", "error", err)
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		slog.Error("Storage health check failed", "error", err)
		return false
	}
	return true
}
