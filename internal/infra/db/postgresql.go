package db

import (
	"database/sql"
	"log/slog"

	"gorm.io/driver/postgres"

	"github.com/finance-tracker/goals/config"
)

// NewPostgresConnection connects to PostgreSQL with the configured pool limits.
func NewPostgresConnection(cfg *config.DatabaseConfig) (*Database, error) {
	database, err := open(DialectPostgres, postgres.Open(cfg.URL), func(sqlDB *sql.DB) {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Database connection established",
		"dialect", DialectPostgres,
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)
	return database, nil
}
