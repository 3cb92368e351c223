package db

import (
	"database/sql"
	"log/slog"

	"github.com/glebarez/sqlite"
)

// NewSQLiteConnection opens a SQLite database at path. Use ":memory:" for a
// throwaway database.
func NewSQLiteConnection(path string) (*Database, error) {
	database, err := open(DialectSQLite, sqlite.Open(path), func(sqlDB *sql.DB) {
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Database connection established", "dialect", DialectSQLite, "path", path)
	return database, nil
}
