package db

import (
	"database/sql"
	"io"
	"log/slog"
)

// NewTestDB wraps sqlDB with a discard logger for tests.
func NewTestDB(sqlDB *sql.DB) *DB {
	return New(sqlDB, slog.New(slog.NewTextHandler(io.Discard, nil)))
}
