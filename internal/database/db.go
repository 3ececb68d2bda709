package database

import (
	"database/sql"
	"fmt"
	"strings"

	"mindgym/internal/config"
)

// DB wraps the database connection with dialect support
type DB struct {
	*sql.DB
	Dialect Dialect
}

// Initialize creates and configures a SQLite-backed connection
func Initialize(dbPath string) (*DB, error) {
	return open(NewSQLiteDialect(), DialectConfig{Path: dbPath})
}

// InitializeWithConfig creates and configures the database connection
// based on config (supports sqlite, postgres, mysql)
func InitializeWithConfig(cfg *config.Config) (*DB, error) {
	switch strings.ToLower(cfg.DatabaseType) {
	case "postgres", "postgresql":
		return open(NewPostgresDialect(), DialectConfig{URL: cfg.DatabaseURL})
	case "mysql":
		return open(NewMySQLDialect(), DialectConfig{URL: cfg.DatabaseURL})
	case "sqlite", "sqlite3", "":
		return open(NewSQLiteDialect(), DialectConfig{Path: cfg.DatabasePath})
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DatabaseType)
	}
}

func open(dialect Dialect, dialectConfig DialectConfig) (*DB, error) {
	db, err := sql.Open(dialect.DriverName(), dialect.DSN(dialectConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := dialect.ConfigureConnection(db); err != nil {
		return nil, fmt.Errorf("failed to configure connection: %w", err)
	}

	return &DB{DB: db, Dialect: dialect}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// Query executes a query with automatic placeholder rewriting
func (db *DB) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return db.DB.Query(db.Dialect.RewriteQuery(query), args...)
}

// QueryRow executes a query that returns a single row with automatic
// placeholder rewriting
func (db *DB) QueryRow(query string, args ...interface{}) *sql.Row {
	return db.DB.QueryRow(db.Dialect.RewriteQuery(query), args...)
}

// Exec executes a query that doesn't return rows with automatic
// placeholder rewriting
func (db *DB) Exec(query string, args ...interface{}) (sql.Result, error) {
	return db.DB.Exec(db.Dialect.RewriteQuery(query), args...)
}
