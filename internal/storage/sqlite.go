package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	apperrors "github.com/alexisbeaulieu97/tskpay/pkg/errors"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const sqliteTimeout = 5 * time.Second

// SQLiteStore persists values in a preferences table.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) the database at path and applies the
// embedded migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, apperrors.NewValidationError("preferences.path", "sqlite backend requires a path", nil)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, apperrors.NewPersistenceError(BackendSQLite, "", fmt.Errorf("create directory: %w", err))
	}

	// modernc.org/sqlite registers the "sqlite" driver name.
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, apperrors.NewPersistenceError(BackendSQLite, "", err)
	}
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), sqliteTimeout)
	defer cancel()
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, apperrors.NewPersistenceError(BackendSQLite, "", fmt.Errorf("apply %q: %w", pragma, err))
		}
	}

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, apperrors.NewPersistenceError(BackendSQLite, "", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

func runMigrations(db *sql.DB) error {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	// m.Close would close db as well; the store owns that handle.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Get implements KeyValueStore.
func (s *SQLiteStore) Get(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), sqliteTimeout)
	defer cancel()

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperrors.NewPersistenceError(BackendSQLite, key, err)
	}
	return value, true, nil
}

// Set implements KeyValueStore.
func (s *SQLiteStore) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), sqliteTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return apperrors.NewPersistenceError(BackendSQLite, key, err)
	}
	return nil
}

// Close implements KeyValueStore.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
