// Package sqlite provides a SQLite-backed compat storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/sdkgate/sdkgate/internal/platform/storage/sqlitemigrate"
	"github.com/sdkgate/sdkgate/internal/services/compat/storage"
	"github.com/sdkgate/sdkgate/internal/services/compat/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists compat overrides in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite compat store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutOverride upserts one per-package override. The created timestamp of an
// existing row is preserved.
func (s *Store) PutOverride(ctx context.Context, override storage.Override) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	packageName := strings.TrimSpace(override.PackageName)
	if packageName == "" {
		return fmt.Errorf("package name is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO overrides (change_id, package_name, enabled, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(change_id, package_name) DO UPDATE SET
		   enabled = excluded.enabled,
		   updated_at = excluded.updated_at`,
		int64(override.ChangeID),
		packageName,
		override.Enabled,
		toMillis(override.CreatedAt),
		toMillis(override.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put override: %w", err)
	}
	return nil
}

// DeleteOverride removes one per-package override. Returns
// storage.ErrNotFound when no row matched.
func (s *Store) DeleteOverride(ctx context.Context, changeID uint64, packageName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	packageName = strings.TrimSpace(packageName)
	if packageName == "" {
		return fmt.Errorf("package name is required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM overrides
		 WHERE change_id = ? AND package_name = ?`,
		int64(changeID),
		packageName,
	)
	if err != nil {
		return fmt.Errorf("delete override: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete override: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ListOverrides returns every persisted override ordered by change id, then
// package name.
func (s *Store) ListOverrides(ctx context.Context) ([]storage.Override, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT change_id, package_name, enabled, created_at, updated_at
		 FROM overrides
		 ORDER BY change_id ASC, package_name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list overrides: %w", err)
	}
	defer rows.Close()

	var overrides []storage.Override
	for rows.Next() {
		var (
			override  storage.Override
			changeID  int64
			createdAt int64
			updatedAt int64
		)
		if err := rows.Scan(
			&changeID,
			&override.PackageName,
			&override.Enabled,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("list overrides: %w", err)
		}
		override.ChangeID = uint64(changeID)
		override.CreatedAt = fromMillis(createdAt)
		override.UpdatedAt = fromMillis(updatedAt)
		overrides = append(overrides, override)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list overrides: %w", err)
	}
	return overrides, nil
}

var _ storage.OverrideStore = (*Store)(nil)
