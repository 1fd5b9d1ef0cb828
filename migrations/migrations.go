// Package migrations applies the embedded SQL schema in filename order.
package migrations

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"embed"
	"encoding/hex"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.sql
var migrationsFS embed.FS

// advisoryLockID keeps concurrent api/worker instances from migrating at once.
const advisoryLockID int64 = 7341902265118830117

// Run applies pending migrations and records them in schema_migrations.
// An applied migration whose file content changed is reported as an error.
func Run(ctx context.Context, db *sql.DB) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire migrations connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, advisoryLockID); err != nil {
		return fmt.Errorf("acquire migrations advisory lock: %w", err)
	}
	defer func() {
		_, _ = conn.ExecContext(context.Background(), `SELECT pg_advisory_unlock($1)`, advisoryLockID)
	}()

	if _, err := conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			checksum TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`); err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	paths, err := fs.Glob(migrationsFS, "*.sql")
	if err != nil {
		return fmt.Errorf("glob migrations: %w", err)
	}
	sort.Strings(paths)

	for _, path := range paths {
		version := filepath.Base(path)
		body, err := fs.ReadFile(migrationsFS, path)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", path, err)
		}
		sum := sha256.Sum256(body)
		checksum := hex.EncodeToString(sum[:])

		var applied string
		err = conn.QueryRowContext(ctx, `SELECT checksum FROM schema_migrations WHERE version = $1`, version).Scan(&applied)
		switch {
		case err == nil:
			if !strings.EqualFold(applied, checksum) {
				return fmt.Errorf("migration %s checksum mismatch (db=%s file=%s)", version, applied, checksum)
			}
			continue
		case err != sql.ErrNoRows:
			return fmt.Errorf("check schema_migrations for %s: %w", version, err)
		}

		if err := apply(ctx, conn, version, checksum, string(body)); err != nil {
			return err
		}
	}

	return nil
}

// Versions lists embedded migration file names in apply order.
func Versions() ([]string, error) {
	paths, err := fs.Glob(migrationsFS, "*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

func apply(ctx context.Context, conn *sql.Conn, version, checksum, body string) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration tx for %s: %w", version, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, body); err != nil {
		return fmt.Errorf("execute migration %s: %w", version, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, checksum, applied_at) VALUES ($1, $2, NOW())`,
		version, checksum,
	); err != nil {
		return fmt.Errorf("record schema_migrations row for %s: %w", version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration %s: %w", version, err)
	}
	return nil
}
