// Package relational stores accounts, classes and memberships in SQLite or
// PostgreSQL through database/sql.
package relational

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/pulsegym/gym-system/internal/core/domain"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DB is the shared handle behind every relational repository.
type DB struct {
	sql      *sql.DB
	postgres bool
}

// Open connects to driver/dsn and creates missing tables. For sqlite a file
// path's parent directory is created first; ":memory:" is accepted.
func Open(ctx context.Context, driver, dsn string) (*DB, error) {
	var (
		db       *sql.DB
		err      error
		postgres bool
	)

	switch strings.ToLower(driver) {
	case DriverSQLite, "":
		if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
			if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
		db, err = sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite db: %w", err)
		}
		// one connection keeps :memory: databases and PRAGMAs consistent
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON;`); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	case DriverPostgres, "pgx":
		db, err = sql.Open("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres db: %w", err)
		}
		postgres = true
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}

	d := &DB{sql: db, postgres: postgres}
	if err := d.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := d.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return d, nil
}

// Ping reports whether the database answers.
func (d *DB) Ping(ctx context.Context) error {
	if err := d.sql.PingContext(ctx); err != nil {
		return storageErr("ping", err)
	}
	return nil
}

func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	for _, stmt := range d.schema() {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// conn checks out a dedicated connection; callers must Close it.
func (d *DB) conn(ctx context.Context, op string) (*sql.Conn, error) {
	c, err := d.sql.Conn(ctx)
	if err != nil {
		return nil, storageErr(op, err)
	}
	return c, nil
}

// rebind rewrites ? placeholders to $n for postgres.
func (d *DB) rebind(query string) string {
	if !d.postgres {
		return query
	}
	var (
		b strings.Builder
		n int
	)
	b.Grow(len(query) + 8)
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageUnavailable, err)
}

type scanner interface {
	Scan(dest ...any) error
}
