package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/bnema/listnav/internal/logging"
)

const storeDirPerm = 0o750

// storePragmas run on every connection the driver opens. WAL lets a running
// demo read while `sources import` writes; foreign keys drive the item cascade.
var storePragmas = []string{
	"busy_timeout(5000)",
	"foreign_keys(on)",
	"journal_mode(wal)",
	"synchronous(normal)",
}

// ErrEmptyPath is returned when the source store has no location.
var ErrEmptyPath = errors.New("source store path is empty")

// storeDSN builds the driver URI for dbPath with the store pragmas attached.
func storeDSN(dbPath string) string {
	q := url.Values{}
	for _, p := range storePragmas {
		q.Add("_pragma", p)
	}
	u := url.URL{Scheme: "file", OmitHost: true, Path: filepath.ToSlash(dbPath), RawQuery: q.Encode()}
	return u.String()
}

// NewConnection opens the source store at dbPath and brings its schema up to date.
// The store holds a single connection: writes are rare and come from one process.
func NewConnection(ctx context.Context, dbPath string) (*sql.DB, error) {
	if dbPath == "" {
		return nil, ErrEmptyPath
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), storeDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create source store directory: %w", err)
	}

	db, err := sql.Open("sqlite3", storeDSN(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open source store: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to reach source store: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logging.FromContext(ctx).Debug().Str("path", dbPath).Msg("source store opened")
	return db, nil
}
