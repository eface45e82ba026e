package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/listnav/internal/application/port"
	"github.com/bnema/listnav/internal/logging"
)

// LazyDB opens the source store on first use, so commands that only touch
// built-in sources never load the WASM engine. A failed open is not
// remembered: the next call tries again.
type LazyDB struct {
	path string

	mu sync.Mutex
	db *sql.DB
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB returns a provider for the store at path.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB returns the open store, opening it if needed. Concurrent callers wait
// for a single open.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		return l.db, nil
	}

	db, err := NewConnection(ctx, l.path)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("path", l.path).Msg("source store unavailable")
		return nil, fmt.Errorf("open source store: %w", err)
	}
	l.db = db
	return db, nil
}

// Close closes the store if it was opened. A later DB call reopens it.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// IsInitialized reports whether the store is open.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path returns the store location.
func (l *LazyDB) Path() string {
	return l.path
}
