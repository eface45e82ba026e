package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/listnav/internal/application/port"
	"github.com/bnema/listnav/internal/domain/entity"
	"github.com/bnema/listnav/internal/domain/repository"
	"github.com/bnema/listnav/internal/logging"
)

type sourceRepo struct {
	provider port.DatabaseProvider
}

// NewSourceRepository creates a SQLite-backed source repository.
// The connection is requested from provider on each call, so a LazyDB
// stays closed until a stored source is actually needed.
func NewSourceRepository(provider port.DatabaseProvider) repository.SourceRepository {
	return &sourceRepo{provider: provider}
}

func (r *sourceRepo) List(ctx context.Context) ([]*entity.Source, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT s.name, s.description, s.updated_at, COUNT(i.id)
		FROM sources s
		LEFT JOIN source_items i ON i.source = s.name
		GROUP BY s.name
		ORDER BY s.name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sources []*entity.Source
	for rows.Next() {
		src, err := scanSource(rows)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, rows.Err()
}

func (r *sourceRepo) Get(ctx context.Context, name string) (*entity.Source, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx, `
		SELECT s.name, s.description, s.updated_at, COUNT(i.id)
		FROM sources s
		LEFT JOIN source_items i ON i.source = s.name
		WHERE s.name = ?
		GROUP BY s.name`, name)

	src, err := scanSource(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return src, nil
}

func (r *sourceRepo) Items(ctx context.Context, name string) ([]entity.SourceItem, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, label, disabled, parent
		FROM source_items
		WHERE source = ?
		ORDER BY position`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load items of %q: %w", name, err)
	}
	defer func() { _ = rows.Close() }()

	var items []entity.SourceItem
	for rows.Next() {
		var (
			id, label, parent string
			disabled          bool
		)
		if err := rows.Scan(&id, &label, &disabled, &parent); err != nil {
			return nil, err
		}
		items = append(items, entity.SourceItem{
			Item:   entity.Item{ID: entity.ItemID(id), Label: label, Disabled: disabled},
			Parent: entity.ItemID(parent),
		})
	}
	return items, rows.Err()
}

func (r *sourceRepo) Save(ctx context.Context, source *entity.Source, items []entity.SourceItem) error {
	if err := source.Validate(); err != nil {
		return err
	}

	log := logging.FromContext(ctx)
	log.Debug().Str("source", source.Name).Int("items", len(items)).Msg("saving source")

	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Truncate(time.Second)
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO sources (name, description, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET description = excluded.description, updated_at = excluded.updated_at`,
		source.Name, source.Description, now.Unix()); err != nil {
		return fmt.Errorf("failed to save source %q: %w", source.Name, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM source_items WHERE source = ?", source.Name); err != nil {
		return fmt.Errorf("failed to clear items of %q: %w", source.Name, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO source_items (source, position, id, label, disabled, parent)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for i, it := range items {
		if _, err := stmt.ExecContext(ctx, source.Name, i, string(it.ID), it.Label, it.Disabled, string(it.Parent)); err != nil {
			return fmt.Errorf("failed to save item %q: %w", it.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	source.Kind = entity.SourceUser
	source.Count = len(items)
	source.UpdatedAt = now
	return nil
}

func (r *sourceRepo) Delete(ctx context.Context, name string) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, "DELETE FROM sources WHERE name = ?", name); err != nil {
		return fmt.Errorf("failed to delete source %q: %w", name, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSource(row rowScanner) (*entity.Source, error) {
	var (
		src       entity.Source
		updatedAt int64
	)
	if err := row.Scan(&src.Name, &src.Description, &updatedAt, &src.Count); err != nil {
		return nil, err
	}
	src.Kind = entity.SourceUser
	src.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return &src, nil
}
