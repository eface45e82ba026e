package repository

//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks

import (
	"context"

	"github.com/bnema/listnav/internal/domain/entity"
)

// SourceRepository persists user item sources.
type SourceRepository interface {
	// List returns every stored source ordered by name.
	List(ctx context.Context) ([]*entity.Source, error)

	// Get returns the named source, or nil when it does not exist.
	Get(ctx context.Context, name string) (*entity.Source, error)

	// Items returns the items of the named source in stored order.
	Items(ctx context.Context, name string) ([]entity.SourceItem, error)

	// Save replaces the named source and its items.
	Save(ctx context.Context, source *entity.Source, items []entity.SourceItem) error

	// Delete removes the named source and its items.
	Delete(ctx context.Context, name string) error
}
