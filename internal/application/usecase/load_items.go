package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/listnav/internal/application/port"
	"github.com/bnema/listnav/internal/domain/entity"
	"github.com/bnema/listnav/internal/domain/repository"
	"github.com/bnema/listnav/internal/logging"
)

// ErrUnknownSource is returned when no built-in or stored source has the requested name.
var ErrUnknownSource = errors.New("unknown item source")

// LoadItemsUseCase resolves item sources by name: built-in sources first,
// then the source store. Concurrent loads of one source share a single query.
type LoadItemsUseCase struct {
	repo  repository.SourceRepository
	group singleflight.Group
	cache port.Cache[string, *LoadItemsOutput]
}

// NewLoadItemsUseCase creates a loader. repo may be nil, leaving only built-in sources.
func NewLoadItemsUseCase(repo repository.SourceRepository) *LoadItemsUseCase {
	return &LoadItemsUseCase{repo: repo}
}

// LoadItemsOutput is a resolved source with its items in stored order.
type LoadItemsOutput struct {
	Source *entity.Source
	Items  []entity.SourceItem
}

// Flat returns the items without tree positions.
func (o *LoadItemsOutput) Flat() []entity.Item {
	return entity.FlatItems(o.Items)
}

// Tree links the items into roots.
func (o *LoadItemsOutput) Tree() []*entity.TreeNode {
	return entity.BuildTree(o.Items)
}

// Nested reports whether any item has a parent.
func (o *LoadItemsOutput) Nested() bool {
	for _, it := range o.Items {
		if it.Parent != "" {
			return true
		}
	}
	return false
}

// WithCache keeps loaded stored sources in c. Built-in sources are never cached.
func (uc *LoadItemsUseCase) WithCache(c port.Cache[string, *LoadItemsOutput]) *LoadItemsUseCase {
	uc.cache = c
	return uc
}

// Load resolves the named source.
func (uc *LoadItemsUseCase) Load(ctx context.Context, name string) (*LoadItemsOutput, error) {
	ctx = logging.WithSource(ctx, name)
	log := logging.FromContext(ctx)

	if b, ok := builtinSources[name]; ok {
		items := b.items()
		return &LoadItemsOutput{
			Source: &entity.Source{Name: name, Description: b.description, Kind: entity.SourceBuiltin, Count: len(items)},
			Items:  items,
		}, nil
	}

	if uc.repo == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, name)
	}

	if uc.cache != nil {
		if out, ok := uc.cache.Get(name); ok {
			log.Trace().Msg("item source cache hit")
			return out.clone(), nil
		}
	}

	v, err, shared := uc.group.Do(name, func() (any, error) {
		src, err := uc.repo.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		if src == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSource, name)
		}
		items, err := uc.repo.Items(ctx, name)
		if err != nil {
			return nil, err
		}
		out := &LoadItemsOutput{Source: src, Items: items}
		if uc.cache != nil {
			uc.cache.Set(name, out)
		}
		return out, nil
	})
	if err != nil {
		if !errors.Is(err, ErrUnknownSource) {
			log.Error().Err(err).Msg("failed to load item source")
		}
		return nil, err
	}

	out := v.(*LoadItemsOutput)
	log.Debug().Int("items", len(out.Items)).Bool("shared", shared).Msg("item source loaded")

	return out.clone(), nil
}

// clone copies the item slice so callers sharing a flight or a cache entry
// never alias each other.
func (o *LoadItemsOutput) clone() *LoadItemsOutput {
	return &LoadItemsOutput{Source: o.Source, Items: append([]entity.SourceItem(nil), o.Items...)}
}

// List returns built-in and stored sources ordered by name.
// A stored source shadowed by a built-in name is skipped.
func (uc *LoadItemsUseCase) List(ctx context.Context) ([]*entity.Source, error) {
	sources := make([]*entity.Source, 0, len(builtinSources))
	for _, name := range BuiltinSourceNames() {
		b := builtinSources[name]
		sources = append(sources, &entity.Source{
			Name:        name,
			Description: b.description,
			Kind:        entity.SourceBuiltin,
			Count:       len(b.items()),
		})
	}

	if uc.repo != nil {
		stored, err := uc.repo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list stored sources: %w", err)
		}
		for _, src := range stored {
			if IsBuiltinSource(src.Name) {
				continue
			}
			sources = append(sources, src)
		}
	}

	sort.SliceStable(sources, func(i, j int) bool { return sources[i].Name < sources[j].Name })
	return sources, nil
}
