package autocomplete

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/bnema/listnav/internal/domain/collection"
	"github.com/bnema/listnav/internal/domain/entity"
	"github.com/bnema/listnav/internal/domain/typeahead"
)

// Filter returns the items of source whose label matches query under
// strategy, in source order. An empty query keeps every item.
func Filter(source collection.Collection, query string, strategy entity.MatchStrategy) *collection.View {
	if source == nil {
		return collection.NewView(nil)
	}
	if query == "" {
		return collection.Filter(source, func(entity.Item) bool { return true })
	}

	switch strategy.Normalize() {
	case entity.MatchPrefix:
		q := typeahead.Fold(query)
		return collection.Filter(source, func(it entity.Item) bool {
			return strings.HasPrefix(typeahead.Fold(it.Label), q)
		})
	case entity.MatchFuzzy:
		return fuzzyFilter(source, query)
	default:
		q := typeahead.Fold(query)
		return collection.Filter(source, func(it entity.Item) bool {
			return strings.Contains(typeahead.Fold(it.Label), q)
		})
	}
}

// Matches reports whether a single label matches query under strategy.
func Matches(label, query string, strategy entity.MatchStrategy) bool {
	if query == "" {
		return true
	}
	q := typeahead.Fold(query)
	switch strategy.Normalize() {
	case entity.MatchPrefix:
		return strings.HasPrefix(typeahead.Fold(label), q)
	case entity.MatchFuzzy:
		return len(fuzzy.Find(query, []string{label})) > 0
	default:
		return strings.Contains(typeahead.Fold(label), q)
	}
}

type labels struct {
	c collection.Collection
}

func (l labels) String(i int) string { return l.c.At(i).Label }
func (l labels) Len() int            { return l.c.Len() }

func fuzzyFilter(source collection.Collection, query string) *collection.View {
	matches := fuzzy.FindFrom(query, labels{c: source})
	idx := make([]int, len(matches))
	for k, m := range matches {
		idx[k] = m.Index
	}
	sort.Ints(idx)

	items := make([]entity.Item, len(idx))
	for k, i := range idx {
		items[k] = source.At(i)
	}
	return collection.NewView(items)
}
