package usecase

import (
	"sort"
	"strings"

	"github.com/bnema/listnav/internal/domain/entity"
)

type builtinSource struct {
	description string
	items       func() []entity.SourceItem
}

var builtinSources = map[string]builtinSource{
	"us-states":       {description: "The 50 US states", items: usStateItems},
	"fruits":          {description: "Fruits, with one unavailable entry", items: fruitItems},
	"countries":       {description: "A subset of countries, some with accented names", items: countryItems},
	"filesystem-tree": {description: "A sample project tree for the tree popup", items: filesystemItems},
}

// IsBuiltinSource reports whether name refers to a compiled-in source.
func IsBuiltinSource(name string) bool {
	_, ok := builtinSources[name]
	return ok
}

// BuiltinSourceNames returns the compiled-in source names, sorted.
func BuiltinSourceNames() []string {
	names := make([]string, 0, len(builtinSources))
	for name := range builtinSources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func flatItems(labels ...string) []entity.SourceItem {
	items := make([]entity.SourceItem, len(labels))
	for i, label := range labels {
		items[i] = entity.SourceItem{Item: entity.NewItem(entity.ItemID(slug(label)), label)}
	}
	return items
}

func slug(label string) string {
	return strings.ToLower(strings.ReplaceAll(label, " ", "-"))
}

func usStateItems() []entity.SourceItem {
	return flatItems(
		"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
		"Connecticut", "Delaware", "Florida", "Georgia", "Hawaii", "Idaho",
		"Illinois", "Indiana", "Iowa", "Kansas", "Kentucky", "Louisiana", "Maine",
		"Maryland", "Massachusetts", "Michigan", "Minnesota", "Mississippi",
		"Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire", "New Jersey",
		"New Mexico", "New York", "North Carolina", "North Dakota", "Ohio",
		"Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina",
		"South Dakota", "Tennessee", "Texas", "Utah", "Vermont", "Virginia",
		"Washington", "West Virginia", "Wisconsin", "Wyoming",
	)
}

func fruitItems() []entity.SourceItem {
	items := flatItems(
		"Apple", "Apricot", "Banana", "Blackberry", "Blueberry", "Cherry",
		"Durian", "Fig", "Grape", "Kiwi", "Lemon", "Mango", "Orange",
		"Papaya", "Peach", "Pear", "Pineapple", "Plum", "Raspberry", "Strawberry",
	)
	for i := range items {
		if items[i].ID == "durian" {
			items[i].Disabled = true
		}
	}
	return items
}

func countryItems() []entity.SourceItem {
	return flatItems(
		"Argentina", "Australia", "Austria", "Belgium", "Brazil", "Canada",
		"Chile", "China", "Côte d'Ivoire", "Curaçao", "Denmark", "Egypt",
		"Finland", "France", "Germany", "Greece", "Iceland", "India", "Ireland",
		"Italy", "Japan", "Kenya", "México", "Netherlands", "New Zealand",
		"Norway", "Perú", "Poland", "Portugal", "São Tomé and Príncipe",
		"Spain", "Sweden", "Switzerland", "Türkiye", "United Kingdom",
		"United States", "Vietnam",
	)
}

func filesystemItems() []entity.SourceItem {
	node := func(id, label, parent string) entity.SourceItem {
		return entity.SourceItem{Item: entity.NewItem(entity.ItemID(id), label), Parent: entity.ItemID(parent)}
	}
	items := []entity.SourceItem{
		node("cmd", "cmd", ""),
		node("cmd/listnav", "listnav", "cmd"),
		node("cmd/listnav/main.go", "main.go", "cmd/listnav"),
		node("internal", "internal", ""),
		node("internal/domain", "domain", "internal"),
		node("internal/domain/collection", "collection", "internal/domain"),
		node("internal/domain/collection/collection.go", "collection.go", "internal/domain/collection"),
		node("internal/domain/navigation", "navigation", "internal/domain"),
		node("internal/domain/navigation/navigation.go", "navigation.go", "internal/domain/navigation"),
		node("internal/domain/selection", "selection", "internal/domain"),
		node("internal/domain/selection/selection.go", "selection.go", "internal/domain/selection"),
		node("internal/ui", "ui", "internal"),
		node("internal/ui/component", "component", "internal/ui"),
		node("internal/ui/component/combobox.go", "combobox.go", "internal/ui/component"),
		node("internal/ui/component/list.go", "list.go", "internal/ui/component"),
		node("internal/ui/component/tree.go", "tree.go", "internal/ui/component"),
		node("vendor", "vendor", ""),
		node("go.mod", "go.mod", ""),
		node("README.md", "README.md", ""),
	}
	for i := range items {
		// vendor is listed but not browsable.
		if items[i].ID == "vendor" {
			items[i].Disabled = true
		}
	}
	return items
}
