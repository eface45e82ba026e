package usecase

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/listnav/internal/application/port"
	"github.com/bnema/listnav/internal/domain/entity"
	"github.com/bnema/listnav/internal/domain/repository"
	"github.com/bnema/listnav/internal/logging"
)

// Sentinel errors for source import.
var (
	ErrBuiltinSource = errors.New("name is reserved by a built-in source")
	ErrDuplicateItem = errors.New("duplicate item id")
	ErrEmptySource   = errors.New("source has no items")
)

// ImportFormat selects how import input is parsed.
type ImportFormat string

const (
	// ImportText reads one label per line. Indentation (two spaces or a tab
	// per level) nests an item under the previous shallower line. A leading
	// "!" marks the item disabled. Blank lines and "#" comments are skipped.
	ImportText ImportFormat = "text"
	// ImportJSON reads an array of {"id","label","disabled","parent"} objects.
	ImportJSON ImportFormat = "json"
)

// ImportSourceUseCase parses and stores user item sources.
type ImportSourceUseCase struct {
	repo  repository.SourceRepository
	cache port.Cache[string, *LoadItemsOutput]
}

// NewImportSourceUseCase creates a new import use case.
func NewImportSourceUseCase(repo repository.SourceRepository) *ImportSourceUseCase {
	return &ImportSourceUseCase{repo: repo}
}

// WithCache evicts imported and deleted sources from c.
func (uc *ImportSourceUseCase) WithCache(c port.Cache[string, *LoadItemsOutput]) *ImportSourceUseCase {
	uc.cache = c
	return uc
}

func (uc *ImportSourceUseCase) invalidate(name string) {
	if uc.cache != nil {
		uc.cache.Remove(name)
	}
}

// ImportSourceInput contains parameters for importing a source.
type ImportSourceInput struct {
	Name        string
	Description string
	Format      ImportFormat
	Reader      io.Reader
}

// Import parses input and replaces the stored source of the same name.
func (uc *ImportSourceUseCase) Import(ctx context.Context, input ImportSourceInput) (*entity.Source, error) {
	ctx = logging.WithSource(ctx, input.Name)
	log := logging.FromContext(ctx)

	src := &entity.Source{Name: input.Name, Description: input.Description}
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if IsBuiltinSource(input.Name) {
		return nil, fmt.Errorf("%w: %s", ErrBuiltinSource, input.Name)
	}

	var (
		items []entity.SourceItem
		err   error
	)
	switch input.Format {
	case ImportJSON:
		items, err = parseJSONItems(input.Reader)
	case ImportText, "":
		items, err = parseTextItems(input.Reader)
	default:
		return nil, fmt.Errorf("unsupported import format %q", input.Format)
	}
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptySource
	}

	if err := uc.repo.Save(ctx, src, items); err != nil {
		return nil, fmt.Errorf("failed to save source: %w", err)
	}
	uc.invalidate(src.Name)

	log.Info().Int("items", len(items)).Msg("item source imported")
	return src, nil
}

// Delete removes a stored source.
func (uc *ImportSourceUseCase) Delete(ctx context.Context, name string) error {
	if IsBuiltinSource(name) {
		return fmt.Errorf("%w: %s", ErrBuiltinSource, name)
	}
	src, err := uc.repo.Get(ctx, name)
	if err != nil {
		return err
	}
	if src == nil {
		return fmt.Errorf("%w: %s", ErrUnknownSource, name)
	}
	if err := uc.repo.Delete(ctx, name); err != nil {
		return err
	}
	uc.invalidate(name)
	return nil
}

func parseTextItems(r io.Reader) ([]entity.SourceItem, error) {
	var (
		items []entity.SourceItem
		stack []entity.ItemID // ids of the open ancestors, by depth
		seen  = make(map[entity.ItemID]bool)
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimRight(scanner.Text(), " \t\r")
		trimmed := strings.TrimLeft(raw, " \t")
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		depth := indentDepth(raw[:len(raw)-len(trimmed)])
		if depth > len(stack) {
			return nil, fmt.Errorf("line %d: indented more than one level below its parent", lineNo)
		}
		stack = stack[:depth]

		disabled := strings.HasPrefix(trimmed, "!")
		label := strings.TrimSpace(strings.TrimPrefix(trimmed, "!"))
		if label == "" {
			return nil, fmt.Errorf("line %d: empty label", lineNo)
		}

		var parent entity.ItemID
		id := entity.ItemID(label)
		if depth > 0 {
			parent = stack[depth-1]
			id = parent + "/" + id
		}
		if seen[id] {
			return nil, fmt.Errorf("line %d: %w %q", lineNo, ErrDuplicateItem, id)
		}
		seen[id] = true

		items = append(items, entity.SourceItem{
			Item:   entity.Item{ID: id, Label: label, Disabled: disabled},
			Parent: parent,
		})
		stack = append(stack, id)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	return items, nil
}

func indentDepth(indent string) int {
	depth := 0
	spaces := 0
	for _, r := range indent {
		switch r {
		case '\t':
			depth++
			spaces = 0
		case ' ':
			spaces++
			if spaces == 2 {
				depth++
				spaces = 0
			}
		}
	}
	return depth
}

type jsonItem struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Disabled bool   `json:"disabled,omitempty"`
	Parent   string `json:"parent,omitempty"`
}

func parseJSONItems(r io.Reader) ([]entity.SourceItem, error) {
	var raw []jsonItem
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode source: %w", err)
	}

	items := make([]entity.SourceItem, 0, len(raw))
	seen := make(map[entity.ItemID]bool, len(raw))
	for i, it := range raw {
		if it.Label == "" {
			return nil, fmt.Errorf("item %d: empty label", i)
		}
		id := entity.ItemID(it.ID)
		if id == "" {
			id = entity.ItemID(it.Label)
		}
		if seen[id] {
			return nil, fmt.Errorf("item %d: %w %q", i, ErrDuplicateItem, id)
		}
		seen[id] = true
		items = append(items, entity.SourceItem{
			Item:   entity.Item{ID: id, Label: it.Label, Disabled: it.Disabled},
			Parent: entity.ItemID(it.Parent),
		})
	}
	return items, nil
}
