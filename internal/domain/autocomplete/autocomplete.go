// Package autocomplete provides label matching and inline completion for
// combobox filtering.
package autocomplete

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/bnema/listnav/internal/domain/collection"
	"github.com/bnema/listnav/internal/domain/typeahead"
)

// Completion is an inline suggestion for the text typed so far.
type Completion struct {
	Index  int    // Index of the matched item in the filtered view
	Value  string // Full label written into the input
	Suffix string // Part of Value beyond the typed prefix
	Start  int    // Selection range start, in grapheme clusters
	End    int    // Selection range end, in grapheme clusters
}

// ComputeCompletionSuffix returns the suffix if input is a case-insensitive prefix of fullText.
// The suffix keeps fullText's original case. Returns false when input is empty,
// does not match, or already equals fullText.
func ComputeCompletionSuffix(input, fullText string) (string, bool) {
	prefix, ok := matchedPrefix(input, fullText)
	if !ok {
		return "", false
	}
	suffix := fullText[len(prefix):]
	return suffix, suffix != ""
}

// Complete returns the completion for typed against the first enabled item
// of c whose label starts with it.
func Complete(c collection.Collection, typed string) (Completion, bool) {
	if c == nil || typed == "" {
		return Completion{}, false
	}
	for i := 0; i < c.Len(); i++ {
		item := c.At(i)
		if item.Disabled {
			continue
		}
		prefix, ok := matchedPrefix(typed, item.Label)
		if !ok || len(prefix) == len(item.Label) {
			continue
		}
		start := uniseg.GraphemeClusterCount(prefix)
		return Completion{
			Index:  i,
			Value:  item.Label,
			Suffix: item.Label[len(prefix):],
			Start:  start,
			End:    start + uniseg.GraphemeClusterCount(item.Label[len(prefix):]),
		}, true
	}
	return Completion{}, false
}

// ExactMatch returns the index of the first enabled item whose label equals
// text exactly, or -1.
func ExactMatch(c collection.Collection, text string) int {
	if c == nil || text == "" {
		return -1
	}
	for i := 0; i < c.Len(); i++ {
		if item := c.At(i); item.Enabled() && item.Label == text {
			return i
		}
	}
	return -1
}

// matchedPrefix returns the shortest grapheme-aligned prefix of label whose
// case fold equals the fold of input.
func matchedPrefix(input, label string) (string, bool) {
	if input == "" || label == "" {
		return "", false
	}
	want := typeahead.Fold(input)
	if !strings.HasPrefix(typeahead.Fold(label), want) {
		return "", false
	}

	end := 0
	g := uniseg.NewGraphemes(label)
	for g.Next() {
		_, to := g.Positions()
		end = to
		got := typeahead.Fold(label[:end])
		if got == want {
			return label[:end], true
		}
		if len(got) > len(want) {
			break
		}
	}
	return "", false
}
