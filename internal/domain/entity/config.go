package entity

import "time"

// Orientation is the axis along which arrow keys move the active item.
type Orientation string

const (
	OrientationVertical   Orientation = "vertical"
	OrientationHorizontal Orientation = "horizontal"
)

// TextDirection is the reading direction of the host.
type TextDirection string

const (
	DirectionLTR TextDirection = "ltr"
	DirectionRTL TextDirection = "rtl"
)

// FocusMode selects how the active item is exposed to assistive technology.
type FocusMode string

const (
	// FocusRoving makes exactly one item tabbable at a time.
	FocusRoving FocusMode = "roving"
	// FocusActiveDescendant keeps focus on the container and publishes the active item ID.
	FocusActiveDescendant FocusMode = "activedescendant"
)

// SelectionMode decides whether selection follows navigation.
type SelectionMode string

const (
	SelectionFollow   SelectionMode = "follow"
	SelectionExplicit SelectionMode = "explicit"
)

// FilterMode is the combobox typing behavior.
type FilterMode string

const (
	FilterManual     FilterMode = "manual"
	FilterAutoSelect FilterMode = "auto-select"
	FilterHighlight  FilterMode = "highlight"
)

// MatchStrategy decides which items survive combobox filtering.
type MatchStrategy string

const (
	MatchPrefix    MatchStrategy = "prefix"
	MatchSubstring MatchStrategy = "substring"
	MatchFuzzy     MatchStrategy = "fuzzy"
)

// DefaultTypeaheadDelay is how long the typeahead buffer survives without input.
const DefaultTypeaheadDelay = 500 * time.Millisecond

// ListConfig holds every option that shapes list interaction.
// Hosts may replace it at any time; it is re-read on the next event.
type ListConfig struct {
	Orientation    Orientation   `mapstructure:"orientation" json:"orientation"`
	TextDirection  TextDirection `mapstructure:"text_direction" json:"text_direction"`
	Wrap           bool          `mapstructure:"wrap" json:"wrap"`
	SkipDisabled   bool          `mapstructure:"skip_disabled" json:"skip_disabled"`
	FocusMode      FocusMode     `mapstructure:"focus_mode" json:"focus_mode"`
	SelectionMode  SelectionMode `mapstructure:"selection_mode" json:"selection_mode"`
	Multi          bool          `mapstructure:"multi" json:"multi"`
	Disabled       bool          `mapstructure:"disabled" json:"disabled"`
	Readonly       bool          `mapstructure:"readonly" json:"readonly"`
	TypeaheadDelay time.Duration `mapstructure:"typeahead_delay" json:"typeahead_delay"`
}

// DefaultListConfig returns the listbox defaults.
func DefaultListConfig() ListConfig {
	return ListConfig{
		Orientation:    OrientationVertical,
		TextDirection:  DirectionLTR,
		Wrap:           true,
		SkipDisabled:   true,
		FocusMode:      FocusRoving,
		SelectionMode:  SelectionFollow,
		TypeaheadDelay: DefaultTypeaheadDelay,
	}
}

// DefaultTabsConfig returns the tab list defaults.
func DefaultTabsConfig() ListConfig {
	cfg := DefaultListConfig()
	cfg.Orientation = OrientationHorizontal
	return cfg
}

// Normalize replaces unsupported values with their defaults.
// Hosts mutate configuration live, so a transient bad value must never fail.
func (c ListConfig) Normalize() ListConfig {
	switch c.Orientation {
	case OrientationVertical, OrientationHorizontal:
	default:
		c.Orientation = OrientationVertical
	}
	switch c.TextDirection {
	case DirectionLTR, DirectionRTL:
	default:
		c.TextDirection = DirectionLTR
	}
	switch c.FocusMode {
	case FocusRoving, FocusActiveDescendant:
	default:
		c.FocusMode = FocusRoving
	}
	switch c.SelectionMode {
	case SelectionFollow, SelectionExplicit:
	default:
		c.SelectionMode = SelectionFollow
	}
	if c.TypeaheadDelay <= 0 {
		c.TypeaheadDelay = DefaultTypeaheadDelay
	}
	return c
}

// Follows reports whether selection tracks the active item.
func (c ListConfig) Follows() bool {
	return c.SelectionMode == SelectionFollow
}

// Horizontal reports whether Left/Right drive navigation.
func (c ListConfig) Horizontal() bool {
	return c.Orientation == OrientationHorizontal
}

// Normalize returns mode, or FilterManual when mode is unsupported.
func (m FilterMode) Normalize() FilterMode {
	switch m {
	case FilterManual, FilterAutoSelect, FilterHighlight:
		return m
	default:
		return FilterManual
	}
}

// Normalize returns s, or MatchSubstring when s is unsupported.
func (s MatchStrategy) Normalize() MatchStrategy {
	switch s {
	case MatchPrefix, MatchSubstring, MatchFuzzy:
		return s
	default:
		return MatchSubstring
	}
}
