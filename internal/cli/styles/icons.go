package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconGo        = "" // go gopher

	IconCheck    = "" // check
	IconX        = "" // x
	IconInfo     = "" // info
	IconConfig   = "" // config
	IconDatabase = "" // database
	IconFolder   = "" // folder
	IconLogs     = "" // file-text
	IconTree     = "" // tree
	IconCursor   = "" // chevron-right
)

// Plain glyphs for widget rows, readable without a Nerd Font.
const (
	markerActive   = "›"
	markerNone     = " "
	markerSelected = "✓"
	markerExpanded = "▾"
	markerCollapse = "▸"
	markerLeaf     = " "
	ellipsis       = "…"
)
