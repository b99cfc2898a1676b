package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconReload   = "⟳"
	IconEdit     = "✎"
	IconView     = "👁"
)

// Frame loop
const (
	// FramePollInterval is how often the pending fetch is drained (~60 fps)
	FramePollInterval = 16 * time.Millisecond
)

// Layout sizing
const (
	WindowWidth  float32 = 900
	WindowHeight float32 = 640

	// ListSplitOffset is the share of the split given to the entry list
	ListSplitOffset = 0.4

	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 220
)

// Text
const (
	// PreviewLength is the number of runes shown per list row
	PreviewLength = 80
)
