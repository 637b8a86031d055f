package ui

import "time"

// Icons (symbols used as compact button labels)
const (
	IconSettings     = "⚙"
	IconReload       = "⟳"
	IconOpenExternal = "↗"
	IconClose        = "×"
	IconError        = "❌"
)

// Window layout
const (
	WindowWidth  float32 = 800
	WindowHeight float32 = 600

	// SplitOffset is the share of the window width given to the search sidebar
	SplitOffset = 0.3
)

// Browser pane capture size in CSS pixels
const (
	BrowserViewportWidth  = 1024
	BrowserViewportHeight = 768
)

// Notification behavior
const (
	NotificationAutoHide = 4 * time.Second
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 420
)
