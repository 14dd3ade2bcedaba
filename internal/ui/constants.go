package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPrev     = "◀"
	IconNext     = "▶"
	IconReload   = "⟳"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// URLs / parsing
const (
	// ImageQueryParam is the query parameter carrying a pre-selected image in
	// launch URLs (mirrors the admin panel's ?image= deep link)
	ImageQueryParam = "image"
)

// Window sizing
const (
	WindowWidth  float32 = 900
	WindowHeight float32 = 620
)

// Containers view paging
const (
	DefaultContainersPerPage = 20
)
