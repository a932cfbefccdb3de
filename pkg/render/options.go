package render

// RenderOptions describe per-request data that renderers can use to customise
// their output without touching the feature list.
type RenderOptions struct {
	// HeadingLevel selects the heading tag used for card titles. Zero means
	// DefaultHeadingLevel.
	HeadingLevel HeadingLevel
	// Classes overrides the chrome classes applied to the section, layout
	// wrappers, and cards. Empty fields keep the renderer defaults.
	Classes *Classes
	// Theme carries the resolved theme selection (tokens, partial overrides,
	// asset URLs). Nil renders without theme data.
	Theme *ThemeConfig
}

// Classes holds CSS class overrides for the grid chrome.
type Classes struct {
	Section     string
	Container   string
	Row         string
	Column      string
	IconWrapper string
	Icon        string
	Body        string
}
