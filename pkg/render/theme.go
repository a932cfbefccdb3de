package render

import (
	"sort"
	"strings"
)

// ThemeConfig is the renderer-facing view of a theme selection.
type ThemeConfig struct {
	Theme   string
	Variant string
	// Tokens are the merged manifest and variant design tokens.
	Tokens map[string]string
	// CSSVars maps "--token" names to values.
	CSSVars map[string]string
	// Partials maps logical template keys (e.g. "features.card") to template
	// paths.
	Partials map[string]string
	// AssetURL resolves a logical asset key to a URL. It returns "" for unknown
	// keys.
	AssetURL func(key string) string
}

// Partial returns the template path registered for key, or fallback.
func (c *ThemeConfig) Partial(key, fallback string) string {
	if c == nil {
		return fallback
	}
	if value := strings.TrimSpace(c.Partials[key]); value != "" {
		return value
	}
	return fallback
}

// Asset resolves key through AssetURL when present.
func (c *ThemeConfig) Asset(key string) string {
	if c == nil || c.AssetURL == nil {
		return ""
	}
	return c.AssetURL(key)
}

// InlineStyle renders CSSVars as a deterministic style attribute value.
func (c *ThemeConfig) InlineStyle() string {
	if c == nil || len(c.CSSVars) == 0 {
		return ""
	}
	names := make([]string, 0, len(c.CSSVars))
	for name := range c.CSSVars {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		value := strings.TrimSpace(c.CSSVars[name])
		if value == "" {
			continue
		}
		parts = append(parts, name+": "+value)
	}
	return strings.Join(parts, "; ")
}
