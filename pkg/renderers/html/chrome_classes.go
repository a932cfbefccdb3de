package html

import (
	"strings"

	"github.com/goliatone/go-featuregrid/pkg/classnames"
	"github.com/goliatone/go-featuregrid/pkg/render"
)

// ChromeClass is a typed identifier for the grid's default CSS classes.
type ChromeClass string

const (
	ClassSection     ChromeClass = "features"
	ClassContainer   ChromeClass = "container"
	ClassRow         ChromeClass = "row"
	ClassColumn      ChromeClass = "col col--4"
	ClassIconWrapper ChromeClass = "text--center"
	ClassIcon        ChromeClass = "featureSvg"
	ClassBody        ChromeClass = "text--center padding-horiz--md"
)

// IconRole is the ARIA role set on every card illustration.
const IconRole = "img"

// chromeDefaults is exposed to templates as the "chrome" global. Templates
// fall back to it when the matching "classes" override is blank:
//
//	{{ classes.row|default:chrome.row|classnames }}
func chromeDefaults() map[string]any {
	return map[string]any{
		"section":      string(ClassSection),
		"container":    string(ClassContainer),
		"row":          string(ClassRow),
		"column":       string(ClassColumn),
		"icon_wrapper": string(ClassIconWrapper),
		"icon":         string(ClassIcon),
		"body":         string(ClassBody),
	}
}

// classOverrides maps RenderOptions.Classes onto the keys of chromeDefaults.
// Whitespace-only overrides are dropped so the default applies.
func classOverrides(overrides *render.Classes) map[string]any {
	var o render.Classes
	if overrides != nil {
		o = *overrides
	}
	return map[string]any{
		"section":      strings.TrimSpace(o.Section),
		"container":    strings.TrimSpace(o.Container),
		"row":          strings.TrimSpace(o.Row),
		"column":       strings.TrimSpace(o.Column),
		"icon_wrapper": strings.TrimSpace(o.IconWrapper),
		"icon":         strings.TrimSpace(o.Icon),
		"body":         strings.TrimSpace(o.Body),
	}
}

// iconClass is applied by the icon resolver rather than a template.
func iconClass(overrides *render.Classes) string {
	var override string
	if overrides != nil {
		override = overrides.Icon
	}
	return classnames.Merge(string(ClassIcon), override)
}
