package icon

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	svgPolicyOnce sync.Once
	svgPolicy     *bluemonday.Policy
)

// Sanitize strips anything outside the SVG drawing allow-list (scripts, event
// handlers, foreign objects). It returns an empty string when nothing survives.
func Sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(svgSanitizer().Sanitize(trimmed))
}

func svgSanitizer() *bluemonday.Policy {
	svgPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"svg", "g", "path", "circle", "rect", "line", "polyline", "polygon",
			"ellipse", "title", "desc", "defs", "use", "clipPath",
		)

		// class and role are owned by the caller and re-applied after sanitising.
		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin", "aria-hidden",
			"focusable", "preserveAspectRatio", "opacity",
		).OnElements("svg")

		policy.AllowAttrs("href", "xlink:href", "clip-path").OnElements("use")

		// Shared by shapes and groups.
		paint := []string{
			"fill", "fill-rule", "fill-opacity", "clip-rule", "clip-path",
			"stroke", "stroke-width", "stroke-linecap", "stroke-linejoin",
			"stroke-opacity", "opacity", "transform",
		}
		geometry := []string{
			"d", "cx", "cy", "r", "x", "y", "width", "height", "x1", "y1",
			"x2", "y2", "points", "rx", "ry",
		}
		policy.AllowAttrs(append(geometry, paint...)...).OnElements(
			"path", "circle", "rect", "line", "polyline", "polygon", "ellipse",
		)
		policy.AllowAttrs(append([]string{"id"}, paint...)...).OnElements("g")

		policy.AllowAttrs("id", "clipPathUnits").OnElements("clipPath")
		policy.AllowAttrs("id").OnElements("defs")

		svgPolicy = policy
	})
	return svgPolicy
}

// applyAttributes writes attrs onto the first <svg> tag of markup.
func applyAttributes(markup string, attrs Attributes) string {
	idx := strings.Index(markup, "<svg")
	if idx < 0 {
		return markup
	}
	var extra strings.Builder
	if class := strings.TrimSpace(attrs.Class); class != "" {
		extra.WriteString(` class="`)
		extra.WriteString(html.EscapeString(class))
		extra.WriteString(`"`)
	}
	if role := strings.TrimSpace(attrs.Role); role != "" {
		extra.WriteString(` role="`)
		extra.WriteString(html.EscapeString(role))
		extra.WriteString(`"`)
	}
	if extra.Len() == 0 {
		return markup
	}
	insertAt := idx + len("<svg")
	return markup[:insertAt] + extra.String() + markup[insertAt:]
}
