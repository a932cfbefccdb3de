package render

import "strconv"

// HeadingLevel is an HTML heading rank (h1..h6).
type HeadingLevel int

// DefaultHeadingLevel is used for card titles when no level is configured.
const DefaultHeadingLevel HeadingLevel = 3

// Normalize clamps unset or out of range levels to DefaultHeadingLevel.
func (l HeadingLevel) Normalize() HeadingLevel {
	if l < 1 || l > 6 {
		return DefaultHeadingLevel
	}
	return l
}

// Tag returns the element name, e.g. "h3".
func (l HeadingLevel) Tag() string {
	return "h" + strconv.Itoa(int(l.Normalize()))
}
