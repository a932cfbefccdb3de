// Package classnames composes CSS class lists from strings, slices, and
// conditional maps.
package classnames

import (
	"sort"
	"strings"
)

// Join flattens values into a space separated class list. Supported inputs are
// string, []string, map[string]bool (truthy keys, sorted), []any of the same,
// and nil. Tokens are trimmed and de-duplicated keeping the first occurrence.
func Join(values ...any) string {
	tokens := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		collect(value, &tokens, seen)
	}
	return strings.Join(tokens, " ")
}

// Merge returns override when it carries any class, otherwise fallback.
func Merge(fallback, override string) string {
	if cleaned := Join(override); cleaned != "" {
		return cleaned
	}
	return Join(fallback)
}

func collect(value any, tokens *[]string, seen map[string]struct{}) {
	switch v := value.(type) {
	case nil:
	case string:
		for _, token := range strings.Fields(v) {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			*tokens = append(*tokens, token)
		}
	case []string:
		for _, item := range v {
			collect(item, tokens, seen)
		}
	case map[string]bool:
		keys := make([]string, 0, len(v))
		for key, on := range v {
			if on {
				keys = append(keys, key)
			}
		}
		sort.Strings(keys)
		for _, key := range keys {
			collect(key, tokens, seen)
		}
	case []any:
		for _, item := range v {
			collect(item, tokens, seen)
		}
	}
}
