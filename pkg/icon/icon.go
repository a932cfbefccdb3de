package icon

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned when a reference does not map to any asset.
var ErrNotFound = errors.New("icon: asset not found")

// Ref is an opaque handle to a renderable graphic. The built-in resolver treats
// it as a path inside its filesystem; other resolvers may interpret it freely.
type Ref string

// String returns the trimmed reference.
func (r Ref) String() string {
	return strings.TrimSpace(string(r))
}

// Empty reports whether the reference is blank.
func (r Ref) Empty() bool {
	return r.String() == ""
}

// Attributes are applied to the root <svg> element of resolved markup.
type Attributes struct {
	Class string
	Role  string
}

// Resolver turns a Ref into markup safe to embed in HTML.
type Resolver interface {
	Resolve(ctx context.Context, ref Ref, attrs Attributes) (string, error)
}
