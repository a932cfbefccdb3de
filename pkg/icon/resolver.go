package icon

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sync"
)

// Option configures an FSResolver.
type Option func(*FSResolver)

// WithFS swaps the filesystem icons are read from.
func WithFS(fsys fs.FS) Option {
	return func(r *FSResolver) {
		if fsys != nil {
			r.fsys = fsys
		}
	}
}

// WithoutCache disables memoisation, forcing a read per Resolve call.
func WithoutCache() Option {
	return func(r *FSResolver) {
		r.cacheDisabled = true
	}
}

// FSResolver reads SVG files from an fs.FS, sanitises them, and memoises the
// result per reference and attribute set.
type FSResolver struct {
	fsys          fs.FS
	cacheDisabled bool

	mu    sync.RWMutex
	cache map[cacheKey]string
}

type cacheKey struct {
	ref   Ref
	attrs Attributes
}

var _ Resolver = (*FSResolver)(nil)

// NewFSResolver returns a resolver backed by the embedded illustrations unless
// WithFS supplies another tree.
func NewFSResolver(options ...Option) *FSResolver {
	r := &FSResolver{
		fsys:  EmbeddedFS(),
		cache: make(map[cacheKey]string),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Resolve returns sanitised markup for ref. Blank refs resolve to "".
func (r *FSResolver) Resolve(ctx context.Context, ref Ref, attrs Attributes) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if ref.Empty() {
		return "", nil
	}

	key := cacheKey{ref: Ref(ref.String()), attrs: attrs}
	if !r.cacheDisabled {
		r.mu.RLock()
		markup, ok := r.cache[key]
		r.mu.RUnlock()
		if ok {
			return markup, nil
		}
	}

	name := path.Clean(ref.String())
	if !fs.ValidPath(name) {
		return "", fmt.Errorf("icon: resolve %q: %w", ref, ErrNotFound)
	}
	data, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("icon: resolve %q: %w", ref, ErrNotFound)
		}
		return "", fmt.Errorf("icon: read %q: %w", ref, err)
	}

	cleaned := Sanitize(string(data))
	if cleaned == "" {
		return "", fmt.Errorf("icon: %q contains no renderable svg", ref)
	}
	markup := applyAttributes(cleaned, attrs)

	if !r.cacheDisabled {
		r.mu.Lock()
		r.cache[key] = markup
		r.mu.Unlock()
	}
	return markup, nil
}
