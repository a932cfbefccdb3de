package render

import (
	"context"

	"github.com/goliatone/go-featuregrid/pkg/feature"
)

// Renderer projects a feature list into a byte representation (HTML,
// Markdown, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, list feature.List, options RenderOptions) ([]byte, error)
}
