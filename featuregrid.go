// Package featuregrid renders the homepage features grid: a fixed, ordered
// list of icon/title/description cards projected into HTML.
package featuregrid

import (
	"context"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-featuregrid/pkg/feature"
	"github.com/goliatone/go-featuregrid/pkg/icon"
	"github.com/goliatone/go-featuregrid/pkg/orchestrator"
	"github.com/goliatone/go-featuregrid/pkg/render"
	htmlrenderer "github.com/goliatone/go-featuregrid/pkg/renderers/html"
)

// Descriptor aliases feature.Descriptor for callers that only import the root
// package.
type Descriptor = feature.Descriptor

// List aliases feature.List.
type List = feature.List

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// Homepage returns the built-in homepage feature list.
func Homepage() List {
	return feature.Homepage()
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML renders the built-in homepage list with the HTML renderer.
func GenerateHTML(ctx context.Context, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Renderer: htmlrenderer.Name,
	})
}

// GenerateHTMLFromList renders list with the HTML renderer.
func GenerateHTMLFromList(ctx context.Context, list List, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		List:     &list,
		Renderer: htmlrenderer.Name,
	})
}

// WithThemeSelector forwards a go-theme selector to the orchestrator.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// EmbeddedTemplates exposes the built-in HTML renderer templates so callers can
// reuse or extend them.
func EmbeddedTemplates() fs.FS {
	return htmlrenderer.TemplatesFS()
}

// StylesheetFS exposes the bundled grid stylesheet (featuregrid.css).
//
// Typical mount:
//
//	mux.Handle("/assets/css/",
//	  http.StripPrefix("/assets/css/",
//	    http.FileServerFS(featuregrid.StylesheetFS()),
//	  ),
//	)
func StylesheetFS() fs.FS {
	return htmlrenderer.AssetsFS()
}

// IconsFS exposes the bundled card illustrations keyed by icon ref.
func IconsFS() fs.FS {
	return icon.EmbeddedFS()
}
