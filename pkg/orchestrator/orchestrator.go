package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-featuregrid/pkg/feature"
	"github.com/goliatone/go-featuregrid/pkg/icon"
	"github.com/goliatone/go-featuregrid/pkg/render"
	htmlrenderer "github.com/goliatone/go-featuregrid/pkg/renderers/html"
	"github.com/goliatone/go-featuregrid/pkg/renderers/markdown"
)

const defaultRendererName = htmlrenderer.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry. The built-in renderers are not
// added to an injected registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithList replaces the built-in homepage list used when a request carries
// none.
func WithList(list feature.List) Option {
	return func(o *Orchestrator) {
		o.list = list
		o.listSet = true
	}
}

// WithIconResolver configures the icon pipeline for the default HTML renderer.
func WithIconResolver(resolver icon.Resolver) Option {
	return func(o *Orchestrator) {
		o.icons = resolver
	}
}

// WithThemeSelector resolves theme/variant choices ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithDefaultTheme names the theme and variant used when a request leaves
// them blank.
func WithDefaultTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.defaultTheme = name
		o.defaultVariant = variant
	}
}

// WithThemeFallbacks sets partials used when a theme does not override them.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = cloneStrings(fallbacks)
	}
}

// WithAssetPrefix overrides the URL prefix applied to theme assets whose
// manifest declares none.
func WithAssetPrefix(prefix string) Option {
	return func(o *Orchestrator) {
		o.assetPrefix = prefix
	}
}

// Orchestrator coordinates list selection, theme resolution, and rendering.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	list            feature.List
	listSet         bool
	icons           icon.Resolver
	themeSelector   theme.ThemeSelector
	defaultTheme    string
	defaultVariant  string
	themeFallbacks  map[string]string
	assetPrefix     string
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes a single render.
type Request struct {
	// List overrides the orchestrator's list for this request.
	List *feature.List
	// Renderer names the renderer to use. Empty selects the default renderer.
	Renderer string
	// ThemeName and ThemeVariant select a theme through the configured
	// selector. Empty values fall back to WithDefaultTheme.
	ThemeName    string
	ThemeVariant string
	// RenderOptions are forwarded to the renderer. Theme is filled in when a
	// selector is configured and RenderOptions.Theme is nil.
	RenderOptions render.RenderOptions
}

// Result carries rendered bytes and their content type. Theme is the theme
// the renderer received, nil when none applied.
type Result struct {
	Body        []byte
	ContentType string
	Renderer    string
	Theme       *render.ThemeConfig
}

// Generate renders the request and returns the bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	result, err := o.Render(ctx, req)
	if err != nil {
		return nil, err
	}
	return result.Body, nil
}

// Render renders the request and reports which renderer produced the output.
func (o *Orchestrator) Render(ctx context.Context, req Request) (Result, error) {
	if o == nil {
		return Result{}, errors.New("orchestrator: nil receiver")
	}
	if o.initialiseErr != nil {
		return Result{}, o.initialiseErr
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}

	options := req.RenderOptions
	if options.Theme == nil {
		cfg, err := o.resolveTheme(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return Result{}, err
		}
		options.Theme = cfg
	}

	list := o.list
	if req.List != nil {
		list = *req.List
	}

	body, err := renderer.Render(ctx, list, options)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: render %q: %w", renderer.Name(), err)
	}
	return Result{
		Body:        body,
		ContentType: renderer.ContentType(),
		Renderer:    renderer.Name(),
		Theme:       options.Theme,
	}, nil
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	if o == nil || o.registry == nil {
		return nil
	}
	return o.registry.List()
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	renderer, err := o.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if !o.listSet {
		o.list = feature.Homepage()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()

		var opts []htmlrenderer.Option
		if o.icons != nil {
			opts = append(opts, htmlrenderer.WithIconResolver(o.icons))
		}
		renderer, err := htmlrenderer.New(opts...)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
		o.registry.MustRegister(markdown.New())
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.themeFallbacks == nil {
		o.themeFallbacks = defaultThemeFallbacks()
	}
}
