package html

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-featuregrid/pkg/feature"
	"github.com/goliatone/go-featuregrid/pkg/icon"
	"github.com/goliatone/go-featuregrid/pkg/render"
	rendertemplate "github.com/goliatone/go-featuregrid/pkg/render/template"
	gotemplate "github.com/goliatone/go-featuregrid/pkg/render/template/gotemplate"
)

// Name is the registry name of the HTML renderer.
const Name = "html"

// Template paths inside TemplatesFS.
const (
	TemplateSection = "templates/features.tmpl"
	TemplateCard    = "templates/components/card.tmpl"
	TemplateHeading = "templates/components/heading.tmpl"
)

// Theme partial keys that can replace the templates above.
const (
	PartialSection = "features.section"
	PartialCard    = "features.card"
	PartialHeading = "features.heading"
)

// AssetStylesheet is the theme asset key of a stylesheet that hosts link
// next to the bundled one.
const AssetStylesheet = "features.stylesheet"

type Option func(*config)

type config struct {
	templateFS        fs.FS
	templateDir       string
	icons             icon.Resolver
	descriptionPolicy *bluemonday.Policy
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk laid out like
// TemplatesFS. Files missing from the directory fall back to the template
// bundle.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templateDir = strings.TrimSpace(path)
	}
}

// WithIconResolver swaps the icon pipeline. Defaults to the embedded
// illustrations.
func WithIconResolver(resolver icon.Resolver) Option {
	return func(cfg *config) {
		if resolver != nil {
			cfg.icons = resolver
		}
	}
}

// WithDescriptionPolicy overrides the sanitiser applied to description markup.
func WithDescriptionPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.descriptionPolicy = policy
		}
	}
}

// Renderer projects a feature list into the homepage features section: one
// column card per descriptor, in list order.
type Renderer struct {
	templates   rendertemplate.TemplateRenderer
	icons       icon.Resolver
	description *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	templates, err := gotemplate.New(
		gotemplate.WithBaseDir(cfg.templateDir),
		gotemplate.WithFS(cfg.templateFS),
		gotemplate.WithExtension(".tmpl"),
		gotemplate.WithGlobalData(map[string]any{"chrome": chromeDefaults()}),
	)
	if err != nil {
		return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
	}

	icons := cfg.icons
	if icons == nil {
		icons = icon.NewFSResolver()
	}

	policy := cfg.descriptionPolicy
	if policy == nil {
		policy = defaultDescriptionPolicy()
	}

	return &Renderer{templates: templates, icons: icons, description: policy}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render returns the section markup for list.
func (r *Renderer) Render(ctx context.Context, list feature.List, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	classes := classOverrides(options.Classes)
	attrs := icon.Attributes{Class: iconClass(options.Classes), Role: IconRole}
	headingTag := options.HeadingLevel.Tag()
	cardTemplate := options.Theme.Partial(PartialCard, TemplateCard)
	headingTemplate := options.Theme.Partial(PartialHeading, TemplateHeading)

	cards := make([]string, 0, list.Len())
	for i, descriptor := range list.Each() {
		card, err := r.renderCard(ctx, descriptor, classes, attrs, headingTag, cardTemplate, headingTemplate)
		if err != nil {
			return nil, fmt.Errorf("html renderer: card %d (%q): %w", i, descriptor.Title, err)
		}
		cards = append(cards, card)
	}

	result, err := r.execute(options.Theme.Partial(PartialSection, TemplateSection), map[string]any{
		"classes": classes,
		"style":   options.Theme.InlineStyle(),
		"cards":   strings.Join(cards, "\n"),
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// Component wraps Render as a templ.Component so templ layouts can embed the
// section directly.
func (r *Renderer) Component(list feature.List, options render.RenderOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out, err := r.Render(ctx, list, options)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	})
}

func (r *Renderer) renderCard(ctx context.Context, d feature.Descriptor, classes map[string]any, attrs icon.Attributes, headingTag, cardTemplate, headingTemplate string) (string, error) {
	markup, err := r.icons.Resolve(ctx, d.Icon, attrs)
	if err != nil {
		return "", err
	}

	heading, err := r.execute(headingTemplate, map[string]any{
		"tag":  headingTag,
		"text": d.Title,
	})
	if err != nil {
		return "", fmt.Errorf("render heading: %w", err)
	}

	card, err := r.execute(cardTemplate, map[string]any{
		"classes": classes,
		"card": map[string]any{
			"icon":        markup,
			"heading":     heading,
			"description": r.sanitizeDescription(d.Description),
		},
	})
	if err != nil {
		return "", fmt.Errorf("render card: %w", err)
	}
	return strings.TrimRight(card, "\n"), nil
}

// execute renders partial as an inline template body when it contains template
// tags, otherwise as a template path. Themes may ship either.
func (r *Renderer) execute(partial string, data map[string]any) (string, error) {
	if strings.Contains(partial, "{{") || strings.Contains(partial, "{%") {
		return r.templates.RenderString(partial, data)
	}
	return r.templates.RenderTemplate(partial, data)
}

func (r *Renderer) sanitizeDescription(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(r.description.Sanitize(trimmed))
}

var (
	descriptionPolicyOnce sync.Once
	descriptionPolicy     *bluemonday.Policy
)

// defaultDescriptionPolicy keeps inline formatting and links while dropping
// scripts, styles, and event handlers.
func defaultDescriptionPolicy() *bluemonday.Policy {
	descriptionPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "strong", "i", "em", "code", "br", "span", "small", "mark")
		policy.AllowAttrs("href", "title").OnElements("a")
		policy.AllowStandardURLs()
		policy.RequireNoFollowOnLinks(false)
		policy.AllowAttrs("class").OnElements("span", "code")
		descriptionPolicy = policy
	})
	return descriptionPolicy
}
