package gotemplate

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-featuregrid/pkg/classnames"
	"github.com/goliatone/go-featuregrid/pkg/render/template"
)

const setName = "featuregrid"

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	baseDir   string
	files     fs.FS
	extension string
	globals   pongo2.Context
}

// WithBaseDir loads templates from a directory on disk. When combined with
// WithFS the directory is searched first, so it can override single files.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.files = files
	}
}

// WithExtension overrides the default ".tpl" template extension.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		cfg.extension = "." + strings.TrimPrefix(ext, ".")
	}
}

// WithGlobalData seeds values visible to every template. Later calls win on
// key collisions.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		for key, value := range data {
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			cfg.globals[key] = value
		}
	}
}

// Engine is a pongo2 template set with a per-path cache of compiled
// templates. Globals are fixed at construction, so Engine is safe for
// concurrent use.
type Engine struct {
	set       *pongo2.TemplateSet
	extension string

	mu       sync.RWMutex
	compiled map[string]*pongo2.Template
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine. WithBaseDir, WithFS or both are required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{extension: ".tpl", globals: pongo2.Context{}}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("gotemplate: template dir %q: %w", cfg.baseDir, err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.files != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.files))
	}
	if len(loaders) == 0 {
		return nil, errors.New("gotemplate: a template dir or fs.FS is required")
	}

	registerFilters()

	set := pongo2.NewSet(setName, loaders...)
	set.Globals.Update(cfg.globals)

	return &Engine{
		set:       set,
		extension: cfg.extension,
		compiled:  make(map[string]*pongo2.Template),
	}, nil
}

// RenderTemplate executes the template at name. The configured extension is
// appended when name lacks it.
func (e *Engine) RenderTemplate(name string, data map[string]any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	if !strings.HasSuffix(name, e.extension) {
		name += e.extension
	}

	tmpl, err := e.lookup(name)
	if err != nil {
		return "", err
	}
	out, err := tmpl.Execute(pongo2.Context(data))
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute %q: %w", name, err)
	}
	return out, nil
}

// RenderString compiles and executes templateContent. The result is not
// cached.
func (e *Engine) RenderString(templateContent string, data map[string]any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("gotemplate: engine is nil")
	}

	tmpl, err := e.set.FromString(templateContent)
	if err != nil {
		return "", fmt.Errorf("gotemplate: parse inline template: %w", err)
	}
	out, err := tmpl.Execute(pongo2.Context(data))
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute inline template: %w", err)
	}
	return out, nil
}

func (e *Engine) lookup(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.compiled[path]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.compiled[path]; ok {
		return tmpl, nil
	}

	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load %q: %w", path, err)
	}
	e.compiled[path] = tmpl
	return tmpl, nil
}

var filtersOnce sync.Once

// registerFilters installs the process-wide filters the feature templates
// use. pongo2 filters are global, so this runs once.
func registerFilters() {
	filtersOnce.Do(func() {
		if !pongo2.FilterExists("classnames") {
			_ = pongo2.RegisterFilter("classnames", filterClassnames)
		}
	})
}

// filterClassnames normalises a class list and appends an optional extra
// list: {{ base|classnames:extra }}. Duplicates keep their first position.
func filterClassnames(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	values := []any{in.String()}
	if param != nil && !param.IsNil() {
		values = append(values, param.String())
	}
	return pongo2.AsValue(classnames.Join(values...)), nil
}
