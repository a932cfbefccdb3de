package orchestrator

import (
	"fmt"
	"path"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-featuregrid/pkg/render"
	htmlrenderer "github.com/goliatone/go-featuregrid/pkg/renderers/html"
)

const defaultAssetPrefix = "/assets"

func defaultThemeFallbacks() map[string]string {
	return map[string]string{
		htmlrenderer.PartialSection: htmlrenderer.TemplateSection,
		htmlrenderer.PartialCard:    htmlrenderer.TemplateCard,
		htmlrenderer.PartialHeading: htmlrenderer.TemplateHeading,
	}
}

func (o *Orchestrator) resolveTheme(name, variant string) (*render.ThemeConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}
	if strings.TrimSpace(name) == "" {
		name = o.defaultTheme
	}
	if strings.TrimSpace(variant) == "" {
		variant = o.defaultVariant
	}

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q/%q: %w", name, variant, err)
	}
	if selection == nil {
		return nil, nil
	}
	return themeConfigFromSelection(selection, o.themeFallbacks, o.assetPrefix), nil
}

// themeConfigFromSelection merges manifest and variant data: variant tokens,
// templates, and asset files win over the manifest's, which win over
// fallbacks.
func themeConfigFromSelection(selection *theme.Selection, fallbacks map[string]string, assetPrefix string) *render.ThemeConfig {
	cfg := &render.ThemeConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
		Partials: cloneStrings(fallbacks),
	}
	if cfg.Partials == nil {
		cfg.Partials = map[string]string{}
	}

	prefix := strings.TrimSpace(assetPrefix)
	if prefix == "" {
		prefix = defaultAssetPrefix
	}
	files := map[string]string{}

	if manifest := selection.Manifest; manifest != nil {
		mergeInto(cfg.Tokens, manifest.Tokens)
		mergeInto(cfg.Partials, manifest.Templates)
		mergeInto(files, manifest.Assets.Files)
		if p := strings.TrimSpace(manifest.Assets.Prefix); p != "" {
			prefix = p
		}

		if v, ok := manifest.Variants[selection.Variant]; ok {
			mergeInto(cfg.Tokens, v.Tokens)
			mergeInto(cfg.Partials, v.Templates)
			mergeInto(files, v.Assets.Files)
			if p := strings.TrimSpace(v.Assets.Prefix); p != "" {
				prefix = p
			}
		}
	}

	for key, value := range cfg.Tokens {
		cfg.CSSVars["--"+key] = value
	}

	cfg.AssetURL = func(key string) string {
		file := strings.TrimSpace(files[key])
		if file == "" {
			return ""
		}
		if isAbsoluteURL(file) {
			return file
		}
		return path.Join(prefix, file)
	}
	return cfg
}

func isAbsoluteURL(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") || strings.HasPrefix(value, "//")
}

func mergeInto(dst, src map[string]string) {
	for key, value := range src {
		key = strings.TrimSpace(key)
		if key == "" || strings.TrimSpace(value) == "" {
			continue
		}
		dst[key] = value
	}
}

func cloneStrings(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
