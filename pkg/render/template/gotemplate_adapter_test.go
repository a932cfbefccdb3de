package template_test

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-featuregrid/pkg/render/template/gotemplate"
	"github.com/goliatone/go-featuregrid/pkg/testsupport"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	assertGolden(t, "hello.golden", result)
}

func TestGoTemplateEngine_GlobalData(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}))

	result, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	assertGolden(t, "use-global.golden", result)
}

func TestGoTemplateEngine_RequestDataShadowsGlobals(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{"name": "global"}))

	result, err := engine.RenderTemplate("hello", map[string]any{"name": "request"})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if result != "Hello request!" {
		t.Fatalf("expected request data to win, got %q", result)
	}
}

func TestGoTemplateEngine_ClassnamesFilter(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("use-classnames", map[string]any{
		"base":  " col  col--4 ",
		"extra": "featured col",
		"label": "Card",
	})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	assertGolden(t, "use-classnames.golden", result)
}

func TestGoTemplateEngine_ClassnamesFilterWithoutParam(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.RenderString(`{{ override|default:fallback|classnames }}`, map[string]any{
		"override": "",
		"fallback": " text--center  text--center ",
	})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "text--center" {
		t.Fatalf("unexpected class list %q", got)
	}
}

func TestGoTemplateEngine_RenderStringEscapes(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.RenderString("{{ title }}", map[string]any{"title": "<b>最佳实践</b>"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "&lt;b&gt;最佳实践&lt;/b&gt;" {
		t.Fatalf("expected autoescaped output, got %q", got)
	}
}

func TestGoTemplateEngine_BaseDirOverridesFS(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hello.tpl"), []byte("Hi {{ name }}"), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	engine := newEngine(t, gotemplate.WithBaseDir(dir))

	got, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if got != "Hi Ada" {
		t.Fatalf("expected directory template, got %q", got)
	}

	// Files missing from the directory still come from the fs.FS.
	if _, err := engine.RenderTemplate("use-classnames", map[string]any{"base": "a"}); err != nil {
		t.Fatalf("expected fs fallback, got %v", err)
	}
}

func TestGoTemplateEngine_BaseDirMustExist(t *testing.T) {
	if _, err := gotemplate.New(gotemplate.WithBaseDir(filepath.Join(t.TempDir(), "missing"))); err == nil {
		t.Fatalf("expected error for missing template dir")
	}
}

func TestGoTemplateEngine_MissingTemplate(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestGoTemplateEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func newEngine(t *testing.T, opts ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(templatesFS)}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func assertGolden(t *testing.T, name, result string) {
	t.Helper()

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", name))
	if diff := testsupport.CompareGolden(want, result); diff != "" {
		t.Fatalf("render template mismatch (-want +got):\n%s", diff)
	}
}
