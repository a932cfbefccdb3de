package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-featuregrid/pkg/feature"
	"github.com/goliatone/go-featuregrid/pkg/render"
	"github.com/goliatone/go-featuregrid/pkg/testsupport"
)

func TestOrchestrator_DefaultsRenderHomepageHTML(t *testing.T) {
	orch := New()

	result, err := orch.Render(context.Background(), Request{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result.Renderer != "html" || result.ContentType != "text/html; charset=utf-8" {
		t.Fatalf("unexpected result metadata %+v", result)
	}

	cards := testsupport.ParseCards(t, result.Body, "row")
	if len(cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(cards))
	}
	titles := []string{cards[0].Title, cards[1].Title, cards[2].Title}
	if diff := cmp.Diff(feature.Homepage().Titles(), titles); diff != "" {
		t.Fatalf("titles mismatch (-want +got):\n%s", diff)
	}
}

func TestOrchestrator_RegistersBuiltInRenderers(t *testing.T) {
	if diff := cmp.Diff([]string{"html", "markdown"}, New().Renderers()); diff != "" {
		t.Fatalf("renderers mismatch (-want +got):\n%s", diff)
	}
}

func TestOrchestrator_RequestListAndRenderer(t *testing.T) {
	list := testsupport.ABCList()
	out, err := New().Generate(context.Background(), Request{List: &list, Renderer: "markdown"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(string(out), "### A\n") || !strings.Contains(string(out), "### C\n") {
		t.Fatalf("unexpected markdown output %q", out)
	}
}

func TestOrchestrator_WithListReplacesDefault(t *testing.T) {
	out, err := New(WithList(testsupport.ABCList()), WithDefaultRenderer("markdown")).Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(string(out), "### A\n") {
		t.Fatalf("expected configured list, got %q", out)
	}
}

func TestOrchestrator_UnknownRenderer(t *testing.T) {
	_, err := New().Generate(context.Background(), Request{Renderer: "pdf"})
	if !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestOrchestrator_InjectedRegistry(t *testing.T) {
	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(WithRegistry(registry), WithDefaultRenderer(renderer.Name()))
	out, err := orch.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(out) != "最佳实践,丰富功能,最新技术栈" {
		t.Fatalf("unexpected output %q", out)
	}
	if renderer.options.Theme != nil {
		t.Fatalf("expected no theme without selector")
	}
}

func TestOrchestrator_Context(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().Generate(ctx, Request{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

type captureRenderer struct {
	options render.RenderOptions
}

func (r *captureRenderer) Name() string {
	return "capture"
}

func (r *captureRenderer) ContentType() string {
	return "text/plain"
}

func (r *captureRenderer) Render(_ context.Context, list feature.List, opts render.RenderOptions) ([]byte, error) {
	r.options = opts
	return []byte(strings.Join(list.Titles(), ",")), nil
}
