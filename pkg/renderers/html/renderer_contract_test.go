package html_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-featuregrid/pkg/feature"
	"github.com/goliatone/go-featuregrid/pkg/icon"
	"github.com/goliatone/go-featuregrid/pkg/render"
	htmlrenderer "github.com/goliatone/go-featuregrid/pkg/renderers/html"
	"github.com/goliatone/go-featuregrid/pkg/testsupport"
)

func newRenderer(t *testing.T, options ...htmlrenderer.Option) *htmlrenderer.Renderer {
	t.Helper()

	renderer, err := htmlrenderer.New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func TestRenderer_HomepageOneCardPerDescriptorInOrder(t *testing.T) {
	list := feature.Homepage()
	output, err := newRenderer(t).Render(testsupport.Context(), list, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	cards := testsupport.ParseCards(t, output, string(htmlrenderer.ClassRow))
	if len(cards) != list.Len() {
		t.Fatalf("expected %d cards, got %d", list.Len(), len(cards))
	}
	for i, descriptor := range list.All() {
		card := cards[i]
		if card.Title != descriptor.Title {
			t.Fatalf("card %d title = %q, want %q", i, card.Title, descriptor.Title)
		}
		if card.Description != descriptor.Description {
			t.Fatalf("card %d description = %q, want %q", i, card.Description, descriptor.Description)
		}
		if !card.HasIcon {
			t.Fatalf("card %d: expected icon svg", i)
		}
		if card.Class != string(htmlrenderer.ClassColumn) {
			t.Fatalf("card %d class = %q", i, card.Class)
		}
	}
}

func TestRenderer_ScenarioABC(t *testing.T) {
	output, err := newRenderer(t).Render(testsupport.Context(), testsupport.ABCList(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	cards := testsupport.ParseCards(t, output, string(htmlrenderer.ClassRow))
	titles := make([]string, 0, len(cards))
	for _, card := range cards {
		titles = append(titles, card.Title)
		if card.HasIcon {
			t.Fatalf("card %q: expected no icon for blank ref", card.Title)
		}
	}
	if diff := cmp.Diff([]string{"A", "B", "C"}, titles); diff != "" {
		t.Fatalf("titles mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_Idempotent(t *testing.T) {
	renderer := newRenderer(t)
	first, err := renderer.Render(testsupport.Context(), feature.Homepage(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := renderer.Render(testsupport.Context(), feature.Homepage(), render.RenderOptions{})
		if err != nil {
			t.Fatalf("render %d: %v", i, err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("render %d differs from first render", i)
		}
	}

	fresh, err := newRenderer(t).Render(testsupport.Context(), feature.Homepage(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("fresh render: %v", err)
	}
	if !bytes.Equal(first, fresh) {
		t.Fatalf("fresh renderer output differs")
	}
}

func TestRenderer_TitlesAreEscapedNotTransformed(t *testing.T) {
	list := feature.NewList(feature.Descriptor{Title: "<Fast> & Small", Description: "x"})
	output, err := newRenderer(t).Render(testsupport.Context(), list, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.Contains(output, []byte("&lt;Fast&gt; &amp; Small")) {
		t.Fatalf("expected escaped title in output:\n%s", output)
	}
	cards := testsupport.ParseCards(t, output, string(htmlrenderer.ClassRow))
	if len(cards) != 1 || cards[0].Title != "<Fast> & Small" {
		t.Fatalf("unexpected cards %+v", cards)
	}
}

func TestRenderer_DescriptionMarkupIsSanitised(t *testing.T) {
	list := feature.NewList(feature.Descriptor{
		Title:       "Rich",
		Description: `Ships in <strong>seconds</strong><script>alert(1)</script> <em onclick="x()">now</em>`,
	})
	output, err := newRenderer(t).Render(testsupport.Context(), list, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	cards := testsupport.ParseCards(t, output, string(htmlrenderer.ClassRow))
	if len(cards) != 1 {
		t.Fatalf("expected one card, got %d", len(cards))
	}
	want := `Ships in <strong>seconds</strong> <em>now</em>`
	if cards[0].Description != want {
		t.Fatalf("description = %q, want %q", cards[0].Description, want)
	}
}

func TestRenderer_HeadingLevel(t *testing.T) {
	output, err := newRenderer(t).Render(testsupport.Context(), testsupport.ABCList(), render.RenderOptions{HeadingLevel: 2})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if heading := testsupport.FindElement(t, output, "h2"); heading == nil {
		t.Fatalf("expected h2 heading in output:\n%s", output)
	}
	if heading := testsupport.FindElement(t, output, "h3"); heading != nil {
		t.Fatalf("expected no h3 heading when level 2 requested")
	}
}

func TestRenderer_MissingIconFails(t *testing.T) {
	list := feature.NewList(feature.Descriptor{Title: "Broken", Icon: "nope.svg"})
	_, err := newRenderer(t).Render(testsupport.Context(), list, render.RenderOptions{})
	if !errors.Is(err, icon.ErrNotFound) {
		t.Fatalf("expected icon.ErrNotFound, got %v", err)
	}
}

func TestRenderer_EmptyList(t *testing.T) {
	output, err := newRenderer(t).Render(testsupport.Context(), feature.List{}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if cards := testsupport.ParseCards(t, output, string(htmlrenderer.ClassRow)); len(cards) != 0 {
		t.Fatalf("expected no cards, got %d", len(cards))
	}
}

func TestRenderer_Metadata(t *testing.T) {
	renderer := newRenderer(t)
	if renderer.Name() != "html" {
		t.Fatalf("unexpected name %q", renderer.Name())
	}
	if renderer.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", renderer.ContentType())
	}
}
