package markdown_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-featuregrid/pkg/feature"
	"github.com/goliatone/go-featuregrid/pkg/render"
	"github.com/goliatone/go-featuregrid/pkg/renderers/markdown"
	"github.com/goliatone/go-featuregrid/pkg/testsupport"
)

func TestRenderer_ScenarioOrder(t *testing.T) {
	out, err := markdown.New().Render(testsupport.Context(), testsupport.ABCList(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "### A\n\nAlpha card.\n\n### B\n\nBeta card.\n\n### C\n\nGamma card.\n\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("markdown mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_StripsMarkupAndAddsIcons(t *testing.T) {
	list := feature.NewList(feature.Descriptor{
		Title:       "Rich",
		Icon:        "bolt.svg",
		Description: `Ships in <strong>seconds</strong> &amp; stays <em>small</em>`,
	})
	out, err := markdown.New(markdown.WithIconBaseURL("/assets/img/")).Render(testsupport.Context(), list, render.RenderOptions{HeadingLevel: 2})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "## Rich\n\n![Rich](/assets/img/bolt.svg)\n\nShips in seconds & stays small\n\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("markdown mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_Homepage(t *testing.T) {
	out, err := markdown.New().Render(testsupport.Context(), feature.Homepage(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "### 最佳实践\n\n合理的框架选择，良好的工程实践助你持续产出高质量代码。\n\n" +
		"### 丰富功能\n\n提炼了典型的业务模型，提供了丰富的功能组件。\n\n" +
		"### 最新技术栈\n\n使用 React / Zustand / React-Router / Vite / Ant-Design 等前端前沿技术开发。\n\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("markdown mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_EscapesTitleMetacharacters(t *testing.T) {
	list := feature.NewList(
		feature.Descriptor{Title: "*Bold* _moves_ #1 [fast]", Icon: "x.svg"},
		feature.Descriptor{Title: "Plain", Description: "Text."},
	)
	out, err := markdown.New(markdown.WithIconBaseURL("/img")).Render(testsupport.Context(), list, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	title := `\*Bold\* \_moves\_ \#1 \[fast\]`
	want := "### " + title + "\n\n![" + title + "](/img/x.svg)\n\n### Plain\n\nText.\n\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("markdown mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_Context(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := markdown.New().Render(ctx, feature.Homepage(), render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
