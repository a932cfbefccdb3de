package testsupport

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"github.com/goliatone/go-featuregrid/pkg/feature"
)

// ABCList returns the three descriptor scenario list (titles A, B, C) used
// across renderer tests.
func ABCList() feature.List {
	return feature.NewList(
		feature.Descriptor{Title: "A", Description: "Alpha card."},
		feature.Descriptor{Title: "B", Description: "Beta card."},
		feature.Descriptor{Title: "C", Description: "Gamma card."},
	)
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// Card is the parsed view of one rendered feature card.
type Card struct {
	Title       string
	Description string
	HasIcon     bool
	Class       string
}

// ParseCards parses rendered HTML and returns the cards found under the
// element carrying rowClass, in document order. A card is any direct child
// element of the row.
func ParseCards(t *testing.T, markup []byte, rowClass string) []Card {
	t.Helper()

	doc, err := html.Parse(bytes.NewReader(markup))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	row := findFirst(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasClass(n, rowClass)
	})
	if row == nil {
		t.Fatalf("no element with class %q in output:\n%s", rowClass, markup)
	}

	var cards []Card
	for child := row.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		card := Card{Class: attr(child, "class")}
		if heading := findFirst(child, isHeading); heading != nil {
			card.Title = textContent(heading)
		}
		if para := findFirst(child, func(n *html.Node) bool {
			return n.Type == html.ElementNode && n.Data == "p"
		}); para != nil {
			card.Description = innerHTML(t, para)
		}
		card.HasIcon = findFirst(child, func(n *html.Node) bool {
			return n.Type == html.ElementNode && n.Data == "svg"
		}) != nil
		cards = append(cards, card)
	}
	return cards
}

// FindElement returns the first element matching tag in markup, or nil.
func FindElement(t *testing.T, markup []byte, tag string) *html.Node {
	t.Helper()

	doc, err := html.Parse(bytes.NewReader(markup))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return findFirst(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	})
}

// Attr returns the named attribute of n.
func Attr(n *html.Node, name string) string {
	return attr(n, name)
}

func isHeading(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findFirst(child, match); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, token := range strings.Fields(attr(n, "class")) {
		if token == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, name string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func innerHTML(t *testing.T, n *html.Node) string {
	t.Helper()

	var buf bytes.Buffer
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&buf, child); err != nil {
			t.Fatalf("render node: %v", err)
		}
	}
	return strings.TrimSpace(buf.String())
}
