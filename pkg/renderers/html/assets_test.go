package html

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-featuregrid/pkg/render"
)

func TestAssetsFSContainsStylesheet(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), StylesheetName)
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	for _, selector := range []string{".features", ".featureSvg"} {
		if !strings.Contains(string(data), selector) {
			t.Fatalf("expected stylesheet to define %s", selector)
		}
	}
}

func TestChromeDefaultsCoverEveryOverrideKey(t *testing.T) {
	defaults := chromeDefaults()
	overrides := classOverrides(nil)
	if len(defaults) != len(overrides) {
		t.Fatalf("defaults have %d keys, overrides %d", len(defaults), len(overrides))
	}
	for key := range overrides {
		if _, ok := defaults[key]; !ok {
			t.Fatalf("override key %q has no default", key)
		}
	}
	if defaults["column"] != "col col--4" || defaults["body"] != "text--center padding-horiz--md" {
		t.Fatalf("unexpected defaults %+v", defaults)
	}
}

func TestClassOverridesDropBlankValues(t *testing.T) {
	got := classOverrides(&render.Classes{Row: "   ", Column: " flex "})
	if got["row"] != "" || got["column"] != "flex" {
		t.Fatalf("unexpected overrides %+v", got)
	}
}

func TestIconClass(t *testing.T) {
	if got := iconClass(nil); got != "featureSvg" {
		t.Fatalf("default icon class = %q", got)
	}
	if got := iconClass(&render.Classes{Icon: " w-24  w-24 "}); got != "w-24" {
		t.Fatalf("override icon class = %q", got)
	}
}
