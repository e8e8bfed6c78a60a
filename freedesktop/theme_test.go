package freedesktop

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goconify/goconify/iconify"
	"github.com/goconify/goconify/internal/tempfiles"
)

// fakeFetcher serves canned SVG bodies without a network.
type fakeFetcher struct {
	calls []string
}

func (f *fakeFetcher) SVG(key string, opts *iconify.SVGOptions) ([]byte, error) {
	f.calls = append(f.calls, key)
	color := ""
	if opts != nil {
		color = opts.Color
	}
	return []byte(fmt.Sprintf("<svg><!-- %s %s --></svg>", key, color)), nil
}

func TestTheme_Layout(t *testing.T) {
	f := &fakeFetcher{}
	base := t.TempDir()

	icons := map[string]Icon{
		"edit-copy":        {Key: "ic:sharp-content-copy"},
		"edit-delete":      {Key: "ic:sharp-delete", Options: &iconify.SVGOptions{Color: "red"}},
		"weather-overcast": {Key: "ic:sharp-cloud"},
		"bell":             {Key: "bi:bell"},
	}
	got, err := Theme(f, "mytheme", icons, Options{BaseDirectory: base})
	if err != nil {
		t.Fatalf("Theme failed: %v", err)
	}
	if got != base {
		t.Errorf("Theme returned %q, want the base directory %q", got, base)
	}

	// Named icons land in their spec directories, unknown ones in "other".
	for file, want := range map[string]string{
		"actions/edit-copy.svg":       "",
		"actions/edit-delete.svg":     "red",
		"status/weather-overcast.svg": "",
		"other/bell.svg":              "",
	} {
		b, err := os.ReadFile(filepath.Join(base, "mytheme", file))
		if err != nil {
			t.Errorf("missing %s: %v", file, err)
			continue
		}
		if want != "" && !strings.Contains(string(b), want) {
			t.Errorf("%s = %q, want per-icon option %q applied", file, b, want)
		}
	}
}

func TestTheme_Index(t *testing.T) {
	f := &fakeFetcher{}
	base := t.TempDir()

	icons := map[string]Icon{
		"edit-copy": {Key: "ic:sharp-content-copy"},
		"bell":      {Key: "bi:bell"},
	}
	if _, err := Theme(f, "mytheme", icons, Options{BaseDirectory: base, Comment: "test theme"}); err != nil {
		t.Fatalf("Theme failed: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(base, "mytheme", "index.theme"))
	if err != nil {
		t.Fatalf("index.theme missing: %v", err)
	}
	index := string(b)
	for _, want := range []string{
		"Name=mytheme",
		"Comment=test theme",
		"Directories=actions,other",
		"[actions]",
		"Context=Actions",
		"[other]",
		"Context=Other",
		"Type=Scalable",
	} {
		if !strings.Contains(index, want) {
			t.Errorf("index.theme lacks %q:\n%s", want, index)
		}
	}
}

func TestTheme_ThemeWideOptions(t *testing.T) {
	f := &fakeFetcher{}
	base := t.TempDir()

	icons := map[string]Icon{"bell": {Key: "bi:bell"}}
	opts := Options{BaseDirectory: base, SVG: &iconify.SVGOptions{Color: "blue"}}
	if _, err := Theme(f, "mytheme", icons, opts); err != nil {
		t.Fatalf("Theme failed: %v", err)
	}

	b, _ := os.ReadFile(filepath.Join(base, "mytheme", "other", "bell.svg"))
	if !strings.Contains(string(b), "blue") {
		t.Errorf("theme-wide options not applied: %q", b)
	}
}

func TestTheme_TempBaseRemovedAtCleanup(t *testing.T) {
	f := &fakeFetcher{}

	base, err := Theme(f, "mytheme", map[string]Icon{"bell": {Key: "bi:bell"}}, Options{})
	if err != nil {
		t.Fatalf("Theme failed: %v", err)
	}
	if _, err := os.Stat(base); err != nil {
		t.Fatalf("temp base missing: %v", err)
	}

	tempfiles.Cleanup()
	if _, err := os.Stat(base); !os.IsNotExist(err) {
		t.Error("temp base survived Cleanup")
	}
}
