// Package freedesktop builds freedesktop-compliant icon theme folders from
// fetched icons: one subdirectory per icon-naming-spec context, a generated
// index.theme, and SVG files placed by icon name. It is a consumer of the
// iconify client and its cache; icons are fetched through the Fetcher it is
// given.
package freedesktop

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/goconify/goconify/iconify"
	"github.com/goconify/goconify/internal/tempfiles"
)

// miscDir collects icons whose names the naming spec does not recognize.
const miscDir = "other"

const (
	headerTemplate = `
[Icon Theme]
Name=%s
Comment=%s
Directories=%s
`
	subdirTemplate = `
[%s]
Size=16
MinSize=8
MaxSize=512
Type=Scalable
`
)

// Fetcher fetches one icon as SVG bytes. *iconify.Client satisfies it.
type Fetcher interface {
	SVG(key string, opts *iconify.SVGOptions) ([]byte, error)
}

// Icon names one iconify icon and its rendering options.
type Icon struct {
	// Key is the iconify key, "prefix:name".
	Key string
	// Options are per-icon rendering options, overriding the theme-wide
	// ones.
	Options *iconify.SVGOptions
}

// Options configure Theme.
type Options struct {
	// Comment for the index.theme file.
	Comment string
	// BaseDirectory receives the theme folder. When empty, a temporary
	// directory is created and removed at process exit.
	BaseDirectory string
	// SVG options applied to every icon without per-icon options.
	SVG *iconify.SVGOptions
}

// Theme writes a theme folder under the base directory and returns the base
// directory path (not the theme subdirectory). The icons argument maps
// freedesktop icon names, which determine the subdirectory per the icon
// naming specification, to iconify icons; unrecognized names land in the
// "other" directory.
func Theme(f Fetcher, name string, icons map[string]Icon, opts Options) (string, error) {
	if opts.Comment == "" {
		opts.Comment = "goconify-generated icon theme"
	}

	base, err := baseDir(opts.BaseDirectory)
	if err != nil {
		return "", err
	}
	themeDir := filepath.Join(base, name)
	if err := os.MkdirAll(themeDir, 0o755); err != nil {
		return "", fmt.Errorf("unable to create theme directory: %w", err)
	}

	dirs := map[string]bool{}
	// Sorted for reproducible fetch order.
	names := make([]string, 0, len(icons))
	for n := range icons {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, fileName := range names {
		icon := icons[fileName]
		fileKey := strings.ToLower(strings.TrimSuffix(fileName, ".svg"))
		subdir := iconDirs[fileKey]
		if subdir == "" {
			subdir = miscDir
		}
		dest := filepath.Join(themeDir, subdir)
		if err := os.MkdirAll(dest, 0o755); err != nil {
			return "", fmt.Errorf("unable to create theme directory: %w", err)
		}
		dirs[subdir] = true

		svgOpts := icon.Options
		if svgOpts == nil {
			svgOpts = opts.SVG
		}
		b, err := f.SVG(icon.Key, svgOpts)
		if err != nil {
			return "", err
		}
		target := filepath.Join(dest, strings.TrimSuffix(fileName, ".svg")+".svg")
		if err := os.WriteFile(target, b, 0o644); err != nil {
			return "", fmt.Errorf("unable to write icon: %w", err)
		}
	}

	if err := writeIndex(themeDir, name, opts.Comment, dirs); err != nil {
		return "", err
	}
	return base, nil
}

func baseDir(dir string) (string, error) {
	if dir == "" {
		tmp, err := os.MkdirTemp("", "goconify-theme-")
		if err != nil {
			return "", fmt.Errorf("unable to create theme directory: %w", err)
		}
		tempfiles.Register(tmp)
		return tmp, nil
	}
	dir, err := homedir.Expand(dir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("unable to create theme directory: %w", err)
	}
	return dir, nil
}

func writeIndex(themeDir, name, comment string, dirs map[string]bool) error {
	sorted := make([]string, 0, len(dirs))
	for d := range dirs {
		sorted = append(sorted, d)
	}
	sort.Strings(sorted)

	var b strings.Builder
	fmt.Fprintf(&b, headerTemplate, name, comment, strings.Join(sorted, ","))
	for _, d := range sorted {
		fmt.Fprintf(&b, subdirTemplate, d)
		if ctx := dirContexts[d]; ctx != "" {
			fmt.Fprintf(&b, "Context=%s\n", ctx)
		}
	}
	path := filepath.Join(themeDir, "index.theme")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("unable to write index.theme: %w", err)
	}
	return nil
}
