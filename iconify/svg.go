package iconify

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/goconify/goconify/internal/cache"
	"github.com/goconify/goconify/internal/tempfiles"
)

// SVGOptions customize icon rendering. The zero value requests the icon as
// published. All fields are optional; empty means unset.
type SVGOptions struct {
	// Color replaces currentColor, hardcoding the palette.
	Color string
	// Height and Width of the rendered icon. Setting only one dimension
	// scales the other to match.
	Height string
	Width  string
	// Flip is "horizontal", "vertical", or both comma separated.
	Flip string
	// Rotate is a number of 90-degree steps ("1".."3") or degrees
	// ("90deg", "90").
	Rotate string
	// Box adds an empty rectangle matching the icon's viewBox, for design
	// tools that would otherwise crop empty pixels.
	Box bool
}

// cacheOpts is the option set as it enters cache key derivation.
func (o *SVGOptions) cacheOpts() map[string]string {
	if o == nil {
		return nil
	}
	opts := map[string]string{
		"color":  o.Color,
		"height": o.Height,
		"width":  o.Width,
		"flip":   o.Flip,
		"rotate": o.Rotate,
	}
	if o.Box {
		opts["box"] = "1"
	}
	return opts
}

// query is the option set as it goes on the wire.
func (o *SVGOptions) query() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	set := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	set("color", o.Color)
	set("height", o.Height)
	set("width", o.Width)
	set("flip", o.Flip)
	set("rotate", normalizeRotate(o.Rotate))
	if o.Box {
		q.Set("box", "1")
	}
	return q
}

// normalizeRotate leaves 90-degree step counts alone and gives everything
// else an explicit "deg" suffix.
func normalizeRotate(rotate string) string {
	switch rotate {
	case "", "1", "2", "3":
		return rotate
	}
	return strings.TrimSuffix(rotate, "deg") + "deg"
}

// SVG returns the SVG document for an icon key like "mdi:home". The cache
// is consulted first: an exact hit for the derived key, then, when the
// last-modified table is unreachable, any cached variant of the same icon
// and options. Only on a miss is the icon fetched and cached.
// https://iconify.design/docs/api/svg.html
func (c *Client) SVG(key string, opts *SVGOptions) ([]byte, error) {
	prefix, name, err := splitKey(key)
	if err != nil {
		return nil, err
	}

	store := c.Store()
	ck := c.svgKey(prefix, name, opts)
	if b, err := cache.Lookup(store, ck); err == nil {
		return b, nil
	}

	b, err := c.fetchSVG(prefix, name, opts)
	if err != nil {
		return nil, err
	}
	if err := store.Put(ck, b); err != nil {
		log.Debug("Could not cache icon", "key", ck, "err", err)
	}
	return b, nil
}

// svgKey derives the cache key for one request. When the last-modified
// table cannot be fetched, or the prefix is missing from it, the offline
// sentinel stands in so the key stays consistent across offline calls.
func (c *Client) svgKey(prefix, name string, opts *SVGOptions) string {
	lastMod := ""
	if table, err := c.LastModified(); err == nil {
		if ts, ok := table[prefix]; ok {
			lastMod = strconv.FormatInt(ts, 10)
		}
	}
	return cache.Key([]string{prefix, name}, opts.cacheOpts(), lastMod)
}

// fetchSVG downloads one icon. The API returns the literal body "404" for
// unknown icons.
func (c *Client) fetchSVG(prefix, name string, opts *SVGOptions) ([]byte, error) {
	b, err := c.get("/"+prefix+"/"+name+".svg", opts.query())
	if err != nil {
		return nil, &FetchError{Key: prefix + ":" + name, Err: err}
	}
	if isUpstream404(b) {
		return nil, &NotFoundError{Key: prefix + ":" + name}
	}
	return b, nil
}

// SVGPath is like SVG but returns a path to an SVG file. With an empty dir
// and persistent caching enabled, that is the cache file itself. Otherwise
// the icon is written to a temporary file under dir (or the system temp
// directory) which is deleted at process exit via Cleanup.
func (c *Client) SVGPath(key string, opts *SVGOptions, dir string) (string, error) {
	prefix, name, err := splitKey(key)
	if err != nil {
		return "", err
	}

	if dir == "" {
		if path, ok := c.cachedSVGPath(c.svgKey(prefix, name, opts)); ok {
			return path, nil
		}
	}

	b, err := c.SVG(key, opts)
	if err != nil {
		return "", err
	}

	// The SVG call above will have cached the icon; prefer that file over
	// writing a duplicate.
	if dir == "" {
		if path, ok := c.cachedSVGPath(c.svgKey(prefix, name, opts)); ok {
			return path, nil
		}
	}

	f, err := os.CreateTemp(dir, "goconify_"+prefix+"-"+name+"_*"+cache.Ext)
	if err != nil {
		return "", fmt.Errorf("unable to create temporary file: %w", err)
	}
	_, werr := f.Write(b)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("unable to write temporary file: %w", werr)
	}
	tempfiles.Register(f.Name())
	return f.Name(), nil
}

// cachedSVGPath returns the on-disk path of an existing cache entry for the
// key, including the offline prefix fallback. Memory-backed stores have no
// paths to offer.
func (c *Client) cachedSVGPath(ck string) (string, bool) {
	ds, ok := c.Store().(*cache.DiskStore)
	if !ok {
		return "", false
	}
	if ds.Contains(ck) {
		return ds.Path(ck), true
	}
	stem, sentinel := cache.Stem(ck)
	if !sentinel {
		return "", false
	}
	for _, existing := range ds.Keys() {
		if strings.HasPrefix(existing, stem) {
			return ds.Path(existing), true
		}
	}
	return "", false
}
