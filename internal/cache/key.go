package cache

import (
	"sort"
	"strings"
)

// On-disk key format. Keys double as filenames, so this is a compatibility
// contract: segments are joined with Delim, identifier parts first (in the
// order given), then each non-empty option as a name/value segment pair
// sorted by option name, then the last-modified timestamp. Iconify prefixes
// and icon names may themselves contain the delimiter; the sweep only
// interprets the first and last segments, so keys stay unambiguous enough.
const (
	// Delim separates key segments.
	Delim = "-"

	// NoLastModified is the freshness segment used when the last-modified
	// table cannot be fetched (offline). All keys written offline share it,
	// which is what makes the prefix fallback in Lookup possible.
	NoLastModified = "000"

	// Ext is the filename extension appended to keys by the disk store.
	Ext = ".svg"
)

// Key derives a deterministic cache key from the identifier parts, the
// request options, and the upstream last-modified timestamp. Options with
// empty values are dropped, remaining options are sorted by name, so two
// calls with the same logical arguments always produce the same key. An
// empty lastModified is replaced with the NoLastModified sentinel.
func Key(parts []string, opts map[string]string, lastModified string) string {
	segs := make([]string, 0, len(parts)+2*len(opts)+1)
	segs = append(segs, parts...)

	names := make([]string, 0, len(opts))
	for name, val := range opts {
		if val != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		segs = append(segs, name, opts[name])
	}

	if lastModified == "" {
		lastModified = NoLastModified
	}
	return strings.Join(append(segs, lastModified), Delim)
}

// Stem returns the identifier+options portion of a sentinel key, i.e. the
// key minus the trailing NoLastModified segment, and whether the key carried
// the sentinel at all. The returned stem keeps its trailing delimiter so it
// can be used as a prefix against keys with real timestamps.
func Stem(key string) (string, bool) {
	if !strings.HasSuffix(key, Delim+NoLastModified) {
		return "", false
	}
	return strings.TrimSuffix(key, NoLastModified), true
}
