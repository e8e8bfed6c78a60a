package iconify

import (
	"sync"

	"github.com/goconify/goconify/internal/tempfiles"
)

// The package-level API mirrors Client for callers that don't need their
// own configuration. The default client is created once, on first use.
var (
	defaultOnce   sync.Once
	defaultClient *Client
)

// Default returns the shared, environment-configured client.
func Default() *Client {
	defaultOnce.Do(func() {
		defaultClient = New(Config{})
	})
	return defaultClient
}

// SVG fetches an icon through the shared client. See Client.SVG.
func SVG(key string, opts *SVGOptions) ([]byte, error) {
	return Default().SVG(key, opts)
}

// SVGPath fetches an icon and returns a file path. See Client.SVGPath.
func SVGPath(key string, opts *SVGOptions, dir string) (string, error) {
	return Default().SVGPath(key, opts, dir)
}

// CSS generates a stylesheet through the shared client. See Client.CSS.
func CSS(prefix string, icons []string, opts *CSSOptions) (string, error) {
	return Default().CSS(prefix, icons, opts)
}

// Collections lists icon sets through the shared client.
func Collections(prefixes ...string) (map[string]IconSetInfo, error) {
	return Default().Collections(prefixes...)
}

// GetCollection lists the icons of one icon set through the shared client.
func GetCollection(prefix string, info, chars bool) (*Collection, error) {
	return Default().Collection(prefix, info, chars)
}

// LastModified returns the freshness table through the shared client.
func LastModified(prefixes ...string) (map[string]int64, error) {
	return Default().LastModified(prefixes...)
}

// IconData returns icon data through the shared client.
func IconData(prefix string, names ...string) (*IconSet, error) {
	return Default().IconData(prefix, names...)
}

// Search queries icons through the shared client.
func Search(q string, opts *SearchOptions) (*SearchResult, error) {
	return Default().Search(q, opts)
}

// Keywords suggests search queries through the shared client.
func Keywords(prefix, keyword string) (*KeywordsResult, error) {
	return Default().Keywords(prefix, keyword)
}

// APIVersion returns the API server version through the shared client.
func APIVersion() (string, error) {
	return Default().APIVersion()
}

// ClearCache empties the shared client's cache. See Client.ClearCache.
func ClearCache() error {
	return Default().ClearCache()
}

// CacheDirectory returns the shared client's resolved cache directory.
func CacheDirectory() string {
	return Default().Directory()
}

// Cleanup removes temporary files created by SVGPath and the freedesktop
// theme builder. Call it once on the way out of the process.
func Cleanup() {
	tempfiles.Cleanup()
}
