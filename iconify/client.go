package iconify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/goconify/goconify/internal/cache"
)

// DefaultBaseURL is the public Iconify API.
const DefaultBaseURL = "https://api.iconify.design"

// Config configures a Client. The zero value reads everything from the
// environment.
type Config struct {
	// BaseURL of the API. Defaults to $GOCONIFY_API or DefaultBaseURL.
	BaseURL string

	// Cache selects the cache location: a directory path, "0"/"false" to
	// disable persistent caching, or empty for the platform default.
	// Defaults to $GOCONIFY_CACHE.
	Cache string

	// HTTPClient optionally replaces http.DefaultClient.
	HTTPClient *http.Client

	// RequestsPerSecond throttles API calls. Zero means the default of 20.
	RequestsPerSecond float64
}

// envConfig is the environment-driven part of Config, read once per process.
type envConfig struct {
	Cache   string `env:"GOCONIFY_CACHE"`
	BaseURL string `env:"GOCONIFY_API" envDefault:"https://api.iconify.design"`
}

// Client talks to the Iconify API and owns the SVG cache handle. Methods
// are synchronous; a network failure surfaces immediately as an error.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter

	cacheOverride string

	mu       sync.Mutex
	store    cache.Store
	lastMod  map[string]int64
	haveLast bool
}

// New returns a Client for the given configuration. The cache store is
// opened lazily on first use.
func New(cfg Config) *Client {
	ec, err := env.ParseAs[envConfig]()
	if err != nil {
		log.Warn("Could not parse environment", "err", err)
		ec.BaseURL = DefaultBaseURL
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = ec.BaseURL
	}
	if cfg.Cache == "" {
		cfg.Cache = ec.Cache
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 20
	}
	return &Client{
		baseURL:       strings.TrimSuffix(cfg.BaseURL, "/"),
		http:          cfg.HTTPClient,
		limiter:       rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		cacheOverride: cfg.Cache,
	}
}

// Store returns the client's cache store, opening it on first call. Opening
// also runs an opportunistic staleness sweep when the last-modified table is
// reachable; offline the sweep is skipped.
func (c *Client) Store() cache.Store {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = cache.Open(c.cacheOverride)
		if table, err := c.lastModified(); err == nil {
			if n := cache.Sweep(c.store, table); n > 0 {
				log.Debug("Swept stale cache entries", "count", n)
			}
		}
	}
	return c.store
}

// Directory returns the resolved cache directory, or the empty string when
// caching is disabled.
func (c *Client) Directory() string {
	dir, disabled, err := cache.Resolve(c.cacheOverride)
	if disabled || err != nil {
		return ""
	}
	return dir
}

// ClearCache deletes the entire cache directory and resets the store
// handle; the next access starts from an empty store.
func (c *Client) ClearCache() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ds, ok := c.store.(*cache.DiskStore); ok {
		c.store = nil
		return ds.Destroy()
	}
	if c.store != nil {
		err := c.store.Clear()
		c.store = nil
		return err
	}
	dir, disabled, err := cache.Resolve(c.cacheOverride)
	if err != nil || disabled {
		return err
	}
	store, err := cache.NewDiskStore(dir)
	if err != nil {
		return err
	}
	return store.Destroy()
}

// SweepCache purges cache entries that are older than the upstream
// last-modified table and returns how many were removed. The same sweep
// runs opportunistically when the store is opened; this is the explicit,
// on-demand variant.
func (c *Client) SweepCache() (int, error) {
	store := c.Store()
	table, err := c.LastModified()
	if err != nil {
		return 0, err
	}
	return cache.Sweep(store, table), nil
}

// get performs one API request and returns the raw body. Non-200 statuses
// are errors; retries are left to the caller (there are none).
func (c *Client) get(path string, query url.Values) ([]byte, error) {
	if err := c.limiter.Wait(context.Background()); err != nil {
		return nil, err
	}
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	resp, err := c.http.Get(u)
	if err != nil {
		return nil, fmt.Errorf("unable to get url: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// getJSON performs one API request and decodes the JSON body into v. The
// API signals a missing resource by returning the literal body "404".
func (c *Client) getJSON(path string, query url.Values, key string, v any) error {
	b, err := c.get(path, query)
	if err != nil {
		return err
	}
	if isUpstream404(b) {
		return &NotFoundError{Key: key}
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("unexpected response from API: %w", err)
	}
	return nil
}

func isUpstream404(body []byte) bool {
	return string(bytes.TrimSpace(body)) == "404"
}

// Collections returns all icon sets, keyed by prefix. Prefixes narrow the
// result; partial prefixes ending in "-" match families, e.g. "mdi-".
// https://iconify.design/docs/api/collections.html
func (c *Client) Collections(prefixes ...string) (map[string]IconSetInfo, error) {
	query := url.Values{}
	if len(prefixes) > 0 {
		query.Set("prefixes", strings.Join(prefixes, ","))
	}
	out := map[string]IconSetInfo{}
	if err := c.getJSON("/collections", query, strings.Join(prefixes, ","), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Collection returns the icon list of one icon set. The info and chars
// switches include the icon set information block and the character map.
// https://iconify.design/docs/api/collection.html
func (c *Client) Collection(prefix string, info, chars bool) (*Collection, error) {
	query := url.Values{}
	query.Set("prefix", prefix)
	if info {
		query.Set("info", "1")
	}
	if chars {
		query.Set("chars", "1")
	}
	var out Collection
	if err := c.getJSON("/collection", query, prefix, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LastModified returns the last modified date per icon set as UTC integer
// timestamps. This table is the freshness oracle of the SVG cache.
// https://iconify.design/docs/api/last-modified.html
func (c *Client) LastModified(prefixes ...string) (map[string]int64, error) {
	if len(prefixes) == 0 {
		// The full table drives every cache key derivation, so it is
		// memoized for the process lifetime.
		c.mu.Lock()
		defer c.mu.Unlock()
		return c.lastModified()
	}
	return c.fetchLastModified(prefixes)
}

// lastModified is LastModified() with c.mu held.
func (c *Client) lastModified() (map[string]int64, error) {
	if c.haveLast {
		return c.lastMod, nil
	}
	table, err := c.fetchLastModified(nil)
	if err != nil {
		return nil, err
	}
	c.lastMod = table
	c.haveLast = true
	return table, nil
}

func (c *Client) fetchLastModified(prefixes []string) (map[string]int64, error) {
	query := url.Values{}
	if len(prefixes) > 0 {
		query.Set("prefixes", strings.Join(prefixes, ","))
	}
	b, err := c.get("/last-modified", query)
	if err != nil {
		return nil, err
	}
	var out lastModifiedResponse
	if err := json.Unmarshal(b, &out); err != nil || out.LastModified == nil {
		return nil, fmt.Errorf("unexpected response from API, expected \"lastModified\"")
	}
	return out.LastModified, nil
}

// IconData returns icon data for names in prefix. Missing icons are listed
// in the NotFound field of the result rather than failing the call.
// https://iconify.design/docs/api/icon-data.html
func (c *Client) IconData(prefix string, names ...string) (*IconSet, error) {
	query := url.Values{}
	query.Set("icons", strings.Join(names, ","))
	var out IconSet
	if err := c.getJSON("/"+prefix+".json", query, prefix, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchOptions narrow a Search query.
type SearchOptions struct {
	// Limit caps the number of results (API default 64, min 32, max 999).
	Limit int
	// Start is the index of the first result.
	Start int
	// Prefixes filters by icon set prefixes; partial prefixes ending in
	// "-" are allowed.
	Prefixes []string
	// Category filters icon sets by category.
	Category string
}

// Search queries icons by keyword.
// https://iconify.design/docs/api/search.html
func (c *Client) Search(q string, opts *SearchOptions) (*SearchResult, error) {
	query := url.Values{}
	query.Set("query", q)
	if opts != nil {
		if opts.Limit > 0 {
			query.Set("limit", strconv.Itoa(opts.Limit))
		}
		if opts.Start > 0 {
			query.Set("start", strconv.Itoa(opts.Start))
		}
		if len(opts.Prefixes) == 1 {
			query.Set("prefix", opts.Prefixes[0])
		} else if len(opts.Prefixes) > 1 {
			query.Set("prefixes", strings.Join(opts.Prefixes, ","))
		}
		if opts.Category != "" {
			query.Set("category", opts.Category)
		}
	}
	var out SearchResult
	if err := c.getJSON("/search", query, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Keywords suggests search queries. One of prefix or keyword must be set;
// prefix wins when both are given.
// https://iconify.design/docs/api/keywords.html
func (c *Client) Keywords(prefix, keyword string) (*KeywordsResult, error) {
	query := url.Values{}
	switch {
	case prefix != "":
		if keyword != "" {
			log.Warn("Cannot specify both prefix and keyword, ignoring keyword")
		}
		query.Set("prefix", prefix)
	case keyword != "":
		query.Set("keyword", keyword)
	}
	var out KeywordsResult
	if err := c.getJSON("/keywords", query, prefix+keyword, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// APIVersion returns the version string of the API server, useful for
// telling mirrors apart.
// https://iconify.design/docs/api/version.html
func (c *Client) APIVersion() (string, error) {
	b, err := c.get("/version", nil)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// splitKey splits an icon key of the form "prefix:name".
func splitKey(key string) (prefix, name string, err error) {
	prefix, name, ok := strings.Cut(key, ":")
	if !ok || prefix == "" || name == "" {
		return "", "", fmt.Errorf("icon key must be in the form %q, got %q", "prefix:name", key)
	}
	return prefix, name, nil
}
