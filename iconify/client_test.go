package iconify

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// testAPI is a minimal stand-in for the Iconify API.
type testAPI struct {
	icons    map[string]string // "prefix:name" -> svg body
	lastMod  map[string]int64
	requests map[string]int // path -> hit count
}

func newTestAPI() *testAPI {
	return &testAPI{
		icons: map[string]string{
			"mdi:home": `<svg><path d="home"/></svg>`,
		},
		lastMod:  map[string]int64{"mdi": 100, "bi": 50},
		requests: map[string]int{},
	}
}

func (a *testAPI) server(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.requests[r.URL.Path]++
		switch {
		case r.URL.Path == "/last-modified":
			_ = json.NewEncoder(w).Encode(map[string]any{"lastModified": a.lastMod})
		case r.URL.Path == "/collections":
			_ = json.NewEncoder(w).Encode(map[string]IconSetInfo{
				"mdi": {Name: "Material Design Icons"},
			})
		case r.URL.Path == "/collection":
			if r.URL.Query().Get("prefix") == "mdi" {
				_ = json.NewEncoder(w).Encode(Collection{Prefix: "mdi", Total: 1, Uncategorized: []string{"home"}})
			} else {
				fmt.Fprint(w, "404")
			}
		case r.URL.Path == "/search":
			_ = json.NewEncoder(w).Encode(SearchResult{Icons: []string{"mdi:home"}, Total: 1})
		case r.URL.Path == "/keywords":
			_ = json.NewEncoder(w).Encode(KeywordsResult{Exists: true, Matches: []string{"home"}})
		case r.URL.Path == "/version":
			fmt.Fprint(w, "Iconify API version 3.0.0 (test)")
		case strings.HasSuffix(r.URL.Path, ".json"):
			prefix := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/"), ".json")
			_ = json.NewEncoder(w).Encode(IconSet{Prefix: prefix, Icons: map[string]Icon{"home": {Body: "<path/>"}}})
		case strings.HasSuffix(r.URL.Path, ".css"):
			fmt.Fprint(w, ".icon--mdi--home { }\n")
		case strings.HasSuffix(r.URL.Path, ".svg"):
			key := strings.ReplaceAll(strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/"), ".svg"), "/", ":")
			if body, ok := a.icons[key]; ok {
				fmt.Fprint(w, body)
			} else {
				fmt.Fprint(w, "404")
			}
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func (a *testAPI) client(t *testing.T, cacheDir string) *Client {
	t.Helper()
	return New(Config{BaseURL: a.server(t).URL, Cache: cacheDir})
}

func TestCollections(t *testing.T) {
	api := newTestAPI()
	c := api.client(t, "0")

	got, err := c.Collections()
	if err != nil {
		t.Fatalf("Collections failed: %v", err)
	}
	if got["mdi"].Name != "Material Design Icons" {
		t.Errorf("Collections = %v", got)
	}
}

func TestCollection_NotFound(t *testing.T) {
	api := newTestAPI()
	c := api.client(t, "0")

	_, err := c.Collection("nope", true, false)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if nf.Key != "nope" {
		t.Errorf("NotFoundError.Key = %q, want %q", nf.Key, "nope")
	}
}

func TestLastModified_Memoized(t *testing.T) {
	api := newTestAPI()
	c := api.client(t, "0")

	for i := 0; i < 3; i++ {
		table, err := c.LastModified()
		if err != nil {
			t.Fatalf("LastModified failed: %v", err)
		}
		if table["mdi"] != 100 {
			t.Errorf("table[mdi] = %d, want 100", table["mdi"])
		}
	}
	if n := api.requests["/last-modified"]; n != 1 {
		t.Errorf("last-modified fetched %d times, want 1", n)
	}
}

func TestLastModified_UnexpectedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"surprise": true}`)
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, Cache: "0"})
	if _, err := c.LastModified("mdi"); err == nil {
		t.Error("expected error for response without lastModified")
	}
}

func TestIconData(t *testing.T) {
	api := newTestAPI()
	c := api.client(t, "0")

	set, err := c.IconData("mdi", "home")
	if err != nil {
		t.Fatalf("IconData failed: %v", err)
	}
	if set.Icons["home"].Body != "<path/>" {
		t.Errorf("IconData = %+v", set)
	}
}

func TestSearch(t *testing.T) {
	api := newTestAPI()
	c := api.client(t, "0")

	res, err := c.Search("home", &SearchOptions{Limit: 5, Prefixes: []string{"mdi"}})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if res.Total != 1 || res.Icons[0] != "mdi:home" {
		t.Errorf("Search = %+v", res)
	}
}

func TestKeywords(t *testing.T) {
	api := newTestAPI()
	c := api.client(t, "0")

	res, err := c.Keywords("ho", "")
	if err != nil {
		t.Fatalf("Keywords failed: %v", err)
	}
	if !res.Exists || len(res.Matches) != 1 {
		t.Errorf("Keywords = %+v", res)
	}
}

func TestAPIVersion(t *testing.T) {
	api := newTestAPI()
	c := api.client(t, "0")

	v, err := c.APIVersion()
	if err != nil {
		t.Fatalf("APIVersion failed: %v", err)
	}
	if !strings.Contains(v, "Iconify API version") {
		t.Errorf("APIVersion = %q", v)
	}
}

func TestCSS(t *testing.T) {
	api := newTestAPI()
	c := api.client(t, "0")

	css, err := c.CSS("mdi", []string{"home"}, &CSSOptions{Format: "compressed"})
	if err != nil {
		t.Fatalf("CSS failed: %v", err)
	}
	if !strings.Contains(css, ".icon--mdi--home") {
		t.Errorf("CSS = %q", css)
	}
}

func TestSplitKey(t *testing.T) {
	prefix, name, err := splitKey("mdi:home")
	if err != nil || prefix != "mdi" || name != "home" {
		t.Errorf("splitKey = %q, %q, %v", prefix, name, err)
	}

	for _, bad := range []string{"mdi", "mdi:", ":home", ""} {
		if _, _, err := splitKey(bad); err == nil {
			t.Errorf("splitKey(%q) accepted an invalid key", bad)
		}
	}
}

func TestNormalizeRotate(t *testing.T) {
	cases := map[string]string{
		"":       "",
		"1":      "1",
		"3":      "3",
		"90":     "90deg",
		"90deg":  "90deg",
		"-90":    "-90deg",
		"180deg": "180deg",
	}
	for in, want := range cases {
		if got := normalizeRotate(in); got != want {
			t.Errorf("normalizeRotate(%q) = %q, want %q", in, got, want)
		}
	}
}
