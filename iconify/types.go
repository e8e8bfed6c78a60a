package iconify

// Response objects of the Iconify API.
// https://iconify.design/docs/api/queries.html

// Author describes an icon set author.
type Author struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// License describes an icon set license.
type License struct {
	Title string `json:"title"`
	SPDX  string `json:"spdx,omitempty"`
	URL   string `json:"url,omitempty"`
}

// IconSetInfo is the information block for one icon set, as returned by the
// collections endpoint.
type IconSetInfo struct {
	Name          string   `json:"name"`
	Author        Author   `json:"author"`
	License       License  `json:"license"`
	Total         int      `json:"total,omitempty"`
	Version       string   `json:"version,omitempty"`
	DisplayHeight int      `json:"displayHeight,omitempty"`
	Category      string   `json:"category,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Palette       bool     `json:"palette,omitempty"`
	Hidden        bool     `json:"hidden,omitempty"`
}

// Collection is the response of the collection endpoint: the icons of one
// icon set, sorted by category.
type Collection struct {
	Prefix        string              `json:"prefix"`
	Total         int                 `json:"total"`
	Title         string              `json:"title,omitempty"`
	Info          *IconSetInfo        `json:"info,omitempty"`
	Uncategorized []string            `json:"uncategorized,omitempty"`
	Categories    map[string][]string `json:"categories,omitempty"`
	Hidden        []string            `json:"hidden,omitempty"`
	Aliases       map[string]string   `json:"aliases,omitempty"`
	Chars         map[string]string   `json:"chars,omitempty"`
}

// Icon is one icon's data within an IconSet.
type Icon struct {
	Body   string `json:"body"`
	Left   int    `json:"left,omitempty"`
	Top    int    `json:"top,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Rotate int    `json:"rotate,omitempty"`
	HFlip  bool   `json:"hFlip,omitempty"`
	VFlip  bool   `json:"vFlip,omitempty"`
}

// IconSet is the response of the icon-data endpoint. Missing icons appear
// in NotFound rather than failing the request.
type IconSet struct {
	Prefix       string            `json:"prefix"`
	Icons        map[string]Icon   `json:"icons"`
	Aliases      map[string]string `json:"aliases,omitempty"`
	LastModified int64             `json:"lastModified,omitempty"`
	Width        int               `json:"width,omitempty"`
	Height       int               `json:"height,omitempty"`
	NotFound     []string          `json:"not_found,omitempty"`
}

// SearchResult is the response of the search endpoint.
type SearchResult struct {
	Icons       []string               `json:"icons"`
	Total       int                    `json:"total"`
	Limit       int                    `json:"limit"`
	Start       int                    `json:"start"`
	Collections map[string]IconSetInfo `json:"collections,omitempty"`
}

// KeywordsResult is the response of the keywords endpoint, used for
// suggesting search queries.
type KeywordsResult struct {
	Keyword string   `json:"keyword,omitempty"`
	Prefix  string   `json:"prefix,omitempty"`
	Exists  bool     `json:"exists"`
	Matches []string `json:"matches"`
	Invalid bool     `json:"invalid,omitempty"`
}

// lastModifiedResponse is the wire shape of the last-modified endpoint.
type lastModifiedResponse struct {
	LastModified map[string]int64 `json:"lastModified"`
}
