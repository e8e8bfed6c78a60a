package iconify

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
)

// CSSOptions customize generated stylesheets.
type CSSOptions struct {
	// Selector for icons; defaults upstream to ".icon--{prefix}--{name}".
	Selector string
	// Common selector shared by all icons; empty string keeps the
	// upstream default, which is ".icon--{prefix}".
	Common string
	// Override mixes Selector and Common for icon-specific style.
	Override string
	// Pseudo marks the selector as a pseudo-selector such as "::after".
	Pseudo bool
	// Var names the CSS variable to use for the icon.
	Var string
	// Square forces icons to a width of 1em.
	Square bool
	// Color for monotone icons.
	Color string
	// Mode forces "mask" or "background" rendering.
	Mode string
	// Format is "expanded", "compact" or "compressed".
	Format string
}

var missingIconRe = regexp.MustCompile(`Could not find icon: ([^\s]*) `)

// CSS returns a generated stylesheet for icons of one icon set. Icons the
// API could not find are reported in a warning, matching the upstream
// behavior of embedding a comment instead of failing.
// https://iconify.design/docs/api/css.html
func (c *Client) CSS(prefix string, icons []string, opts *CSSOptions) (string, error) {
	query := url.Values{}
	query.Set("icons", strings.Join(icons, ","))
	if opts != nil {
		set := func(k, v string) {
			if v != "" {
				query.Set(k, v)
			}
		}
		set("selector", opts.Selector)
		set("common", opts.Common)
		set("override", opts.Override)
		set("var", opts.Var)
		set("color", opts.Color)
		set("mode", opts.Mode)
		set("format", opts.Format)
		if opts.Pseudo {
			query.Set("pseudo", "1")
		}
		if opts.Square {
			query.Set("square", "1")
		}
	}

	b, err := c.get("/"+prefix+".css", query)
	if err != nil {
		return "", err
	}
	if isUpstream404(b) {
		return "", &NotFoundError{Key: prefix}
	}
	css := string(b)
	if missing := missingIconRe.FindAllStringSubmatch(css, -1); len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for _, m := range missing {
			names = append(names, m[1])
		}
		log.Warn("Icons not found", "icons", strings.Join(names, ","))
	}
	return css, nil
}
