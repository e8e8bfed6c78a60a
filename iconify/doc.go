// Package iconify is a client for the Iconify API (https://api.iconify.design).
// It fetches SVG bodies, icon set metadata, and generated stylesheets, and
// transparently caches SVG results on disk so repeated lookups, including
// offline ones, avoid the network.
package iconify
