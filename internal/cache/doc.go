// Package cache implements the disk-backed SVG cache: key derivation from
// request arguments, a directory-backed key/value store with an in-memory
// fallback, staleness sweeping against the upstream last-modified table,
// and cache directory resolution.
package cache
