package cache

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a key has no entry in the store.
var ErrNotFound = errors.New("cache: entry not found")

// Store maps cache keys to raw SVG bytes. Two implementations exist:
// DiskStore (one file per entry) and MemStore (process-lifetime only, used
// when caching is disabled or the cache directory is unusable). The
// implementation is selected once when the store is opened; callers never
// touch the underlying storage directly.
type Store interface {
	// Get returns the entry for key, or ErrNotFound.
	Get(key string) ([]byte, error)

	// Put writes or overwrites the entry for key.
	Put(key string, value []byte) error

	// Delete removes the entry for key. Deleting an absent key is not an
	// error.
	Delete(key string) error

	// Contains reports whether key has an entry.
	Contains(key string) bool

	// Keys returns all stored keys in no particular order.
	Keys() []string

	// Len returns the number of entries.
	Len() int

	// Clear removes every entry.
	Clear() error
}

// Lookup returns the entry for key. When key carries the offline sentinel
// and has no exact entry, any stored entry sharing the identifier+options
// stem is returned instead: an icon cached while online stays retrievable
// offline even though its real timestamp cannot be recomputed. Among
// multiple stale variants the first match wins.
func Lookup(s Store, key string) ([]byte, error) {
	if b, err := s.Get(key); err == nil {
		return b, nil
	}
	stem, ok := Stem(key)
	if !ok {
		return nil, ErrNotFound
	}
	for _, existing := range s.Keys() {
		if strings.HasPrefix(existing, stem) {
			if b, err := s.Get(existing); err == nil {
				return b, nil
			}
		}
	}
	return nil, ErrNotFound
}
