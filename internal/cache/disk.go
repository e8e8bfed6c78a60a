package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore is a directory-backed Store. Every entry is a single file named
// key + Ext containing the raw bytes, no wrapping or metadata, so cache
// directories are readable by other implementations of the same format.
type DiskStore struct {
	dir string
}

// NewDiskStore returns a DiskStore rooted at dir, creating the directory
// and its parents if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create cache directory: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Dir returns the directory backing the store.
func (s *DiskStore) Dir() string { return s.dir }

// Path returns the file path an entry for key would occupy, whether or not
// it exists.
func (s *DiskStore) Path(key string) string {
	return filepath.Join(s.dir, key+Ext)
}

// Get returns the entry for key, or ErrNotFound.
func (s *DiskStore) Get(key string) ([]byte, error) {
	b, err := os.ReadFile(s.Path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read cache entry: %w", err)
	}
	return b, nil
}

// Put writes the entry for key. The bytes go to a temp file first and are
// renamed into place so a concurrent reader never sees a partial entry.
func (s *DiskStore) Put(key string, value []byte) error {
	path := s.Path(key)
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("unable to write cache entry: %w", err)
	}
	_, err = f.Write(value)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("unable to write cache entry: %w", err)
	}
	return os.Rename(tmp, path)
}

// Delete removes the entry for key. Absent keys are ignored.
func (s *DiskStore) Delete(key string) error {
	err := os.Remove(s.Path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("unable to delete cache entry: %w", err)
	}
	return nil
}

// Contains reports whether key has an entry on disk.
func (s *DiskStore) Contains(key string) bool {
	_, err := os.Stat(s.Path(key))
	return err == nil
}

// Keys returns the keys of all entries currently on disk.
func (s *DiskStore) Keys() []string {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*"+Ext))
	if err != nil {
		return nil
	}
	keys := make([]string, 0, len(matches))
	for _, m := range matches {
		keys = append(keys, strings.TrimSuffix(filepath.Base(m), Ext))
	}
	return keys
}

// Len returns the number of entries on disk.
func (s *DiskStore) Len() int { return len(s.Keys()) }

// Clear removes every entry, leaving the directory in place.
func (s *DiskStore) Clear() error {
	for _, key := range s.Keys() {
		if err := s.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

// Destroy removes the whole cache directory, entries and all.
func (s *DiskStore) Destroy() error {
	return os.RemoveAll(s.dir)
}
