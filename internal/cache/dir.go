package cache

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	homedir "github.com/mitchellh/go-homedir"
	gap "github.com/muesli/go-app-paths"
)

const appName = "goconify"

// Disabled values for the cache override. Either one bypasses persistent
// storage entirely and selects the in-memory store.
var disabledValues = []string{"0", "false"}

// Resolve turns the cache override into a directory. An empty override
// selects the platform default (per-user cache directory, or a dot
// directory under home when no convention applies). A disabled sentinel
// returns disabled=true and no directory. Anything else is expanded and
// made absolute and used verbatim.
func Resolve(override string) (dir string, disabled bool, err error) {
	switch {
	case override == "":
		return DefaultDirectory(), false, nil
	case isDisabled(override):
		return "", true, nil
	}
	dir, err = homedir.Expand(override)
	if err != nil {
		return "", false, err
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return "", false, err
	}
	return dir, false, nil
}

func isDisabled(override string) bool {
	for _, v := range disabledValues {
		if strings.EqualFold(override, v) {
			return true
		}
	}
	return false
}

// DefaultDirectory returns the platform-appropriate per-user cache
// directory for the application.
func DefaultDirectory() string {
	scope := gap.NewScope(gap.User, appName)
	if dir, err := scope.CacheDir(); err == nil && dir != "" {
		return dir
	}
	// No recognized convention: fall back to a dot directory under home.
	home, err := homedir.Dir()
	if err != nil {
		return "." + appName
	}
	return filepath.Join(home, "."+appName)
}

// Open resolves the override and returns the matching store. A disabled
// override yields a MemStore, as does a cache directory that cannot be
// created; persistence is lost in the latter case but the client keeps
// working.
func Open(override string) Store {
	dir, disabled, err := Resolve(override)
	if err == nil && !disabled {
		store, derr := NewDiskStore(dir)
		if derr == nil {
			return store
		}
		err = derr
	}
	if err != nil {
		log.Warn("Cache unavailable, falling back to in-memory store", "err", err)
	}
	return NewMemStore()
}
