// Package tempfiles tracks temporary files and directories that should be
// removed when the process exits. Go has no atexit, so the CLI entry point
// is responsible for calling Cleanup on its way out; removal tolerates
// paths that are already gone.
package tempfiles

import (
	"os"
	"sync"
)

var (
	mu    sync.Mutex
	paths []string
)

// Register schedules path for removal at process exit.
func Register(path string) {
	mu.Lock()
	defer mu.Unlock()
	paths = append(paths, path)
}

// Cleanup removes all registered paths. Missing paths are ignored.
func Cleanup() {
	mu.Lock()
	defer mu.Unlock()
	for _, p := range paths {
		_ = os.RemoveAll(p)
	}
	paths = nil
}
