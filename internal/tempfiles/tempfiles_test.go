package tempfiles

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCleanup(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.svg")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(dir, "theme")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	Register(file)
	Register(sub)
	Register(filepath.Join(dir, "already-gone.svg"))

	Cleanup()

	if _, err := os.Stat(file); !os.IsNotExist(err) {
		t.Error("file survived Cleanup")
	}
	if _, err := os.Stat(sub); !os.IsNotExist(err) {
		t.Error("directory survived Cleanup")
	}

	// Second run over an empty registry is fine.
	Cleanup()
}
