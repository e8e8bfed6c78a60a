package cache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolve_Override(t *testing.T) {
	dir, disabled, err := Resolve(filepath.Join(t.TempDir(), "icons"))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if disabled {
		t.Error("explicit override reported as disabled")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("Resolve returned a relative path: %q", dir)
	}
}

func TestResolve_ExpandsHome(t *testing.T) {
	dir, _, err := Resolve("~/icons")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	home, _ := os.UserHomeDir()
	if dir != filepath.Join(home, "icons") {
		t.Errorf("Resolve = %q, want home-expanded path", dir)
	}
}

func TestResolve_Disabled(t *testing.T) {
	for _, v := range []string{"0", "false", "FALSE"} {
		_, disabled, err := Resolve(v)
		if err != nil {
			t.Fatalf("Resolve(%q) failed: %v", v, err)
		}
		if !disabled {
			t.Errorf("Resolve(%q) not reported as disabled", v)
		}
	}
}

func TestResolve_Default(t *testing.T) {
	dir, disabled, err := Resolve("")
	if err != nil || disabled {
		t.Fatalf("Resolve(\"\") = %q, %v, %v", dir, disabled, err)
	}
	if dir == "" {
		t.Error("default directory is empty")
	}
}

func TestOpen_DisabledUsesMemory(t *testing.T) {
	s := Open("0")
	if _, ok := s.(*MemStore); !ok {
		t.Fatalf("Open(\"0\") = %T, want *MemStore", s)
	}

	// Entries are retrievable in-process but never reach the disk.
	_ = s.Put("mdi-home-000", []byte("x"))
	if !s.Contains("mdi-home-000") {
		t.Error("entry not retrievable from disabled cache")
	}
}

func TestOpen_Directory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "svg")
	s := Open(dir)
	ds, ok := s.(*DiskStore)
	if !ok {
		t.Fatalf("Open(dir) = %T, want *DiskStore", s)
	}
	if ds.Dir() != dir {
		t.Errorf("Dir = %q, want %q", ds.Dir(), dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("cache directory not created: %v", err)
	}
}

func TestOpen_DegradesToMemory(t *testing.T) {
	// A file where the directory should be makes creation fail.
	path := filepath.Join(t.TempDir(), "blocked")
	if err := os.WriteFile(path, []byte("not a dir"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := Open(filepath.Join(path, "svg"))
	if _, ok := s.(*MemStore); !ok {
		t.Fatalf("Open over unusable path = %T, want *MemStore", s)
	}
}
