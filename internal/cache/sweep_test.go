package cache

import "testing"

func TestSweep_RemovesStale(t *testing.T) {
	s := NewMemStore()
	_ = s.Put("a-5", []byte("stale"))
	_ = s.Put("b-10", []byte("fresh"))

	removed := Sweep(s, map[string]int64{"a": 10, "b": 10})
	if removed != 1 {
		t.Errorf("Sweep removed %d entries, want 1", removed)
	}
	if s.Contains("a-5") {
		t.Error("stale entry a-5 survived the sweep")
	}
	if !s.Contains("b-10") {
		t.Error("entry b-10 with equal timestamp was removed")
	}
}

func TestSweep_SkipsMalformed(t *testing.T) {
	s := NewMemStore()
	_ = s.Put("noversion", []byte("x"))
	_ = s.Put("mdi-home-abc", []byte("y"))

	removed := Sweep(s, map[string]int64{"noversion": 99, "mdi": 99})
	if removed != 0 {
		t.Errorf("Sweep removed %d malformed entries, want 0", removed)
	}
	if !s.Contains("noversion") || !s.Contains("mdi-home-abc") {
		t.Error("malformed key was deleted")
	}
}

func TestSweep_UnknownPrefixKept(t *testing.T) {
	s := NewMemStore()
	_ = s.Put("mdi-home-100", []byte("x"))

	if removed := Sweep(s, map[string]int64{"bi": 200}); removed != 0 {
		t.Errorf("Sweep removed %d entries for unknown prefix, want 0", removed)
	}
}

func TestSweep_SentinelTreatedAsStale(t *testing.T) {
	s := NewMemStore()
	_ = s.Put("mdi-home-000", []byte("offline entry"))

	if removed := Sweep(s, map[string]int64{"mdi": 100}); removed != 1 {
		t.Errorf("Sweep removed %d entries, want the offline sentinel purged", removed)
	}
}
