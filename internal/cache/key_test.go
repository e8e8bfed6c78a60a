package cache

import "testing"

func TestKey_Deterministic(t *testing.T) {
	opts := map[string]string{"color": "red", "height": "24"}
	a := Key([]string{"mdi", "home"}, opts, "100")
	b := Key([]string{"mdi", "home"}, map[string]string{"height": "24", "color": "red"}, "100")

	if a != b {
		t.Errorf("Keys differ for identical inputs: %q vs %q", a, b)
	}
	if want := "mdi-home-color-red-height-24-100"; a != want {
		t.Errorf("Key = %q, want %q", a, want)
	}
}

func TestKey_DropsEmptyOptions(t *testing.T) {
	a := Key([]string{"mdi", "home"}, map[string]string{"color": "", "width": "16"}, "100")
	b := Key([]string{"mdi", "home"}, map[string]string{"width": "16"}, "100")

	if a != b {
		t.Errorf("Empty option changed key: %q vs %q", a, b)
	}
}

func TestKey_Distinct(t *testing.T) {
	base := Key([]string{"mdi", "home"}, map[string]string{"color": "red"}, "100")

	variants := []string{
		Key([]string{"mdi", "house"}, map[string]string{"color": "red"}, "100"),
		Key([]string{"mdi", "home"}, map[string]string{"color": "blue"}, "100"),
		Key([]string{"mdi", "home"}, map[string]string{"color": "red"}, "200"),
		Key([]string{"mdi", "home"}, nil, "100"),
	}
	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d collides with base key %q", i, base)
		}
	}
}

func TestKey_PartsAreOrdered(t *testing.T) {
	a := Key([]string{"mdi", "home"}, nil, "100")
	b := Key([]string{"home", "mdi"}, nil, "100")

	if a == b {
		t.Error("identifier parts must be positional, not sorted")
	}
}

func TestKey_Sentinel(t *testing.T) {
	key := Key([]string{"mdi", "home"}, nil, "")
	if want := "mdi-home-000"; key != want {
		t.Errorf("Key = %q, want %q", key, want)
	}

	stem, ok := Stem(key)
	if !ok {
		t.Fatal("Stem did not recognize sentinel key")
	}
	if want := "mdi-home-"; stem != want {
		t.Errorf("Stem = %q, want %q", stem, want)
	}
}

func TestStem_RealTimestamp(t *testing.T) {
	if _, ok := Stem("mdi-home-100"); ok {
		t.Error("Stem matched a key with a real timestamp")
	}
	// A timestamp that merely ends in the sentinel digits is not a sentinel.
	if _, ok := Stem("mdi-home-1000"); ok {
		t.Error("Stem matched a timestamp ending in the sentinel digits")
	}
}
