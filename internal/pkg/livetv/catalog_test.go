package livetv

import "testing"

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	if len(first) == 0 {
		t.Fatal("catalog is empty")
	}

	first[0].Name = "mutated"

	second := All()
	if second[0].Name == "mutated" {
		t.Fatal("All must return a copy, not the underlying slice")
	}
}

func TestByCategoryCaseInsensitive(t *testing.T) {
	news := ByCategory("news")
	if len(news) == 0 {
		t.Fatal("expected news channels")
	}
	for _, ch := range news {
		if ch.Category != "News" {
			t.Fatalf("channel %s has category %s, want News", ch.ID, ch.Category)
		}
	}

	if upper := ByCategory("NEWS"); len(upper) != len(news) {
		t.Fatalf("case-insensitive lookup mismatch: %d vs %d", len(upper), len(news))
	}

	if unknown := ByCategory("cooking"); len(unknown) != 0 {
		t.Fatalf("expected empty result for unknown category, got %d", len(unknown))
	}
}

func TestByID(t *testing.T) {
	ch, ok := ByID("geo_news")
	if !ok {
		t.Fatal("geo_news should exist")
	}
	if ch.StreamURL == "" {
		t.Fatal("channel is missing a stream url")
	}

	if _, ok := ByID("no_such_channel"); ok {
		t.Fatal("unknown id should not resolve")
	}
}

func TestUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, ch := range All() {
		if seen[ch.ID] {
			t.Fatalf("duplicate channel id %s", ch.ID)
		}
		seen[ch.ID] = true
	}
}
