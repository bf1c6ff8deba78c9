package playlist

import "testing"

func TestCountryCode(t *testing.T) {
	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"US| CNN", "US", true},
		{"AR| Canal 9", "AR", true},
		{"  NL| NPO 1", "NL", true},
		{"USA| Channel", "", false},
		{"U| Channel", "", false},
		{"us| channel", "", false},
		{"CNN", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := CountryCode(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("CountryCode(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func entriesFor(titles ...string) []Entry {
	out := make([]Entry, 0, len(titles))
	for _, title := range titles {
		out = append(out, Entry{RawTitle: title})
	}
	return out
}

func TestCountryFilterIncludeOverridesExclude(t *testing.T) {
	filter := NewCountryFilter([]string{"US"}, []string{"AR", "NL", "FR"})
	kept, dropped := filter.Apply(entriesFor("US| CNN", "AR| Canal 9", "Uncoded Channel"))
	if dropped != 1 {
		t.Fatalf("dropped = %d, want 1", dropped)
	}
	if len(kept) != 2 || kept[0].RawTitle != "US| CNN" || kept[1].RawTitle != "Uncoded Channel" {
		t.Fatalf("kept = %+v", kept)
	}
}

func TestCountryFilterExcludeMode(t *testing.T) {
	filter := NewCountryFilter(nil, []string{"AR"})
	kept, dropped := filter.Apply(entriesFor("US| CNN", "AR| Canal 9", "Uncoded Channel"))
	if dropped != 1 || len(kept) != 2 {
		t.Fatalf("kept=%d dropped=%d", len(kept), dropped)
	}
}

func TestCountryFilterUnconfiguredKeepsAll(t *testing.T) {
	filter := NewCountryFilter(nil, nil)
	entries := entriesFor("US| CNN", "AR| Canal 9")
	kept, dropped := filter.Apply(entries)
	if dropped != 0 || len(kept) != len(entries) {
		t.Fatalf("kept=%d dropped=%d", len(kept), dropped)
	}
}

func TestCountryFilterNoCodeNeverDropped(t *testing.T) {
	include := NewCountryFilter([]string{"US"}, nil)
	kept, _ := include.Apply(entriesFor("Plain Channel"))
	if len(kept) != 1 {
		t.Fatal("include mode must keep entries without a code")
	}
	exclude := NewCountryFilter(nil, []string{"US"})
	kept, _ = exclude.Apply(entriesFor("Plain Channel"))
	if len(kept) != 1 {
		t.Fatal("exclude mode must keep entries without a code")
	}
}
