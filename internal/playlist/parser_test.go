package playlist

import (
	"strings"
	"testing"
)

const samplePlaylist = `#EXTM3U
#EXTINF:-1 tvg-id="" tvg-name="EN - Movie Name (2023)" group-title="VOD",EN - Movie Name (2023)
http://host.example/movie/user/pass/12345.mkv
#EXTINF:-1 tvg-name="EN - Series Name S01E01" group-title="Shows",EN - Series Name S01E01
http://host.example/series/user/pass/67890.mkv
#EXTINF:-1 tvg-name="US| CNN" group-title="News",US| CNN
http://host.example/live/user/pass/222.ts
#EXTINF:-1 group-title="VOD",Missing Name
http://host.example/movie/user/pass/333.mkv
`

func TestParseClassifiesByURL(t *testing.T) {
	result := Parse(samplePlaylist)

	if len(result.Movies) != 1 || len(result.Series) != 1 || len(result.LiveTV) != 1 {
		t.Fatalf("unexpected counts: movies=%d series=%d livetv=%d",
			len(result.Movies), len(result.Series), len(result.LiveTV))
	}
	if result.Skipped != 1 {
		t.Fatalf("skipped = %d, want 1", result.Skipped)
	}
	if result.Total() != 3 {
		t.Fatalf("total = %d, want 3", result.Total())
	}

	movie := result.Movies[0]
	if movie.RawTitle != "EN - Movie Name (2023)" {
		t.Errorf("movie raw title = %q", movie.RawTitle)
	}
	if movie.StreamURL != "http://host.example/movie/user/pass/12345.mkv" {
		t.Errorf("movie url = %q", movie.StreamURL)
	}
	if movie.GroupTitle != "VOD" {
		t.Errorf("movie group = %q", movie.GroupTitle)
	}
}

func TestParseGroupTitleDoesNotAffectCategory(t *testing.T) {
	text := `#EXTINF:-1 tvg-name="Channel" group-title="Movies",Channel
http://host.example/live/user/pass/1.ts
`
	result := Parse(text)
	if len(result.LiveTV) != 1 || len(result.Movies) != 0 {
		t.Fatalf("expected live TV routing, got %+v", result)
	}
}

func TestParseSkipsBlankLinesBeforeURL(t *testing.T) {
	text := "#EXTINF:-1 tvg-name=\"Channel\",Channel\n\nhttp://host.example/live/1.ts\n"
	result := Parse(text)
	if len(result.LiveTV) != 1 {
		t.Fatalf("expected one entry, got %+v", result)
	}
	if result.LiveTV[0].StreamURL != "http://host.example/live/1.ts" {
		t.Errorf("url = %q", result.LiveTV[0].StreamURL)
	}
}

func TestParseEntryWithoutURL(t *testing.T) {
	text := `#EXTINF:-1 tvg-name="Orphaned",Orphaned
#EXTINF:-1 tvg-name="Channel",Channel
http://host.example/live/1.ts
`
	result := Parse(text)
	if result.Skipped != 1 {
		t.Fatalf("skipped = %d, want 1", result.Skipped)
	}
	if len(result.LiveTV) != 1 {
		t.Fatalf("expected the second entry to survive, got %+v", result)
	}
}

func TestParseRawPairPreserved(t *testing.T) {
	result := Parse(samplePlaylist)
	raw := result.LiveTV[0].Raw
	if !strings.HasPrefix(raw, "#EXTINF:-1 tvg-name=\"US| CNN\"") {
		t.Errorf("raw pair missing EXTINF line: %q", raw)
	}
	if !strings.HasSuffix(raw, "http://host.example/live/user/pass/222.ts") {
		t.Errorf("raw pair missing URL line: %q", raw)
	}
}

func TestParseCRLF(t *testing.T) {
	text := "#EXTINF:-1 tvg-name=\"Channel\",Channel\r\nhttp://host.example/live/1.ts\r\n"
	result := Parse(text)
	if len(result.LiveTV) != 1 {
		t.Fatalf("expected one entry, got %+v", result)
	}
	if result.LiveTV[0].StreamURL != "http://host.example/live/1.ts" {
		t.Errorf("url not trimmed of CR: %q", result.LiveTV[0].StreamURL)
	}
}

func TestParseEmptyInput(t *testing.T) {
	result := Parse("")
	if result.Total() != 0 || result.Skipped != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}
