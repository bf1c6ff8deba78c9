package playlist

import "strings"

// Category is the routing decision for one playlist entry. It is derived
// solely from the stream URL; the declared group-title never participates.
type Category int

const (
	CategoryMovie Category = iota
	CategorySeries
	CategoryLiveTV
)

func (c Category) String() string {
	switch c {
	case CategoryMovie:
		return "movie"
	case CategorySeries:
		return "series"
	default:
		return "livetv"
	}
}

// Entry is one #EXTINF/URL pair lifted out of the playlist text. Raw holds
// the verbatim two-line form used for the live TV pass-through output.
type Entry struct {
	RawTitle   string
	StreamURL  string
	GroupTitle string
	Raw        string
}

// Classify routes a stream URL to its category.
func Classify(streamURL string) Category {
	switch {
	case strings.Contains(streamURL, "/series/"):
		return CategorySeries
	case strings.Contains(streamURL, "/movie/"):
		return CategoryMovie
	default:
		return CategoryLiveTV
	}
}
