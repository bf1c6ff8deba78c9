package playlist

import (
	"regexp"
	"strings"
)

const extinfMarker = "#EXTINF"

var (
	tvgNameRe    = regexp.MustCompile(`tvg-name="([^"]+)"`)
	groupTitleRe = regexp.MustCompile(`group-title="([^"]*)"`)
)

// Result holds the classified entries of one parse, in playlist order.
type Result struct {
	Movies []Entry
	Series []Entry
	LiveTV []Entry
	// Skipped counts #EXTINF lines dropped for a missing tvg-name or a
	// missing stream URL line.
	Skipped int
}

// Total returns the number of accepted entries across all categories.
func (r Result) Total() int {
	return len(r.Movies) + len(r.Series) + len(r.LiveTV)
}

// Parse scans raw playlist text sequentially. A line starting with #EXTINF
// begins an entry and the following non-blank line is its stream URL. Lines
// between pairs are ignored. Entries without a tvg-name attribute are dropped
// and counted, never fatal.
func Parse(text string) Result {
	var result Result

	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i++ {
		info := strings.TrimRight(lines[i], "\r")
		if !strings.HasPrefix(info, extinfMarker) {
			continue
		}

		j := i + 1
		for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
			j++
		}
		if j >= len(lines) || strings.HasPrefix(strings.TrimSpace(lines[j]), "#") {
			// #EXTINF without a URL line.
			result.Skipped++
			continue
		}
		streamURL := strings.TrimSpace(strings.TrimRight(lines[j], "\r"))
		i = j

		name := attribute(tvgNameRe, info)
		if name == "" {
			result.Skipped++
			continue
		}

		entry := Entry{
			RawTitle:   name,
			StreamURL:  streamURL,
			GroupTitle: attribute(groupTitleRe, info),
			Raw:        info + "\n" + streamURL,
		}

		switch Classify(streamURL) {
		case CategorySeries:
			result.Series = append(result.Series, entry)
		case CategoryMovie:
			result.Movies = append(result.Movies, entry)
		default:
			result.LiveTV = append(result.LiveTV, entry)
		}
	}

	return result
}

func attribute(re *regexp.Regexp, line string) string {
	match := re.FindStringSubmatch(line)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}
