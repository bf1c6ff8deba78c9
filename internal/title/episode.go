package title

import (
	"fmt"
	"regexp"
	"strconv"
)

var seasonEpisodeRe = regexp.MustCompile(`(?i)S(\d{1,2})\s*E(\d{1,2})`)

// SeasonEpisode derives the season directory label and the episode file label
// from a raw (pre-normalization) series title. Titles without a recognizable
// marker default to the first episode of the first season.
func SeasonEpisode(raw string) (season, episode string) {
	match := seasonEpisodeRe.FindStringSubmatch(raw)
	if match == nil {
		return "Season 1", "S01E01"
	}
	seasonNum, _ := strconv.Atoi(match[1])
	episodeNum, _ := strconv.Atoi(match[2])
	return fmt.Sprintf("Season %d", seasonNum), fmt.Sprintf("S%02dE%02d", seasonNum, episodeNum)
}
