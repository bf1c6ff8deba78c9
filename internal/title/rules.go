package title

import (
	"regexp"
	"strings"

	"strmsync/internal/textutil"
)

// state carries a title through the rule chain. The year is remembered by
// captureYear and re-attached by appendYear after the remaining parenthetical
// groups have been removed.
type state struct {
	title string
	year  string
}

// rule is one pure transformation step. Rules are applied left to right.
type rule struct {
	name  string
	apply func(state) state
}

var (
	// Provider prefixes like "EN - " or "D+ - ". The surrounding whitespace is
	// mandatory so hyphenated titles ("X-Men") survive.
	providerPrefixRe = regexp.MustCompile(`^[A-Z0-9+]{1,4}\s+-\s+`)

	// Trailing season/episode marker plus anything after it, e.g.
	// ".S01E03 Episode Title" or " S2 E5".
	episodeMarkerRe = regexp.MustCompile(`(?i)[.\s]*S\d{1,2}\s*E\d{1,2}.*$`)

	yearGroupRe     = regexp.MustCompile(`\((\d{4})\)`)
	parentheticalRe = regexp.MustCompile(`\s*\([^()]*\)`)

	// Trailing run of two or more ALL-CAPS words, optionally comma-terminated:
	// the actor suffix some providers append ("Movie Name JOHN WAYNE,").
	actorSuffixRe = regexp.MustCompile(`(?:\s+[A-Z]{2,}){2,},?\s*$`)
	allCapsRe     = regexp.MustCompile(`^[A-Z]{2,}(?:\s+[A-Z]{2,})*,?$`)
)

var stripProviderPrefix = rule{
	name: "strip provider prefix",
	apply: func(s state) state {
		s.title = strings.TrimSpace(providerPrefixRe.ReplaceAllString(s.title, ""))
		return s
	},
}

var stripEpisodeMarker = rule{
	name: "strip episode marker",
	apply: func(s state) state {
		s.title = strings.TrimSpace(episodeMarkerRe.ReplaceAllString(s.title, ""))
		return s
	},
}

var captureYear = rule{
	name: "capture year",
	apply: func(s state) state {
		matches := yearGroupRe.FindAllString(s.title, -1)
		if len(matches) > 0 {
			s.year = matches[len(matches)-1]
		}
		return s
	},
}

var stripParentheticals = rule{
	name: "strip parentheticals",
	apply: func(s state) state {
		s.title = strings.TrimSpace(parentheticalRe.ReplaceAllString(s.title, ""))
		return s
	},
}

var stripActorSuffix = rule{
	name: "strip actor suffix",
	apply: func(s state) state {
		// A title that is itself written in capitals stays untouched.
		if allCapsRe.MatchString(s.title) {
			return s
		}
		loc := actorSuffixRe.FindStringIndex(s.title)
		if loc == nil {
			return s
		}
		remainder := strings.TrimSpace(s.title[:loc[0]])
		if remainder == "" {
			return s
		}
		s.title = remainder
		return s
	},
}

var appendYear = rule{
	name: "append year",
	apply: func(s state) state {
		if s.year != "" && s.title != "" {
			s.title = s.title + " " + s.year
		}
		return s
	},
}

var sanitize = rule{
	name: "sanitize",
	apply: func(s state) state {
		s.title = textutil.SanitizeFileName(s.title)
		return s
	},
}

var movieRules = []rule{
	stripProviderPrefix,
	captureYear,
	stripParentheticals,
	stripActorSuffix,
	appendYear,
	sanitize,
}

var seriesRules = []rule{
	stripProviderPrefix,
	stripEpisodeMarker,
	captureYear,
	stripParentheticals,
	appendYear,
	sanitize,
}

func applyRules(raw string, rules []rule) string {
	s := state{title: strings.TrimSpace(raw)}
	for _, r := range rules {
		s = r.apply(s)
	}
	return s.title
}
