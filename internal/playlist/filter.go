package playlist

import (
	"regexp"
	"strings"
)

var countryCodeRe = regexp.MustCompile(`^[A-Z]{2}\|`)

// CountryCode extracts the two-letter country code prefix from a live TV
// title ("US| CNN"). One or three+ letters, or lowercase, yield no code.
func CountryCode(rawTitle string) (string, bool) {
	trimmed := strings.TrimSpace(rawTitle)
	match := countryCodeRe.FindString(trimmed)
	if match == "" {
		return "", false
	}
	return strings.TrimSuffix(match, "|"), true
}

// CountryFilter drops live TV entries by their embedded country code.
// A non-empty include set fully overrides the exclude set. Entries without an
// extractable code are never dropped by either mode.
type CountryFilter struct {
	include map[string]struct{}
	exclude map[string]struct{}
}

// NewCountryFilter builds a filter from the configured code sets.
func NewCountryFilter(include, exclude []string) *CountryFilter {
	return &CountryFilter{
		include: toSet(include),
		exclude: toSet(exclude),
	}
}

// Apply returns the entries that survive filtering, preserving order, along
// with the number dropped.
func (f *CountryFilter) Apply(entries []Entry) ([]Entry, int) {
	if f == nil || (len(f.include) == 0 && len(f.exclude) == 0) {
		return entries, 0
	}
	kept := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if f.keep(entry.RawTitle) {
			kept = append(kept, entry)
		}
	}
	return kept, len(entries) - len(kept)
}

func (f *CountryFilter) keep(rawTitle string) bool {
	code, ok := CountryCode(rawTitle)
	if !ok {
		return true
	}
	if len(f.include) > 0 {
		_, found := f.include[code]
		return found
	}
	_, excluded := f.exclude[code]
	return !excluded
}

func toSet(codes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code != "" {
			set[code] = struct{}{}
		}
	}
	return set
}
