package title

import "errors"

// ErrEmptyTitle reports that nothing usable remained after normalization.
// Callers treat it as a parse failure for the entry, not a fatal condition.
var ErrEmptyTitle = errors.New("title empty after normalization")

// Movie converts a raw movie display title into its canonical,
// filesystem-safe form: provider prefix and parenthetical qualifiers removed,
// an actor-name suffix stripped, and a trailing year preserved.
func Movie(raw string) (string, error) {
	normalized := applyRules(raw, movieRules)
	if normalized == "" {
		return "", ErrEmptyTitle
	}
	return normalized, nil
}

// Series converts a raw episode display title into the canonical show title:
// like Movie, but the trailing season/episode marker (and any episode title
// after it) is removed first and no actor suffix handling applies.
func Series(raw string) (string, error) {
	normalized := applyRules(raw, seriesRules)
	if normalized == "" {
		return "", ErrEmptyTitle
	}
	return normalized, nil
}
