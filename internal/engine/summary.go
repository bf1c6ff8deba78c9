package engine

import "time"

// Summary aggregates the end-of-run counts reported for observability and
// recorded in the run history.
type Summary struct {
	RunID     string
	StartedAt time.Time
	Duration  time.Duration

	// Accepted entry counts per category. LiveTV is counted after filtering.
	Movies   int
	Series   int
	LiveTV   int
	Filtered int

	// Entries dropped during parse (missing tvg-name or URL line).
	ParseSkipped int
	// Entries dropped because normalization produced an empty title.
	TitleSkipped int
	// Items skipped because of a file IO failure.
	IOSkipped int

	Added     int
	Updated   int
	Unchanged int

	DeferredMovies int
	DeferredSeries int

	OrphansRemoved int
	PrunedDirs     int

	// GuardTriggered records the empty-playlist safety no-op: zero accepted
	// items this run, so orphan cleanup was skipped.
	GuardTriggered bool
}

// Deferred returns the total number of quota-deferred items.
func (s *Summary) Deferred() int {
	return s.DeferredMovies + s.DeferredSeries
}

// Accepted returns the classified-and-accepted item count across all
// categories, the number the empty-playlist guard keys on.
func (s *Summary) Accepted() int {
	return s.Movies + s.Series + s.LiveTV
}
