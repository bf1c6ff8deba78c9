package engine

// runState threads the per-run quota counter and the path/directory sets
// through the two category passes. It is created fresh each run and never
// persisted; what exists on disk is the only durable state.
type runState struct {
	quota    int // 0 = unlimited
	consumed int

	processedMovies map[string]struct{}
	processedSeries map[string]struct{}

	touchedDirs []string
	touchedSeen map[string]struct{}
}

func newRunState(quota int) *runState {
	return &runState{
		quota:           quota,
		processedMovies: make(map[string]struct{}),
		processedSeries: make(map[string]struct{}),
		touchedSeen:     make(map[string]struct{}),
	}
}

// exhausted reports whether the run's create/update budget is spent.
func (r *runState) exhausted() bool {
	return r.quota > 0 && r.consumed >= r.quota
}

// consume charges one created or updated item against the quota. Unchanged
// encounters are free, which is what lets a quota-limited sync converge over
// repeated runs.
func (r *runState) consume() {
	r.consumed++
}

// touchDir records a directory that received a new file this run, preserving
// first-touch order for the batched new-content notifications.
func (r *runState) touchDir(dir string) {
	if _, ok := r.touchedSeen[dir]; ok {
		return
	}
	r.touchedSeen[dir] = struct{}{}
	r.touchedDirs = append(r.touchedDirs, dir)
}
