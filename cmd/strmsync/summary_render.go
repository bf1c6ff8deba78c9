package main

import (
	"fmt"
	"strings"
	"time"

	"strmsync/internal/engine"
)

const summaryDurationUnit = 10 * time.Millisecond

func renderSummary(summary *engine.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Run %s finished in %s\n", summary.RunID, summary.Duration.Round(summaryDurationUnit))
	fmt.Fprintf(&b, "  Movies: %d  Series: %d  Live TV: %d\n", summary.Movies, summary.Series, summary.LiveTV)
	fmt.Fprintf(&b, "  Added: %d  Updated: %d  Unchanged: %d\n", summary.Added, summary.Updated, summary.Unchanged)
	if skipped := summary.ParseSkipped + summary.TitleSkipped + summary.IOSkipped; skipped > 0 {
		fmt.Fprintf(&b, "  Skipped: %d (parse %d, title %d, io %d)\n",
			skipped, summary.ParseSkipped, summary.TitleSkipped, summary.IOSkipped)
	}
	if summary.Filtered > 0 {
		fmt.Fprintf(&b, "  Filtered by country: %d\n", summary.Filtered)
	}
	if deferred := summary.Deferred(); deferred > 0 {
		fmt.Fprintf(&b, "  Deferred to next run: %d\n", deferred)
	}
	if summary.OrphansRemoved > 0 || summary.PrunedDirs > 0 {
		fmt.Fprintf(&b, "  Orphans removed: %d  Empty directories pruned: %d\n",
			summary.OrphansRemoved, summary.PrunedDirs)
	}
	if summary.GuardTriggered {
		b.WriteString("  Playlist produced no usable entries; removal and live TV rewrite were skipped\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
