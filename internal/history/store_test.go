package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"strmsync/internal/engine"
	"strmsync/internal/testsupport"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(testsupport.NewConfig(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordRunRoundTrip(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	summary := &engine.Summary{
		RunID:          "run-1",
		StartedAt:      time.Now().UTC().Truncate(time.Millisecond),
		Duration:       1500 * time.Millisecond,
		Movies:         10,
		Series:         5,
		LiveTV:         3,
		Added:          4,
		Updated:        1,
		Unchanged:      10,
		ParseSkipped:   1,
		TitleSkipped:   1,
		DeferredMovies: 2,
		OrphansRemoved: 1,
	}
	if err := store.RecordRun(ctx, summary); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	records, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec.RunID != "run-1" || rec.Outcome != OutcomeOK {
		t.Fatalf("record = %+v", rec)
	}
	if rec.Added != 4 || rec.Skipped != 2 || rec.Deferred != 2 || rec.OrphansRemoved != 1 {
		t.Fatalf("counts = %+v", rec)
	}
	if rec.Duration != 1500*time.Millisecond {
		t.Fatalf("duration = %v", rec.Duration)
	}
}

func TestRecordFailure(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if err := store.RecordFailure(ctx, errors.New("fetch exploded")); err != nil {
		t.Fatalf("RecordFailure: %v", err)
	}
	records, err := store.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(records) != 1 || records[0].Outcome != OutcomeFailed || records[0].Error != "fetch exploded" {
		t.Fatalf("records = %+v", records)
	}
}

func TestRecentOrderAndLimit(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		summary := &engine.Summary{RunID: string(rune('a' + i)), StartedAt: time.Now().UTC()}
		if err := store.RecordRun(ctx, summary); err != nil {
			t.Fatal(err)
		}
	}
	records, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].RunID != "e" || records[2].RunID != "c" {
		t.Fatalf("unexpected order: %v, %v", records[0].RunID, records[2].RunID)
	}
}
