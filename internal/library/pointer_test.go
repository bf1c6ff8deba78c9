package library

import (
	"os"
	"path/filepath"
	"testing"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestWritePointerCreates(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Movie Name (2023)")
	url := "http://host/movie/u/p/12345.mkv"

	path, outcome, err := WritePointer(dir, "Movie Name (2023)", "12345", url)
	if err != nil {
		t.Fatalf("WritePointer: %v", err)
	}
	if outcome != OutcomeCreated {
		t.Fatalf("outcome = %v, want created", outcome)
	}
	if filepath.Base(path) != "Movie Name (2023).strm" {
		t.Fatalf("path = %q", path)
	}
	if readFile(t, path) != url {
		t.Fatalf("content = %q", readFile(t, path))
	}
}

func TestWritePointerUnchangedThenUpdated(t *testing.T) {
	dir := t.TempDir()
	url := "http://host/movie/u/p/12345.mkv"

	path, _, err := WritePointer(dir, "Title", "12345", url)
	if err != nil {
		t.Fatal(err)
	}

	_, outcome, err := WritePointer(dir, "Title", "12345", url)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != OutcomeUnchanged {
		t.Fatalf("outcome = %v, want unchanged", outcome)
	}

	moved := "http://other-host/movie/u/p/12345.mkv"
	path2, outcome, err := WritePointer(dir, "Title", "12345", moved)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != OutcomeUpdated {
		t.Fatalf("outcome = %v, want updated", outcome)
	}
	if path2 != path {
		t.Fatalf("update moved file: %q vs %q", path2, path)
	}
	if readFile(t, path) != moved {
		t.Fatalf("content = %q", readFile(t, path))
	}
}

func TestWritePointerDuplicateVersionSibling(t *testing.T) {
	dir := t.TempDir()
	first := "http://host/movie/u/p/111.mkv"
	second := "http://host/movie/u/p/222.mkv"

	path1, _, err := WritePointer(dir, "Title", "111", first)
	if err != nil {
		t.Fatal(err)
	}
	path2, outcome, err := WritePointer(dir, "Title", "222", second)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != OutcomeCreated {
		t.Fatalf("outcome = %v, want created", outcome)
	}
	if filepath.Base(path2) != "Title [222].strm" {
		t.Fatalf("sibling path = %q", path2)
	}
	if readFile(t, path1) != first || readFile(t, path2) != second {
		t.Fatal("each version must keep its own URL")
	}

	// Re-encountering both ids with changed URLs updates the same two files
	// in place; no third file appears.
	firstMoved := "http://new/movie/u/p/111.mkv"
	secondMoved := "http://new/movie/u/p/222.mkv"
	p, outcome, err := WritePointer(dir, "Title", "111", firstMoved)
	if err != nil || p != path1 || outcome != OutcomeUpdated {
		t.Fatalf("first re-encounter: path=%q outcome=%v err=%v", p, outcome, err)
	}
	p, outcome, err = WritePointer(dir, "Title", "222", secondMoved)
	if err != nil || p != path2 || outcome != OutcomeUpdated {
		t.Fatalf("second re-encounter: path=%q outcome=%v err=%v", p, outcome, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected exactly 2 files, got %d", len(entries))
	}
}

func TestWritePointerNoContentID(t *testing.T) {
	dir := t.TempDir()

	path, outcome, err := WritePointer(dir, "Title", "", "http://host/movie/u/p/first.mkv")
	if err != nil || outcome != OutcomeCreated {
		t.Fatalf("outcome=%v err=%v", outcome, err)
	}
	// Without an id there is no sibling naming; the plain file is updated.
	path2, outcome, err := WritePointer(dir, "Title", "", "http://host/movie/u/p/second.mkv")
	if err != nil || outcome != OutcomeUpdated || path2 != path {
		t.Fatalf("path=%q outcome=%v err=%v", path2, outcome, err)
	}
}
