package library

import (
	"os"
	"path/filepath"
	"sort"

	"strmsync/internal/fileutil"
	"strmsync/internal/services"
)

// ListPointers returns the set of pointer files currently on disk under root.
// A missing root yields an empty set.
func ListPointers(root string) (map[string]struct{}, error) {
	paths, err := fileutil.ListByExt(root, Ext)
	if err != nil {
		return nil, services.Wrap(services.ErrFileIO, "library", "list pointers", root, err)
	}
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return set, nil
}

// Orphans returns every path in existing that was neither written nor
// confirmed unchanged this run, sorted for deterministic processing.
func Orphans(existing, processed map[string]struct{}) []string {
	var out []string
	for path := range existing {
		if _, ok := processed[path]; !ok {
			out = append(out, path)
		}
	}
	sort.Strings(out)
	return out
}

// Remove deletes one pointer file from disk.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return services.Wrap(services.ErrFileIO, "library", "remove pointer", path, err)
	}
	return nil
}

// PruneEmptyDirs removes directories under root that no longer contain any
// pointer file, including any stray non-pointer files inside them. The root
// itself is never removed. Returns the number of directories removed.
func PruneEmptyDirs(root string) (int, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, services.Wrap(services.ErrFileIO, "library", "prune directories", root, err)
	}

	removed := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		hasPointers, err := fileutil.ContainsExt(dir, Ext)
		if err != nil {
			return removed, services.Wrap(services.ErrFileIO, "library", "prune directories", dir, err)
		}
		if !hasPointers {
			if err := os.RemoveAll(dir); err != nil {
				return removed, services.Wrap(services.ErrFileIO, "library", "prune directories", dir, err)
			}
			removed++
			continue
		}
		nested, err := PruneEmptyDirs(dir)
		if err != nil {
			return removed, err
		}
		removed += nested
	}
	return removed, nil
}
