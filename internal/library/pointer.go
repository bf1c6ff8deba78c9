package library

import (
	"fmt"
	"path/filepath"

	"strmsync/internal/fileutil"
	"strmsync/internal/services"
)

// Ext is the pointer file extension.
const Ext = ".strm"

// Outcome describes what WritePointer did for one item.
type Outcome int

const (
	OutcomeCreated Outcome = iota
	OutcomeUpdated
	OutcomeUnchanged
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeUpdated:
		return "updated"
	default:
		return "unchanged"
	}
}

// WritePointer writes streamURL to the pointer file for base in dir, applying
// the duplicate version rules: the plain name belongs to whichever content id
// claimed it first, and a later entry with the same title but a different id
// gets the stable suffixed sibling "base [id]". The id of an existing file is
// recovered from the URL it contains. An item without a content id updates
// the plain name in place.
func WritePointer(dir, base, contentID, streamURL string) (string, Outcome, error) {
	candidates := []string{base + Ext}
	if contentID != "" {
		candidates = append(candidates, fmt.Sprintf("%s [%s]%s", base, contentID, Ext))
	}

	for i, name := range candidates {
		path := filepath.Join(dir, name)
		existingURL, exists, err := fileutil.ReadText(path)
		if err != nil {
			return "", 0, services.Wrap(services.ErrFileIO, "library", "read pointer", path, err)
		}
		if !exists {
			if err := fileutil.WriteText(path, streamURL); err != nil {
				return "", 0, services.Wrap(services.ErrFileIO, "library", "write pointer", path, err)
			}
			return path, OutcomeCreated, nil
		}

		lastCandidate := i == len(candidates)-1
		if ContentID(existingURL) != contentID && !lastCandidate {
			// The name is taken by a different version; fall through to the
			// suffixed sibling.
			continue
		}
		if existingURL == streamURL {
			return path, OutcomeUnchanged, nil
		}
		if err := fileutil.WriteText(path, streamURL); err != nil {
			return "", 0, services.Wrap(services.ErrFileIO, "library", "write pointer", path, err)
		}
		return path, OutcomeUpdated, nil
	}

	// Unreachable: the final candidate always resolves above.
	return "", 0, services.Wrap(services.ErrFileIO, "library", "resolve pointer", base, nil)
}
