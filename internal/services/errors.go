package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrFetch marks playlist download failures. A fetch failure aborts the
	// run before any file mutation.
	ErrFetch = errors.New("fetch error")
	// ErrFileIO marks a failed directory creation or pointer file write.
	// Recovered per item.
	ErrFileIO = errors.New("file io error")
	// ErrNotification marks indexer call failures. Never fatal to a run.
	ErrNotification = errors.New("notification error")
	// ErrConfiguration marks unusable configuration detected at startup.
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification via errors.Is.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrFileIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Fatal reports whether err should abort the surrounding run rather than be
// recovered at item granularity.
func Fatal(err error) bool {
	return errors.Is(err, ErrFetch) || errors.Is(err, ErrConfiguration)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
