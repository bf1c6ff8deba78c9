// Package logging builds the slog loggers used across strmsync and provides
// the attribute helpers components use to keep log fields consistent.
package logging
