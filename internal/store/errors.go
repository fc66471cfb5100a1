package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors below.
	ErrNotFound = errors.New("entity not found")

	// ErrSnapshotNotFound is returned when no persisted snapshot exists at
	// the configured location. Callers typically fall back to importing the
	// bundled seed catalog.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrSnapshotCorrupt is returned when a persisted snapshot exists but
	// cannot be decoded. The in-memory state is left untouched.
	ErrSnapshotCorrupt = errors.New("snapshot corrupt")

	// ErrSnapshotWrite is returned when a snapshot cannot be written. No
	// partial file is left behind.
	ErrSnapshotWrite = errors.New("snapshot write failed")

	// Entity-specific "not found" errors

	// ErrNodeNotFound indicates that the requested anatomical node does not
	// exist in the graph.
	ErrNodeNotFound = fmt.Errorf("%w: node", ErrNotFound)

	// ErrRelationNotFound indicates that the requested relation does not
	// exist in the graph.
	ErrRelationNotFound = fmt.Errorf("%w: relation", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrSnapshotNotFound)
}
