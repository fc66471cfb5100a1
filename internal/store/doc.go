// Package store defines the persistence interfaces and error types used by
// the service layer: GraphStore for the in-memory anatomical knowledge graph
// and SnapshotStore for the JSON snapshot it is saved to and loaded from.
// Concrete implementations live under internal/platform.
package store
