package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType identifies the kind of state change an event announces.
type EventType string

const (
	// EventCatalogImported fires after a seed catalog is imported into
	// the graph.
	EventCatalogImported EventType = "catalog.imported"

	// EventRelationsInferred fires after a relation-inference pass.
	EventRelationsInferred EventType = "relations.inferred"

	// EventSnapshotSaved fires after the graph is persisted to disk.
	EventSnapshotSaved EventType = "snapshot.saved"

	// EventSnapshotLoaded fires after a snapshot replaces the in-memory
	// graph.
	EventSnapshotLoaded EventType = "snapshot.loaded"

	// EventReviewRecorded fires after a structure review is recorded.
	EventReviewRecorded EventType = "review.recorded"

	// EventSessionReset fires when the current day's study session is
	// discarded.
	EventSessionReset EventType = "session.reset"
)

// ChangeEvent represents one observable state change in the catalog or the
// study scheduler. It carries the change details as JSON so handlers do
// not depend on service types.
type ChangeEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type indicates what kind of change occurred
	Type EventType `json:"type"`

	// Payload contains the change-specific data serialized as JSON
	Payload json.RawMessage `json:"payload"`

	// OccurredAt is the timestamp when the event was created
	OccurredAt time.Time `json:"occurred_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *ChangeEvent) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewChangeEvent creates a new ChangeEvent with the specified type and payload.
func NewChangeEvent(eventType EventType, payload interface{}) (*ChangeEvent, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &ChangeEvent{
		ID:         uuid.New(),
		Type:       eventType,
		Payload:    payloadBytes,
		OccurredAt: time.Now(),
	}, nil
}

// EventHandler defines an interface for components that can handle events.
// Handlers are responsible for processing events and taking appropriate actions.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *ChangeEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *ChangeEvent) error
}
