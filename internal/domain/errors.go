package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidNodeCode is returned when a string is not a valid
	// hierarchical node code (NA-{system}-{category}-{region}-{entity}-{seq}).
	ErrInvalidNodeCode = errors.New("not a valid node code")

	// ErrInvalidRelationCode is returned when a string is not a valid
	// relation code (RE-{type}-{origin}-{dest}-{seq}).
	ErrInvalidRelationCode = errors.New("not a valid relation code")

	// ErrInvalidRelationType is returned when a relation type is not one of
	// the known typed-edge kinds.
	ErrInvalidRelationType = errors.New("invalid relation type")

	// ErrInvalidDifficulty is returned when a review difficulty is not valid.
	ErrInvalidDifficulty = errors.New("invalid review difficulty")

	// ErrEmptyNodeCode is returned when a node code is empty.
	ErrEmptyNodeCode = errors.New("node code cannot be empty")

	// ErrEmptyName is returned when a node has no local display name.
	ErrEmptyName = errors.New("node name cannot be empty")
)
