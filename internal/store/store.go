package store

import (
	"context"

	"github.com/neurorad/neurograph/internal/domain"
)

// NodeSpec carries the fields needed to create a node whose code has not
// been generated yet. The store allocates the sequence number and assembles
// the canonical code.
type NodeSpec struct {
	System         domain.System
	Category       string
	Region         string
	Entity         string
	RawID          string
	Classification string
	NameLocal      string
	NameLatin      string
	Description    string
	Functions      []string
	Reference      string
	ImageReference string
}

// GraphStore is the anatomical knowledge graph: nodes, directed typed
// relations, and the sequence counters used to mint new codes.
//
// Query methods returning node slices sort by NameLocal ascending,
// case-insensitive, with the code as tie-break; relation queries sort by
// code. Write methods upsert by code (last write wins). Code generation is
// the store's job: callers never assemble relation codes themselves, which
// is what keeps per-key sequences monotonic.
type GraphStore interface {
	// AddNode upserts a node keyed by its code.
	AddNode(node domain.Node)

	// AddRelation upserts a relation keyed by its code.
	AddRelation(relation domain.Relation)

	// CreateNode allocates the next sequence number for the spec's
	// (system, category, region, entity) key, assembles the canonical code,
	// stores the node, and returns it.
	CreateNode(spec NodeSpec) domain.Node

	// CreateRelation allocates the next sequence number for the
	// (type, origin, dest) key, assembles the code, stores the relation,
	// and returns it.
	CreateRelation(t domain.RelationType, originCode, destCode, description string) domain.Relation

	// NextNodeSequence returns the next sequence number for the given key
	// and persists the increment. Monotonic per key, starting at 1.
	NextNodeSequence(system, category, region, entity string) int

	// NextRelationSequence returns the next sequence number for the given
	// key and persists the increment. Monotonic per key, starting at 1.
	NextRelationSequence(t domain.RelationType, originCode, destCode string) int

	// NodeByCode retrieves a node by its exact code.
	// Returns ErrNodeNotFound if the node does not exist.
	NodeByCode(code string) (domain.Node, error)

	// NodeByRawID retrieves the first node whose raw catalog identifier
	// matches. Raw IDs are not guaranteed unique; when several nodes share
	// one, the match with the smallest code is returned so lookups stay
	// deterministic. Returns ErrNodeNotFound if no node matches.
	NodeByRawID(rawID string) (domain.Node, error)

	// NodesBySystem returns all nodes whose derived system matches.
	NodesBySystem(system domain.System) []domain.Node

	// NodesByCategory returns all nodes whose derived category matches.
	NodesByCategory(category string) []domain.Node

	// NodesByRegion returns all nodes whose derived region matches.
	NodesByRegion(region string) []domain.Node

	// RelationsByType returns all relations of the given type.
	RelationsByType(t domain.RelationType) []domain.Relation

	// RelationsFrom returns all relations originating at the given node
	// code. Dangling references are included; resolving them is the
	// caller's concern.
	RelationsFrom(nodeCode string) []domain.Relation

	// RelationsTo returns all relations targeting the given node code.
	RelationsTo(nodeCode string) []domain.Relation

	// Nodes returns every stored node, sorted.
	Nodes() []domain.Node

	// Relations returns every stored relation, sorted by code.
	Relations() []domain.Relation

	// NodeCount returns the number of stored nodes.
	NodeCount() int

	// RelationCount returns the number of stored relations.
	RelationCount() int

	// ReplaceAll swaps the entire graph for the given collections and
	// rebuilds both sequence counters from the stored codes. Used by
	// snapshot loading; the previous contents are discarded.
	ReplaceAll(nodes []domain.Node, relations []domain.Relation)

	// RebuildCounters recomputes both counter maps from scratch by parsing
	// every stored code and keeping the maximum sequence per key. Codes
	// that fail to parse are skipped; the skip count is returned for
	// diagnosability. Idempotent: re-running it on the same contents yields
	// identical subsequent allocations.
	RebuildCounters() int
}

// SnapshotStore persists the full graph as a single JSON document.
type SnapshotStore interface {
	// Save writes the graph atomically. On error no partial snapshot is
	// left at the target location.
	Save(ctx context.Context, nodes []domain.Node, relations []domain.Relation) error

	// Load reads the persisted snapshot without mutating any store.
	// Returns ErrSnapshotNotFound when no snapshot exists and
	// ErrSnapshotCorrupt when one exists but cannot be decoded.
	Load(ctx context.Context) ([]domain.Node, []domain.Relation, error)
}
