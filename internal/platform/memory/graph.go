package memory

import (
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/neurorad/neurograph/internal/domain"
	"github.com/neurorad/neurograph/internal/domain/codes"
	"github.com/neurorad/neurograph/internal/store"
)

// Verify interface compliance at compile time
var _ store.GraphStore = (*Graph)(nil)

// Graph is the in-memory knowledge graph store. All methods are safe for
// concurrent use; mutation is serialized behind a single mutex so reads see
// a consistent snapshot.
type Graph struct {
	mu               sync.RWMutex
	nodes            map[string]domain.Node
	relations        map[string]domain.Relation
	nodeCounters     map[string]int
	relationCounters map[string]int
	logger           *slog.Logger
}

// NewGraph creates an empty graph store.
func NewGraph(logger *slog.Logger) *Graph {
	if logger == nil {
		logger = slog.Default()
	}
	return &Graph{
		nodes:            make(map[string]domain.Node),
		relations:        make(map[string]domain.Relation),
		nodeCounters:     make(map[string]int),
		relationCounters: make(map[string]int),
		logger:           logger.With(slog.String("component", "graph_store")),
	}
}

// AddNode upserts a node keyed by its code.
func (g *Graph) AddNode(node domain.Node) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes[node.Code] = node
}

// AddRelation upserts a relation keyed by its code.
func (g *Graph) AddRelation(relation domain.Relation) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.relations[relation.Code] = relation
}

// NextNodeSequence returns the next sequence number for the key and persists
// the increment.
func (g *Graph) NextNodeSequence(system, category, region, entity string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.nextNodeSequenceLocked(system, category, region, entity)
}

func (g *Graph) nextNodeSequenceLocked(system, category, region, entity string) int {
	key := strings.Join([]string{system, category, region, entity}, "-")
	next := g.nodeCounters[key] + 1
	g.nodeCounters[key] = next
	return next
}

// NextRelationSequence returns the next sequence number for the key and
// persists the increment.
func (g *Graph) NextRelationSequence(t domain.RelationType, originCode, destCode string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.nextRelationSequenceLocked(t, originCode, destCode)
}

func (g *Graph) nextRelationSequenceLocked(t domain.RelationType, originCode, destCode string) int {
	key := strings.Join([]string{string(t), originCode, destCode}, "-")
	next := g.relationCounters[key] + 1
	g.relationCounters[key] = next
	return next
}

// CreateNode allocates the next sequence number, assembles the canonical
// code, stores the node, and returns it.
func (g *Graph) CreateNode(spec store.NodeSpec) domain.Node {
	g.mu.Lock()
	defer g.mu.Unlock()

	seq := g.nextNodeSequenceLocked(string(spec.System), spec.Category, spec.Region, spec.Entity)
	node := domain.Node{
		Code:           codes.EncodeNode(string(spec.System), spec.Category, spec.Region, spec.Entity, seq),
		RawID:          spec.RawID,
		Classification: spec.Classification,
		NameLocal:      spec.NameLocal,
		NameLatin:      spec.NameLatin,
		Description:    spec.Description,
		Functions:      spec.Functions,
		Reference:      spec.Reference,
		ImageReference: spec.ImageReference,
	}
	g.nodes[node.Code] = node
	return node
}

// CreateRelation allocates the next sequence number, assembles the code,
// stores the relation, and returns it.
func (g *Graph) CreateRelation(t domain.RelationType, originCode, destCode, description string) domain.Relation {
	g.mu.Lock()
	defer g.mu.Unlock()

	seq := g.nextRelationSequenceLocked(t, originCode, destCode)
	relation := domain.Relation{
		Code:        codes.EncodeRelation(t, originCode, destCode, seq),
		Type:        t,
		OriginCode:  originCode,
		DestCode:    destCode,
		Description: description,
	}
	g.relations[relation.Code] = relation
	return relation
}

// NodeByCode retrieves a node by its exact code.
func (g *Graph) NodeByCode(code string) (domain.Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	node, ok := g.nodes[code]
	if !ok {
		return domain.Node{}, store.ErrNodeNotFound
	}
	return node, nil
}

// NodeByRawID retrieves the node with the given raw catalog identifier.
// When several nodes share the raw ID, the one with the smallest code wins
// so lookups stay deterministic.
func (g *Graph) NodeByRawID(rawID string) (domain.Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var (
		found bool
		best  domain.Node
	)
	for _, node := range g.nodes {
		if node.RawID != rawID {
			continue
		}
		if !found || node.Code < best.Code {
			found = true
			best = node
		}
	}
	if !found {
		return domain.Node{}, store.ErrNodeNotFound
	}
	return best, nil
}

// NodesBySystem returns all nodes whose derived system matches, sorted.
func (g *Graph) NodesBySystem(system domain.System) []domain.Node {
	return g.filterNodes(func(n domain.Node) bool { return n.System() == system })
}

// NodesByCategory returns all nodes whose derived category matches, sorted.
func (g *Graph) NodesByCategory(category string) []domain.Node {
	return g.filterNodes(func(n domain.Node) bool { return n.Category() == category })
}

// NodesByRegion returns all nodes whose derived region matches, sorted.
func (g *Graph) NodesByRegion(region string) []domain.Node {
	return g.filterNodes(func(n domain.Node) bool { return n.Region() == region })
}

// Nodes returns every stored node, sorted.
func (g *Graph) Nodes() []domain.Node {
	return g.filterNodes(func(domain.Node) bool { return true })
}

// filterNodes collects matching nodes sorted by NameLocal ascending,
// case-insensitive, with the code as tie-break.
func (g *Graph) filterNodes(match func(domain.Node) bool) []domain.Node {
	g.mu.RLock()
	result := make([]domain.Node, 0)
	for _, node := range g.nodes {
		if match(node) {
			result = append(result, node)
		}
	}
	g.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		a := strings.ToLower(result[i].NameLocal)
		b := strings.ToLower(result[j].NameLocal)
		if a != b {
			return a < b
		}
		return result[i].Code < result[j].Code
	})
	return result
}

// RelationsByType returns all relations of the given type, sorted by code.
func (g *Graph) RelationsByType(t domain.RelationType) []domain.Relation {
	return g.filterRelations(func(r domain.Relation) bool { return r.Type == t })
}

// RelationsFrom returns all relations originating at the node code.
func (g *Graph) RelationsFrom(nodeCode string) []domain.Relation {
	return g.filterRelations(func(r domain.Relation) bool { return r.OriginCode == nodeCode })
}

// RelationsTo returns all relations targeting the node code.
func (g *Graph) RelationsTo(nodeCode string) []domain.Relation {
	return g.filterRelations(func(r domain.Relation) bool { return r.DestCode == nodeCode })
}

// Relations returns every stored relation, sorted by code.
func (g *Graph) Relations() []domain.Relation {
	return g.filterRelations(func(domain.Relation) bool { return true })
}

func (g *Graph) filterRelations(match func(domain.Relation) bool) []domain.Relation {
	g.mu.RLock()
	result := make([]domain.Relation, 0)
	for _, relation := range g.relations {
		if match(relation) {
			result = append(result, relation)
		}
	}
	g.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result
}

// NodeCount returns the number of stored nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// RelationCount returns the number of stored relations.
func (g *Graph) RelationCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.relations)
}

// ReplaceAll swaps the entire graph for the given collections and rebuilds
// both counters from the stored codes.
func (g *Graph) ReplaceAll(nodes []domain.Node, relations []domain.Relation) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = make(map[string]domain.Node, len(nodes))
	for _, node := range nodes {
		g.nodes[node.Code] = node
	}
	g.relations = make(map[string]domain.Relation, len(relations))
	for _, relation := range relations {
		g.relations[relation.Code] = relation
	}

	skipped := g.rebuildCountersLocked()
	g.logger.Info("graph replaced",
		slog.Int("nodes", len(g.nodes)),
		slog.Int("relations", len(g.relations)),
		slog.Int("unparsable_codes", skipped))
}

// RebuildCounters recomputes both counter maps from the stored codes,
// keeping the maximum sequence per key and skipping codes that fail to
// parse. Returns the number of skipped codes.
func (g *Graph) RebuildCounters() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rebuildCountersLocked()
}

func (g *Graph) rebuildCountersLocked() int {
	g.nodeCounters = make(map[string]int)
	g.relationCounters = make(map[string]int)

	skipped := 0
	for code := range g.nodes {
		components, err := codes.ParseNode(code)
		if err != nil {
			skipped++
			continue
		}
		key := components.Key()
		if components.Sequence > g.nodeCounters[key] {
			g.nodeCounters[key] = components.Sequence
		}
	}
	for code := range g.relations {
		components, err := codes.ParseRelation(code)
		if err != nil {
			skipped++
			continue
		}
		key := components.Key()
		if components.Sequence > g.relationCounters[key] {
			g.relationCounters[key] = components.Sequence
		}
	}

	if skipped > 0 {
		g.logger.Warn("counter recovery skipped unparsable codes", slog.Int("count", skipped))
	}
	return skipped
}
