package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/neurorad/neurograph/internal/domain"
	"github.com/neurorad/neurograph/internal/events"
	"github.com/neurorad/neurograph/internal/importer"
	"github.com/neurorad/neurograph/internal/inference"
	"github.com/neurorad/neurograph/internal/store"
)

// SeedSource supplies the raw bytes of the seed catalog. Bootstrap calls
// it only when no snapshot exists.
type SeedSource func(ctx context.Context) ([]byte, error)

// CatalogService owns the anatomical graph and everything that populates
// it: snapshot persistence, catalog import, and relation inference.
type CatalogService struct {
	mu        sync.Mutex
	graph     store.GraphStore
	snapshots store.SnapshotStore
	importer  *importer.Importer
	inferrer  *inference.Inferrer
	emitter   events.EventEmitter
	logger    *slog.Logger
}

// NewCatalogService wires a CatalogService. All collaborators except the
// logger are required.
func NewCatalogService(
	graph store.GraphStore,
	snapshots store.SnapshotStore,
	imp *importer.Importer,
	inf *inference.Inferrer,
	emitter events.EventEmitter,
	logger *slog.Logger,
) *CatalogService {
	if graph == nil {
		panic("graph cannot be nil")
	}
	if snapshots == nil {
		panic("snapshot store cannot be nil")
	}
	if imp == nil {
		panic("importer cannot be nil")
	}
	if inf == nil {
		panic("inferrer cannot be nil")
	}
	if emitter == nil {
		panic("event emitter cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		graph:     graph,
		snapshots: snapshots,
		importer:  imp,
		inferrer:  inf,
		emitter:   emitter,
		logger:    logger.With(slog.String("component", "catalog_service")),
	}
}

// Bootstrap implements the startup contract: load the persisted snapshot
// when one exists; when it is absent or unreadable, read the seed catalog,
// import it, infer relations, and persist the resulting graph.
func (s *CatalogService) Bootstrap(ctx context.Context, seed SeedSource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.loadSnapshotLocked(ctx)
	if err == nil {
		s.logger.Info("bootstrapped from snapshot",
			slog.Int("nodes", s.graph.NodeCount()),
			slog.Int("relations", s.graph.RelationCount()))
		return nil
	}
	if errors.Is(err, store.ErrSnapshotNotFound) {
		s.logger.Info("no snapshot found, importing seed catalog")
	} else {
		s.logger.Warn("snapshot unreadable, rebuilding from seed catalog",
			slog.String("error", err.Error()))
	}

	data, err := seed(ctx)
	if err != nil {
		return newServiceError("catalog", "bootstrap", errors.Join(ErrSeedUnavailable, err))
	}

	imported, err := s.importer.ImportCatalog(data)
	if err != nil {
		return newServiceError("catalog", "bootstrap", err)
	}
	s.emit(ctx, events.EventCatalogImported, map[string]int{"nodes_imported": len(imported)})

	created := s.inferrer.InferRelations()
	s.emit(ctx, events.EventRelationsInferred, map[string]int{"relations_created": created})

	if err := s.saveSnapshotLocked(ctx); err != nil {
		return newServiceError("catalog", "bootstrap", err)
	}
	s.emit(ctx, events.EventSnapshotSaved, nil)

	s.logger.Info("bootstrapped from seed catalog",
		slog.Int("nodes", s.graph.NodeCount()),
		slog.Int("relations", s.graph.RelationCount()))
	return nil
}

// ImportCatalog parses raw seed JSON and loads it into the graph. Returns
// the number of nodes imported.
func (s *CatalogService) ImportCatalog(ctx context.Context, data []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	imported, err := s.importer.ImportCatalog(data)
	if err != nil {
		return 0, newServiceError("catalog", "import_catalog", err)
	}
	s.emit(ctx, events.EventCatalogImported, map[string]int{"nodes_imported": len(imported)})
	return len(imported), nil
}

// InferRelations runs a relation-inference pass over the current graph and
// returns the number of relations created.
func (s *CatalogService) InferRelations(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := s.inferrer.InferRelations()
	s.emit(ctx, events.EventRelationsInferred, map[string]int{"relations_created": created})
	return created
}

// SaveSnapshot persists the current graph.
func (s *CatalogService) SaveSnapshot(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.saveSnapshotLocked(ctx); err != nil {
		return newServiceError("catalog", "save_snapshot", err)
	}
	s.emit(ctx, events.EventSnapshotSaved, nil)
	return nil
}

// LoadSnapshot replaces the in-memory graph with the persisted snapshot.
// On failure the in-memory state is left untouched.
func (s *CatalogService) LoadSnapshot(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadSnapshotLocked(ctx); err != nil {
		return newServiceError("catalog", "load_snapshot", err)
	}
	return nil
}

func (s *CatalogService) saveSnapshotLocked(ctx context.Context) error {
	return s.snapshots.Save(ctx, s.graph.Nodes(), s.graph.Relations())
}

func (s *CatalogService) loadSnapshotLocked(ctx context.Context) error {
	nodes, relations, err := s.snapshots.Load(ctx)
	if err != nil {
		return err
	}
	s.graph.ReplaceAll(nodes, relations)
	s.emit(ctx, events.EventSnapshotLoaded, map[string]int{
		"nodes":     len(nodes),
		"relations": len(relations),
	})
	return nil
}

// emit publishes a change event. Emission failures are logged, never
// propagated: notification is best-effort and must not fail the operation
// that triggered it.
func (s *CatalogService) emit(ctx context.Context, eventType events.EventType, payload interface{}) {
	event, err := events.NewChangeEvent(eventType, payload)
	if err != nil {
		s.logger.Error("failed to build change event",
			slog.String("event_type", string(eventType)),
			slog.String("error", err.Error()))
		return
	}
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		s.logger.Warn("change event handler failed",
			slog.String("event_type", string(eventType)),
			slog.String("error", err.Error()))
	}
}

// NodeByCode retrieves a node by its exact code.
func (s *CatalogService) NodeByCode(code string) (domain.Node, error) {
	return s.graph.NodeByCode(code)
}

// NodeByRawID retrieves a node by its raw catalog identifier.
func (s *CatalogService) NodeByRawID(rawID string) (domain.Node, error) {
	return s.graph.NodeByRawID(rawID)
}

// NodesBySystem returns all nodes in the given system.
func (s *CatalogService) NodesBySystem(system domain.System) []domain.Node {
	return s.graph.NodesBySystem(system)
}

// NodesByCategory returns all nodes in the given category.
func (s *CatalogService) NodesByCategory(category string) []domain.Node {
	return s.graph.NodesByCategory(category)
}

// NodesByRegion returns all nodes in the given region.
func (s *CatalogService) NodesByRegion(region string) []domain.Node {
	return s.graph.NodesByRegion(region)
}

// RelationsByType returns all relations of the given type.
func (s *CatalogService) RelationsByType(t domain.RelationType) []domain.Relation {
	return s.graph.RelationsByType(t)
}

// RelationsFrom returns all relations originating at the given node code.
func (s *CatalogService) RelationsFrom(nodeCode string) []domain.Relation {
	return s.graph.RelationsFrom(nodeCode)
}

// RelationsTo returns all relations targeting the given node code.
func (s *CatalogService) RelationsTo(nodeCode string) []domain.Relation {
	return s.graph.RelationsTo(nodeCode)
}

// Nodes returns every stored node.
func (s *CatalogService) Nodes() []domain.Node {
	return s.graph.Nodes()
}

// Relations returns every stored relation.
func (s *CatalogService) Relations() []domain.Relation {
	return s.graph.Relations()
}

// NodeCount returns the number of stored nodes.
func (s *CatalogService) NodeCount() int {
	return s.graph.NodeCount()
}

// RelationCount returns the number of stored relations.
func (s *CatalogService) RelationCount() int {
	return s.graph.RelationCount()
}
