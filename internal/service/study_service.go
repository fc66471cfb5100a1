package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/neurorad/neurograph/internal/domain"
	"github.com/neurorad/neurograph/internal/domain/srs"
	"github.com/neurorad/neurograph/internal/events"
	"github.com/neurorad/neurograph/internal/store"
)

// StudyService wraps the single shared review scheduler and resolves its
// code-based answers back to catalog nodes.
type StudyService struct {
	mu        sync.Mutex
	graph     store.GraphStore
	scheduler *srs.Scheduler
	emitter   events.EventEmitter
	logger    *slog.Logger
}

// NewStudyService wires a StudyService around the shared scheduler.
func NewStudyService(
	graph store.GraphStore,
	scheduler *srs.Scheduler,
	emitter events.EventEmitter,
	logger *slog.Logger,
) *StudyService {
	if graph == nil {
		panic("graph cannot be nil")
	}
	if scheduler == nil {
		panic("scheduler cannot be nil")
	}
	if emitter == nil {
		panic("event emitter cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StudyService{
		graph:     graph,
		scheduler: scheduler,
		emitter:   emitter,
		logger:    logger.With(slog.String("component", "study_service")),
	}
}

// RecordReview records a review outcome for an existing catalog node.
// Returns store.ErrNodeNotFound when the code is not in the graph, so
// review history never accumulates entries for structures that were never
// imported.
func (s *StudyService) RecordReview(
	ctx context.Context,
	nodeCode string,
	difficulty domain.Difficulty,
) (srs.ReviewRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.graph.NodeByCode(nodeCode); err != nil {
		return srs.ReviewRecord{}, err
	}

	record, err := s.scheduler.RecordReview(nodeCode, difficulty)
	if err != nil {
		return srs.ReviewRecord{}, newServiceError("study", "record_review", err)
	}

	s.emit(ctx, events.EventReviewRecorded, map[string]string{
		"node_code":  nodeCode,
		"difficulty": string(difficulty),
	})
	return record, nil
}

// NodesByPriority returns every catalog node ordered by descending review
// priority.
func (s *StudyService) NodesByPriority() []domain.Node {
	s.mu.Lock()
	defer s.mu.Unlock()

	nodes := s.graph.Nodes()
	codes := make([]string, len(nodes))
	byCode := make(map[string]domain.Node, len(nodes))
	for i, node := range nodes {
		codes[i] = node.Code
		byCode[node.Code] = node
	}

	ordered := make([]domain.Node, 0, len(nodes))
	for _, code := range s.scheduler.OrderByPriority(codes) {
		ordered = append(ordered, byCode[code])
	}
	return ordered
}

// DueForReview returns the catalog nodes whose review interval has
// elapsed, highest priority first. Reviewed codes that no longer resolve
// to a catalog node are omitted.
func (s *StudyService) DueForReview() []domain.Node {
	s.mu.Lock()
	defer s.mu.Unlock()

	due := s.scheduler.DueForReview()
	nodes := make([]domain.Node, 0, len(due))
	for _, code := range due {
		node, err := s.graph.NodeByCode(code)
		if err != nil {
			s.logger.Debug("skipping due review for unknown node",
				slog.String("node_code", code))
			continue
		}
		nodes = append(nodes, node)
	}
	return nodes
}

// Priority returns the review priority for a node code.
func (s *StudyService) Priority(nodeCode string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheduler.Priority(nodeCode)
}

// History returns the review history for a node code, oldest first.
func (s *StudyService) History(nodeCode string) []srs.ReviewRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheduler.History(nodeCode)
}

// Sessions returns all recorded study sessions.
func (s *StudyService) Sessions() []srs.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheduler.Sessions()
}

// DifficultyTallies returns the total review count per difficulty.
func (s *StudyService) DifficultyTallies() map[domain.Difficulty]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheduler.DifficultyTallies()
}

// ResetTodaySession discards the current day's session so the next
// recorded review starts a fresh one.
func (s *StudyService) ResetTodaySession(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scheduler.CloseTodaySession()
	s.emit(ctx, events.EventSessionReset, nil)
}

func (s *StudyService) emit(ctx context.Context, eventType events.EventType, payload interface{}) {
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
