package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurorad/neurograph/internal/domain"
	"github.com/neurorad/neurograph/internal/domain/srs"
	"github.com/neurorad/neurograph/internal/events"
	"github.com/neurorad/neurograph/internal/platform/memory"
	"github.com/neurorad/neurograph/internal/store"
)

type studyFixture struct {
	service  *StudyService
	graph    *memory.Graph
	recorder *eventRecorder
}

func newStudyFixture(t *testing.T) *studyFixture {
	t.Helper()

	graph := memory.NewGraph(nil)
	graph.AddNode(domain.Node{Code: "NA-SC-SG-GEN-Talamo-001", NameLocal: "Tálamo"})
	graph.AddNode(domain.Node{Code: "NA-SV-AR-GEN-Basilar-001", NameLocal: "Arteria basilar"})

	emitter := events.NewInMemoryEventEmitter(nil)
	recorder := &eventRecorder{}
	emitter.RegisterHandler(recorder)

	scheduler := srs.NewScheduler(srs.NewDefaultParams(), nil)
	svc := NewStudyService(graph, scheduler, emitter, nil)
	return &studyFixture{service: svc, graph: graph, recorder: recorder}
}

func TestRecordReview(t *testing.T) {
	t.Parallel()

	fx := newStudyFixture(t)
	ctx := context.Background()

	record, err := fx.service.RecordReview(ctx, "NA-SC-SG-GEN-Talamo-001", domain.DifficultyEasy)
	require.NoError(t, err)
	assert.Equal(t, 5, record.IntervalDays)
	assert.Equal(t, domain.DifficultyEasy, record.Difficulty)

	history := fx.service.History("NA-SC-SG-GEN-Talamo-001")
	require.Len(t, history, 1)
	assert.Equal(t, record.ID, history[0].ID)

	assert.Equal(t, []events.EventType{events.EventReviewRecorded}, fx.recorder.seen())
}

func TestRecordReviewUnknownNode(t *testing.T) {
	t.Parallel()

	fx := newStudyFixture(t)
	_, err := fx.service.RecordReview(context.Background(), "NA-SC-SG-GEN-Nope-001", domain.DifficultyEasy)
	assert.ErrorIs(t, err, store.ErrNodeNotFound)
	assert.Empty(t, fx.recorder.seen(), "no event for a rejected review")
}

func TestRecordReviewInvalidDifficulty(t *testing.T) {
	t.Parallel()

	fx := newStudyFixture(t)
	_, err := fx.service.RecordReview(context.Background(), "NA-SC-SG-GEN-Talamo-001", domain.Difficulty("imposible"))
	assert.ErrorIs(t, err, domain.ErrInvalidDifficulty)
}

func TestNodesByPriority(t *testing.T) {
	t.Parallel()

	fx := newStudyFixture(t)
	ctx := context.Background()

	// A structure reviewed moments ago scores near zero; never-studied
	// structures keep the base priority and come first.
	_, err := fx.service.RecordReview(ctx, "NA-SC-SG-GEN-Talamo-001", domain.DifficultyEasy)
	require.NoError(t, err)

	ordered := fx.service.NodesByPriority()
	require.Len(t, ordered, 2)
	assert.Equal(t, "NA-SV-AR-GEN-Basilar-001", ordered[0].Code)
	assert.Equal(t, "NA-SC-SG-GEN-Talamo-001", ordered[1].Code)
}

func TestDueForReviewOmitsDanglingCodes(t *testing.T) {
	t.Parallel()

	fx := newStudyFixture(t)
	ctx := context.Background()

	_, err := fx.service.RecordReview(ctx, "NA-SC-SG-GEN-Talamo-001", domain.DifficultyHard)
	require.NoError(t, err)

	// Freshly reviewed: nothing is due yet.
	assert.Empty(t, fx.service.DueForReview())

	// Once the node disappears from the catalog, its history entry no
	// longer resolves and must be omitted even when due.
	fx.graph.ReplaceAll(nil, nil)
	assert.Empty(t, fx.service.DueForReview())
}

func TestResetTodaySession(t *testing.T) {
	t.Parallel()

	fx := newStudyFixture(t)
	ctx := context.Background()

	_, err := fx.service.RecordReview(ctx, "NA-SC-SG-GEN-Talamo-001", domain.DifficultyMedium)
	require.NoError(t, err)
	require.Len(t, fx.service.Sessions(), 1)

	fx.service.ResetTodaySession(ctx)
	assert.Empty(t, fx.service.Sessions())

	// History is unaffected by a session reset.
	assert.Len(t, fx.service.History("NA-SC-SG-GEN-Talamo-001"), 1)
	assert.Equal(t, []events.EventType{
		events.EventReviewRecorded,
		events.EventSessionReset,
	}, fx.recorder.seen())
}

func TestDifficultyTallies(t *testing.T) {
	t.Parallel()

	fx := newStudyFixture(t)
	ctx := context.Background()

	_, err := fx.service.RecordReview(ctx, "NA-SC-SG-GEN-Talamo-001", domain.DifficultyEasy)
	require.NoError(t, err)
	_, err = fx.service.RecordReview(ctx, "NA-SV-AR-GEN-Basilar-001", domain.DifficultyEasy)
	require.NoError(t, err)
	_, err = fx.service.RecordReview(ctx, "NA-SC-SG-GEN-Talamo-001", domain.DifficultyHard)
	require.NoError(t, err)

	tallies := fx.service.DifficultyTallies()
	assert.Equal(t, 2, tallies[domain.DifficultyEasy])
	assert.Equal(t, 1, tallies[domain.DifficultyHard])
	assert.Zero(t, tallies[domain.DifficultyMedium])
}
