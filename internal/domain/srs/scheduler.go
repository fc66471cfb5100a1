package srs

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/neurorad/neurograph/internal/domain"
)

// ReviewRecord is one append-only entry in a structure's review history.
type ReviewRecord struct {
	ID           uuid.UUID         `json:"id"`
	Timestamp    time.Time         `json:"fecha"`
	Difficulty   domain.Difficulty `json:"dificultad"`
	IntervalDays int               `json:"intervalo"`
}

// Session aggregates the reviews recorded during one calendar day. At most
// one session is open per day.
type Session struct {
	ID                uuid.UUID                    `json:"id"`
	Date              time.Time                    `json:"fecha"`
	StructuresStudied int                          `json:"estructurasEstudiadas"`
	DifficultyByNode  map[string]domain.Difficulty `json:"dificultadesPorEstructura"`
}

// Scheduler owns the per-node review history and the session log.
//
// It is the single shared scheduling instance for the whole application;
// consumers receive it by injection rather than constructing their own, so
// review state is never silently split across instances.
type Scheduler struct {
	params   Params
	history  map[string][]ReviewRecord
	sessions []Session
	logger   *slog.Logger

	// now is the clock source, replaceable in tests.
	now func() time.Time
}

// NewScheduler creates a Scheduler with the given parameters.
func NewScheduler(params Params, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		params:  params,
		history: make(map[string][]ReviewRecord),
		logger:  logger.With(slog.String("component", "srs_scheduler")),
		now:     time.Now,
	}
}

// RecordReview registers a study outcome for the given node code: it opens
// today's session if needed, updates the session tallies, computes the next
// review interval, and appends the record to the node's history.
func (s *Scheduler) RecordReview(nodeCode string, difficulty domain.Difficulty) (ReviewRecord, error) {
	if nodeCode == "" {
		return ReviewRecord{}, domain.ErrEmptyNodeCode
	}
	if !difficulty.IsValid() {
		return ReviewRecord{}, fmt.Errorf("%w: %q", domain.ErrInvalidDifficulty, difficulty)
	}

	now := s.now()

	session := s.ensureTodaySession(now)
	if _, seen := session.DifficultyByNode[nodeCode]; !seen {
		session.StructuresStudied++
	}
	session.DifficultyByNode[nodeCode] = difficulty

	record := ReviewRecord{
		ID:           uuid.New(),
		Timestamp:    now,
		Difficulty:   difficulty,
		IntervalDays: s.computeInterval(nodeCode, difficulty),
	}
	s.history[nodeCode] = append(s.history[nodeCode], record)

	s.logger.Debug("review recorded",
		slog.String("node_code", nodeCode),
		slog.String("difficulty", string(difficulty)),
		slog.Int("interval_days", record.IntervalDays))

	return record, nil
}

// ensureTodaySession returns the open session for the current calendar day,
// creating one when the log is empty or the last session is from an earlier
// day.
func (s *Scheduler) ensureTodaySession(now time.Time) *Session {
	if len(s.sessions) == 0 || !sameCalendarDay(s.sessions[len(s.sessions)-1].Date, now) {
		s.sessions = append(s.sessions, Session{
			ID:               uuid.New(),
			Date:             now,
			DifficultyByNode: make(map[string]domain.Difficulty),
		})
	}
	return &s.sessions[len(s.sessions)-1]
}

// computeInterval applies the simplified SM-2 progression: on the first
// review the interval comes from the difficulty table; afterwards a hard
// review resets it, a medium review keeps it, and an easy review doubles it.
func (s *Scheduler) computeInterval(nodeCode string, difficulty domain.Difficulty) int {
	records := s.history[nodeCode]
	if len(records) == 0 {
		return s.params.FirstReviewIntervals[difficulty]
	}

	lastInterval := records[len(records)-1].IntervalDays
	switch difficulty {
	case domain.DifficultyHard:
		return s.params.HardResetInterval
	case domain.DifficultyMedium:
		return lastInterval
	default:
		return lastInterval * s.params.EasyMultiplier
	}
}

// Priority computes the study-priority score for a node code; higher means
// study sooner.
//
// Never-studied structures score BasePriority. An overdue structure scores
// BasePriority plus the number of days it is overdue, unbounded, so overdue
// material always outranks everything else, ordered by how overdue it is. A
// structure not yet due scores in [0, BasePriority) proportionally to how
// close its due date is.
func (s *Scheduler) Priority(nodeCode string) float64 {
	records := s.history[nodeCode]
	if len(records) == 0 {
		return s.params.BasePriority
	}

	last := records[len(records)-1]
	daysSince := wholeDaysBetween(last.Timestamp, s.now())

	if daysSince >= last.IntervalDays {
		return float64(daysSince-last.IntervalDays) + s.params.BasePriority
	}
	return float64(daysSince) / float64(last.IntervalDays) * s.params.BasePriority
}

// OrderByPriority returns the node codes stably sorted by descending
// priority. The input slice is not modified.
func (s *Scheduler) OrderByPriority(nodeCodes []string) []string {
	ordered := make([]string, len(nodeCodes))
	copy(ordered, nodeCodes)

	sort.SliceStable(ordered, func(i, j int) bool {
		return s.Priority(ordered[i]) > s.Priority(ordered[j])
	})
	return ordered
}

// DueForReview returns the codes of all structures with review history whose
// interval has elapsed, most overdue first.
func (s *Scheduler) DueForReview() []string {
	due := make([]string, 0)
	for code, records := range s.history {
		last := records[len(records)-1]
		if wholeDaysBetween(last.Timestamp, s.now()) >= last.IntervalDays {
			due = append(due, code)
		}
	}

	// Map iteration is unordered; sort by code first so equal priorities
	// come out deterministically, then by descending priority.
	sort.Strings(due)
	return s.OrderByPriority(due)
}

// CloseTodaySession discards the current day's session, if one exists. Used
// for an explicit session reset; review history is unaffected.
func (s *Scheduler) CloseTodaySession() {
	if len(s.sessions) == 0 {
		return
	}
	if sameCalendarDay(s.sessions[len(s.sessions)-1].Date, s.now()) {
		s.sessions = s.sessions[:len(s.sessions)-1]
		s.logger.Debug("today's session discarded")
	}
}

// History returns a copy of the review records for a node code, oldest
// first.
func (s *Scheduler) History(nodeCode string) []ReviewRecord {
	records := s.history[nodeCode]
	out := make([]ReviewRecord, len(records))
	copy(out, records)
	return out
}

// Sessions returns a copy of the session log, oldest first.
func (s *Scheduler) Sessions() []Session {
	out := make([]Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// DifficultyTallies counts recorded reviews per difficulty across the whole
// history, for progress reporting.
func (s *Scheduler) DifficultyTallies() map[domain.Difficulty]int {
	tallies := make(map[domain.Difficulty]int, len(domain.AllDifficulties))
	for _, records := range s.history {
		for _, r := range records {
			tallies[r.Difficulty]++
		}
	}
	return tallies
}

// sameCalendarDay reports whether two instants fall on the same local
// calendar day.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// wholeDaysBetween returns the number of complete 24-hour periods between
// two instants, never negative.
func wholeDaysBetween(from, to time.Time) int {
	days := int(to.Sub(from).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
