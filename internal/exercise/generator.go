package exercise

import (
	"errors"
	"math/rand"
	"time"

	"github.com/neurorad/neurograph/internal/domain"
)

// ErrNotEnoughNodes is returned when the catalog slice is too small to
// build the requested exercise.
var ErrNotEnoughNodes = errors.New("not enough nodes to build exercise")

const (
	// quizOptionCount is the option set size: the target plus three
	// distractors.
	quizOptionCount = 4

	// matchingPairCount is the number of name/function pairs on a
	// matching board.
	matchingPairCount = 5
)

// Generator builds exercises from slices of catalog nodes. It never
// mutates its input.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator backed by the given random source. A
// nil source seeds from the current time.
func NewGenerator(source rand.Source) *Generator {
	if source == nil {
		source = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{rng: rand.New(source)}
}

// OutcomeFor maps an exercise answer to the review difficulty recorded for
// the target structure: a correct answer counts as an easy recall, an
// incorrect one as a failed recall.
func OutcomeFor(correct bool) domain.Difficulty {
	if correct {
		return domain.DifficultyEasy
	}
	return domain.DifficultyHard
}
