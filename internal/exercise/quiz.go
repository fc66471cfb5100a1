package exercise

import (
	"fmt"

	"github.com/neurorad/neurograph/internal/domain"
)

// Quiz is one multiple-choice question: identify the structure that the
// prompt describes among four shuffled options.
type Quiz struct {
	// TargetCode is the code of the structure the prompt describes.
	TargetCode string

	// Prompt is the target's description text.
	Prompt string

	// Options holds the target plus three distractors in shuffled order.
	Options []domain.Node
}

// NewQuiz builds a quiz question around a random target from nodes. It
// returns ErrNotEnoughNodes when fewer than four nodes are available.
func (g *Generator) NewQuiz(nodes []domain.Node) (Quiz, error) {
	if len(nodes) < quizOptionCount {
		return Quiz{}, fmt.Errorf("%w: need %d, have %d", ErrNotEnoughNodes, quizOptionCount, len(nodes))
	}

	pool := make([]domain.Node, len(nodes))
	copy(pool, nodes)
	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	target := pool[0]
	options := pool[:quizOptionCount]
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return Quiz{
		TargetCode: target.Code,
		Prompt:     target.Description,
		Options:    options,
	}, nil
}

// IsCorrect reports whether the selected option code is the target.
func (q Quiz) IsCorrect(code string) bool {
	return code == q.TargetCode
}
