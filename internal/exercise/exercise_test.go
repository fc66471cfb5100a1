package exercise

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurorad/neurograph/internal/domain"
)

func testNodes(count int) []domain.Node {
	nodes := make([]domain.Node, count)
	for i := range nodes {
		nodes[i] = domain.Node{
			Code:        fmt.Sprintf("NA-SC-SG-GEN-N%d-%03d", i, i+1),
			NameLocal:   fmt.Sprintf("Estructura %d", i),
			Description: fmt.Sprintf("Descripción %d", i),
			Functions:   []string{fmt.Sprintf("Función %d", i)},
		}
	}
	return nodes
}

func TestNewQuiz(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(rand.NewSource(1))
	nodes := testNodes(10)

	quiz, err := gen.NewQuiz(nodes)
	require.NoError(t, err)

	require.Len(t, quiz.Options, 4)

	// The target is always one of the options, and the prompt is its
	// description.
	var target *domain.Node
	for i := range quiz.Options {
		if quiz.Options[i].Code == quiz.TargetCode {
			target = &quiz.Options[i]
		}
	}
	require.NotNil(t, target, "target must be in the option set")
	assert.Equal(t, target.Description, quiz.Prompt)

	// No duplicate options.
	seen := make(map[string]bool)
	for _, opt := range quiz.Options {
		assert.False(t, seen[opt.Code], "duplicate option %s", opt.Code)
		seen[opt.Code] = true
	}
}

func TestNewQuizNotEnoughNodes(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(rand.NewSource(1))
	_, err := gen.NewQuiz(testNodes(3))
	assert.ErrorIs(t, err, ErrNotEnoughNodes)
}

func TestNewQuizDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(rand.NewSource(7))
	nodes := testNodes(6)
	original := make([]domain.Node, len(nodes))
	copy(original, nodes)

	_, err := gen.NewQuiz(nodes)
	require.NoError(t, err)
	assert.Equal(t, original, nodes)
}

func TestQuizIsCorrect(t *testing.T) {
	t.Parallel()

	quiz := Quiz{TargetCode: "NA-SC-SG-GEN-N1-001"}
	assert.True(t, quiz.IsCorrect("NA-SC-SG-GEN-N1-001"))
	assert.False(t, quiz.IsCorrect("NA-SC-SG-GEN-N2-002"))
	assert.False(t, quiz.IsCorrect(""))
}

func TestNewMatching(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(rand.NewSource(42))
	nodes := testNodes(8)

	board, err := gen.NewMatching(nodes)
	require.NoError(t, err)

	require.Len(t, board.Names, 5)
	require.Len(t, board.Functions, 5)

	// Both columns carry the same structures, each exactly once.
	nameCodes := make(map[string]bool)
	for _, item := range board.Names {
		nameCodes[item.Code] = true
	}
	require.Len(t, nameCodes, 5)
	for _, item := range board.Functions {
		assert.True(t, nameCodes[item.Code], "function entry %s has no name entry", item.Code)
	}

	// Every function entry matches its own name entry and no other.
	for _, name := range board.Names {
		for _, fn := range board.Functions {
			assert.Equal(t, name.Code == fn.Code, board.IsMatch(name.Code, fn.Code))
		}
	}
}

func TestNewMatchingNotEnoughNodes(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(rand.NewSource(1))
	_, err := gen.NewMatching(testNodes(4))
	assert.ErrorIs(t, err, ErrNotEnoughNodes)
}

func TestNewMatchingEmptyFunctions(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(rand.NewSource(3))
	nodes := testNodes(5)
	nodes[2].Functions = nil

	board, err := gen.NewMatching(nodes)
	require.NoError(t, err)

	var found bool
	for _, fn := range board.Functions {
		if fn.Code == nodes[2].Code {
			found = true
			assert.Empty(t, fn.Text)
		}
	}
	assert.True(t, found)
}

func TestOutcomeFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.DifficultyEasy, OutcomeFor(true))
	assert.Equal(t, domain.DifficultyHard, OutcomeFor(false))
}
