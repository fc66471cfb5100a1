package exercise

import (
	"fmt"

	"github.com/neurorad/neurograph/internal/domain"
)

// MatchingItem is one entry on a matching board column, tagged with the
// code of the structure it belongs to.
type MatchingItem struct {
	Code string
	Text string
}

// Matching is a name-to-function pairing board: the Names column keeps
// one order, the Functions column is independently shuffled, and the
// solver connects each name to the function of the same structure.
type Matching struct {
	Names     []MatchingItem
	Functions []MatchingItem
}

// NewMatching builds a matching board from five random nodes. Each node
// contributes its local name and its first listed function. It returns
// ErrNotEnoughNodes when fewer than five nodes are available.
func (g *Generator) NewMatching(nodes []domain.Node) (Matching, error) {
	if len(nodes) < matchingPairCount {
		return Matching{}, fmt.Errorf("%w: need %d, have %d", ErrNotEnoughNodes, matchingPairCount, len(nodes))
	}

	pool := make([]domain.Node, len(nodes))
	copy(pool, nodes)
	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	selected := pool[:matchingPairCount]

	names := make([]MatchingItem, matchingPairCount)
	for i, node := range selected {
		names[i] = MatchingItem{Code: node.Code, Text: node.NameLocal}
	}

	functions := make([]MatchingItem, matchingPairCount)
	for i, node := range selected {
		functions[i] = MatchingItem{Code: node.Code, Text: firstFunction(node)}
	}
	g.rng.Shuffle(len(functions), func(i, j int) {
		functions[i], functions[j] = functions[j], functions[i]
	})

	return Matching{Names: names, Functions: functions}, nil
}

// IsMatch reports whether a name entry and a function entry belong to the
// same structure.
func (m Matching) IsMatch(nameCode, functionCode string) bool {
	return nameCode != "" && nameCode == functionCode
}

func firstFunction(node domain.Node) string {
	if len(node.Functions) == 0 {
		return ""
	}
	return node.Functions[0]
}
