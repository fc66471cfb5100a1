package codes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/neurorad/neurograph/internal/domain"
)

const (
	// nodePrefix is the literal first segment of every node code.
	nodePrefix = "NA"

	// relationPrefix is the literal first segment of every relation code.
	relationPrefix = "RE"
)

// NodeComponents holds the decoded parts of a node code.
type NodeComponents struct {
	System   string
	Category string
	Region   string
	Entity   string
	Sequence int
}

// RelationComponents holds the decoded parts of a relation code.
type RelationComponents struct {
	Type       domain.RelationType
	OriginCode string
	DestCode   string
	Sequence   int
}

// Key returns the node-counter key for these components, i.e. the code
// without prefix and sequence.
func (c NodeComponents) Key() string {
	return strings.Join([]string{c.System, c.Category, c.Region, c.Entity}, "-")
}

// Key returns the relation-counter key for these components.
func (c RelationComponents) Key() string {
	return strings.Join([]string{string(c.Type), c.OriginCode, c.DestCode}, "-")
}

// EncodeNode builds a canonical node code from its components. The sequence
// number is zero-padded to three digits.
func EncodeNode(system, category, region, entity string, seq int) string {
	return fmt.Sprintf("%s-%s-%s-%s-%s-%03d", nodePrefix, system, category, region, entity, seq)
}

// ParseNode decodes a node code into its components.
//
// A valid code has at least six dash-separated segments, starts with the
// literal "NA", and carries a non-negative integer in the sixth segment.
// Returns domain.ErrInvalidNodeCode otherwise.
func ParseNode(code string) (NodeComponents, error) {
	parts := strings.Split(code, "-")
	if len(parts) < 6 || parts[0] != nodePrefix {
		return NodeComponents{}, fmt.Errorf("%w: %q", domain.ErrInvalidNodeCode, code)
	}

	seq, err := strconv.Atoi(parts[5])
	if err != nil || seq < 0 {
		return NodeComponents{}, fmt.Errorf("%w: %q has non-numeric sequence", domain.ErrInvalidNodeCode, code)
	}

	return NodeComponents{
		System:   parts[1],
		Category: parts[2],
		Region:   parts[3],
		Entity:   parts[4],
		Sequence: seq,
	}, nil
}

// EncodeRelation builds a canonical relation code from its components.
func EncodeRelation(t domain.RelationType, originCode, destCode string, seq int) string {
	return fmt.Sprintf("%s-%s-%s-%s-%03d", relationPrefix, t, originCode, destCode, seq)
}

// ParseRelation decodes a relation code into its components.
//
// The code must start with "RE-{knownType}-". The remainder is scanned from
// the right: the final segment is the sequence number, the segment before it
// is the destination code, and everything else is the origin code. When an
// endpoint code itself ends in a dashed segment the rightmost scan is the
// only disambiguation rule, so codes whose destination ends in a
// numeric-looking segment decode to different components than they were
// built from. Returns domain.ErrInvalidRelationCode on malformed input.
func ParseRelation(code string) (RelationComponents, error) {
	parts := strings.SplitN(code, "-", 3)
	if len(parts) < 3 || parts[0] != relationPrefix {
		return RelationComponents{}, fmt.Errorf("%w: %q", domain.ErrInvalidRelationCode, code)
	}

	relType := domain.RelationType(parts[1])
	if !relType.IsValid() {
		return RelationComponents{}, fmt.Errorf("%w: unknown type in %q", domain.ErrInvalidRelationCode, code)
	}

	rest := parts[2]

	lastDash := strings.LastIndex(rest, "-")
	if lastDash < 0 {
		return RelationComponents{}, fmt.Errorf("%w: %q", domain.ErrInvalidRelationCode, code)
	}
	seq, err := strconv.Atoi(rest[lastDash+1:])
	if err != nil || seq < 0 {
		return RelationComponents{}, fmt.Errorf("%w: %q has non-numeric sequence", domain.ErrInvalidRelationCode, code)
	}

	ids := rest[:lastDash]
	sep := strings.LastIndex(ids, "-")
	if sep < 0 {
		return RelationComponents{}, fmt.Errorf("%w: %q is missing endpoint codes", domain.ErrInvalidRelationCode, code)
	}

	return RelationComponents{
		Type:       relType,
		OriginCode: ids[:sep],
		DestCode:   ids[sep+1:],
		Sequence:   seq,
	}, nil
}
