package inference

import (
	"strings"

	"github.com/neurorad/neurograph/internal/domain"
)

// Classifier decides which relation type a name mention in a haystack text
// represents. Implementations receive the full lowercased haystack and the
// mentioned node's local name, also lowercased.
type Classifier interface {
	Classify(haystack, mentionedName string) domain.RelationType
}

// typeKeywords pairs each relation type with its trigger keywords, in
// tie-break priority order: the first type with an adjacent keyword match
// wins. The lists carry the Spanish terms of the seed catalog plus their
// English equivalents.
var typeKeywords = []struct {
	relType  domain.RelationType
	keywords []string
}{
	{domain.RelationIrrigates, []string{
		"irriga", "irrigada", "irrigación", "vasculariza", "suministra sangre",
		"irrigates", "irrigated", "irrigation", "vascularizes", "supplies blood",
	}},
	{domain.RelationDrains, []string{
		"drena", "drenaje", "recibe sangre",
		"drains", "drainage", "receives blood",
	}},
	{domain.RelationConnects, []string{
		"conecta", "conexión", "unido", "une", "comunica",
		"connects", "connection", "joined", "unites", "communicates",
	}},
	{domain.RelationInnervates, []string{
		"inerva", "inervación", "nervio",
		"innervates", "innervation", "nerve",
	}},
	{domain.RelationBorders, []string{
		"limita", "límite", "borde", "separa", "adyacente",
		"borders", "boundary", "edge", "separates", "adjacent",
	}},
}

// stopWords are the articles and contractions tolerated between a keyword
// and the mentioned name, so "irriga el tálamo" still reads as an
// irrigation of the thalamus.
var stopWords = []string{"el", "la", "los", "las", "un", "una", "al", "del"}

// KeywordClassifier implements Classifier with the fixed keyword-adjacency
// heuristic: a keyword counts only when it appears immediately before or
// after the mentioned name, optionally separated by a single article.
type KeywordClassifier struct{}

// Verify interface compliance at compile time
var _ Classifier = KeywordClassifier{}

// Classify returns the first relation type whose keywords appear adjacent
// to the mentioned name, or RelationAssociates when none do.
func (KeywordClassifier) Classify(haystack, mentionedName string) domain.RelationType {
	for _, entry := range typeKeywords {
		for _, keyword := range entry.keywords {
			if adjacent(haystack, keyword, mentionedName) {
				return entry.relType
			}
		}
	}
	return domain.RelationAssociates
}

// adjacent reports whether keyword and name appear next to each other in
// the text, in either order, allowing one stop word in between when the
// keyword comes first.
func adjacent(text, keyword, name string) bool {
	if strings.Contains(text, keyword+" "+name) || strings.Contains(text, name+" "+keyword) {
		return true
	}
	for _, stop := range stopWords {
		if strings.Contains(text, keyword+" "+stop+" "+name) {
			return true
		}
	}
	return false
}
