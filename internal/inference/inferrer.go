package inference

import (
	"log/slog"
	"strings"

	"github.com/neurorad/neurograph/internal/domain"
	"github.com/neurorad/neurograph/internal/store"
)

// autoDescription marks relations produced by inference rather than by hand.
const autoDescription = "Relación detectada automáticamente"

// Inferrer scans stored nodes' text for mentions of other nodes and creates
// typed relations in the graph.
type Inferrer struct {
	graph      store.GraphStore
	classifier Classifier
	logger     *slog.Logger
}

// NewInferrer creates an Inferrer using the given classifier.
func NewInferrer(graph store.GraphStore, classifier Classifier, logger *slog.Logger) *Inferrer {
	if graph == nil {
		panic("graph cannot be nil")
	}
	if classifier == nil {
		panic("classifier cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Inferrer{
		graph:      graph,
		classifier: classifier,
		logger:     logger.With(slog.String("component", "relation_inferrer")),
	}
}

// InferRelations visits every ordered pair of distinct nodes and creates one
// relation per pair whose origin text mentions the candidate's local or
// Latin name, case-insensitive. Returns the number of relations created.
func (inf *Inferrer) InferRelations() int {
	nodes := inf.graph.Nodes()

	created := 0
	for _, origin := range nodes {
		haystack := strings.ToLower(origin.Description + " " + strings.Join(origin.Functions, " "))

		for _, candidate := range nodes {
			if origin.Code == candidate.Code {
				continue
			}

			nameLocal := strings.ToLower(candidate.NameLocal)
			nameLatin := strings.ToLower(candidate.NameLatin)

			// An empty name would substring-match everything.
			mentioned := (nameLocal != "" && strings.Contains(haystack, nameLocal)) ||
				(nameLatin != "" && strings.Contains(haystack, nameLatin))
			if !mentioned {
				continue
			}

			relType := inf.classifier.Classify(haystack, nameLocal)
			inf.graph.CreateRelation(relType, origin.Code, candidate.Code, autoDescription)
			created++
		}
	}

	inf.logger.Info("relation inference finished",
		slog.Int("nodes", len(nodes)),
		slog.Int("relations_created", created))
	return created
}

// relationTypePriority documents the tie-break order for reference by
// tests; it mirrors typeKeywords plus the associate fallback.
var relationTypePriority = []domain.RelationType{
	domain.RelationIrrigates,
	domain.RelationDrains,
	domain.RelationConnects,
	domain.RelationInnervates,
	domain.RelationBorders,
	domain.RelationAssociates,
}
