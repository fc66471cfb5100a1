package importer

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/neurorad/neurograph/internal/domain"
	"github.com/neurorad/neurograph/internal/store"
)

// ErrMalformedCatalog is returned when the seed catalog is not well-formed
// JSON. The import fails atomically; no node is stored.
var ErrMalformedCatalog = fmt.Errorf("malformed catalog: %w", domain.ErrValidation)

// functionDelimiter splits the free-text function field into sentences.
const functionDelimiter = ". "

// RawRecord is one entry of the external seed catalog. The JSON tags are the
// fixed wire contract of the seed file.
type RawRecord struct {
	RawID        string `json:"id_code"        validate:"required"`
	NameLocal    string `json:"nombre_espanol" validate:"required"`
	NameLatin    string `json:"nombre_latin"`
	Description  string `json:"descripcion"`
	FunctionText string `json:"funcion"`
	Reference    string `json:"referencia"`
}

// Importer converts raw catalog records into nodes stored in the graph.
type Importer struct {
	graph    store.GraphStore
	validate *validator.Validate
	logger   *slog.Logger
}

// New creates an Importer writing into the given graph store.
func New(graph store.GraphStore, logger *slog.Logger) *Importer {
	if graph == nil {
		panic("graph cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{
		graph:    graph,
		validate: validator.New(),
		logger:   logger.With(slog.String("component", "importer")),
	}
}

// ImportCatalog decodes the seed catalog and stores one node per record.
//
// Malformed JSON fails the whole import with ErrMalformedCatalog and stores
// nothing. Individual records never fail conversion: unknown prefixes fall
// back to default classifications. Records missing their identifier or name
// are skipped and counted, since no meaningful node can be built from them.
// Nodes are inserted as they are produced; records whose generated code
// collides with an earlier one overwrite it (map semantics).
func (im *Importer) ImportCatalog(data []byte) ([]domain.Node, error) {
	var records []RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
	}

	nodes := make([]domain.Node, 0, len(records))
	skipped := 0
	for _, record := range records {
		if err := im.validate.Struct(record); err != nil {
			skipped++
			im.logger.Warn("skipping unusable catalog record",
				slog.String("id_code", record.RawID),
				slog.String("reason", err.Error()))
			continue
		}
		nodes = append(nodes, im.convert(record))
	}

	im.logger.Info("catalog imported",
		slog.Int("imported", len(nodes)),
		slog.Int("skipped", skipped))
	return nodes, nil
}

// convert builds a node from a raw record, inferring its place in the code
// hierarchy, and stores it in the graph.
func (im *Importer) convert(record RawRecord) domain.Node {
	segments := strings.Split(record.RawID, "-")
	prefix := segments[0]

	system := resolveSystem(prefix, record.RawID)
	category := resolveCategory(prefix, record.RawID)

	return im.graph.CreateNode(store.NodeSpec{
		System:         domain.System(system),
		Category:       category,
		Region:         resolveRegion(segments, record.RawID),
		Entity:         resolveEntity(segments, record.RawID),
		RawID:          record.RawID,
		Classification: resolveClassification(prefix, record.RawID),
		NameLocal:      record.NameLocal,
		NameLatin:      record.NameLatin,
		Description:    record.Description,
		Functions:      splitFunctions(record.FunctionText),
		Reference:      record.Reference,
	})
}

// resolveSystem determines the neurological system from the identifier
// prefix, with cerebellar and ventricular fallbacks.
func resolveSystem(prefix, rawID string) string {
	if system, ok := systemByPrefix[prefix]; ok {
		return system
	}
	if containsAnyMarker(rawID, cerebellarMarkers) {
		return "SC"
	}
	if strings.HasPrefix(rawID, "VEN-") {
		// Ventricles live in the central system even though the VEN prefix
		// otherwise reads as venous.
		return "SC"
	}
	return defaultSystem
}

// resolveCategory determines the anatomical category from the identifier
// prefix, with ventricular and cerebellar fallbacks.
func resolveCategory(prefix, rawID string) string {
	if category, ok := categoryByPrefix[prefix]; ok {
		return category
	}
	if strings.HasPrefix(rawID, "VEN-") {
		return "VT"
	}
	if containsAnyMarker(rawID, cerebellarMarkers) || strings.Contains(rawID, "CB-") {
		return "CRB"
	}
	return defaultCategory
}

// resolveRegion determines the anatomical region: the identifier's second
// segment when present, otherwise a prefix-based default.
func resolveRegion(segments []string, rawID string) string {
	if len(segments) > 1 {
		return segments[1]
	}

	for _, prefix := range []string{"GYR", "SUL", "LOB"} {
		if strings.HasPrefix(rawID, prefix) {
			return prefix
		}
	}
	return defaultRegion
}

// resolveEntity determines the specific entity name: all segments after the
// first when there are at least three, the second segment when there are
// exactly two, otherwise the whole identifier.
func resolveEntity(segments []string, rawID string) string {
	if len(segments) > 2 {
		return strings.Join(segments[1:], "-")
	}
	if len(segments) > 1 {
		return segments[1]
	}
	return rawID
}

// resolveClassification determines the 4-letter classification tag from the
// identifier prefix, with the cerebellar fallback.
func resolveClassification(prefix, rawID string) string {
	if classification, ok := classificationByPrefix[prefix]; ok {
		return classification
	}
	if containsAnyMarker(rawID, cerebellarMarkers) || strings.Contains(rawID, "CB-") {
		return "CRBM"
	}
	return defaultClassification
}

// splitFunctions splits the free-text function field on sentence boundaries,
// trims whitespace, and drops empty results. When splitting yields nothing,
// the raw text is kept as a single entry so no information is lost.
func splitFunctions(text string) []string {
	parts := strings.Split(text, functionDelimiter)

	functions := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			functions = append(functions, trimmed)
		}
	}
	if len(functions) == 0 {
		return []string{text}
	}
	return functions
}

// containsAnyMarker reports whether the identifier contains any of the given
// substrings.
func containsAnyMarker(rawID string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(rawID, marker) {
			return true
		}
	}
	return false
}
