package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurorad/neurograph/internal/domain"
	"github.com/neurorad/neurograph/internal/platform/memory"
)

func TestImportCatalogMalformedJSON(t *testing.T) {
	t.Parallel()

	graph := memory.NewGraph(nil)
	im := New(graph, nil)

	_, err := im.ImportCatalog([]byte(`{"not": "an array"`))
	assert.ErrorIs(t, err, ErrMalformedCatalog)
	assert.Zero(t, graph.NodeCount(), "a failed import must store nothing")
}

func TestImportCerebellarRecord(t *testing.T) {
	t.Parallel()

	graph := memory.NewGraph(nil)
	im := New(graph, nil)

	nodes, err := im.ImportCatalog([]byte(`[
		{
			"id_code": "CB-VERM-LING",
			"nombre_espanol": "Língula",
			"nombre_latin": "Lingula cerebelli",
			"descripcion": "Porción más anterior del vermis.",
			"funcion": "Coordinación del movimiento ocular. Integración vestibular.",
			"referencia": "Atlas 4ed"
		}
	]`))
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	node := nodes[0]
	assert.Equal(t, "NA-SC-CRB-VERM-VERM-LING-001", node.Code)
	assert.Equal(t, domain.SystemCentral, node.System())
	assert.Equal(t, "CRB", node.Category())
	assert.Equal(t, "VERM", node.Region())
	assert.Equal(t, "CRBM", node.Classification)
	assert.Equal(t, "CB-VERM-LING", node.RawID)
	assert.Equal(t, []string{
		"Coordinación del movimiento ocular",
		"Integración vestibular.",
	}, node.Functions)

	// The node is stored as it is produced, not batched.
	stored, err := graph.NodeByCode(node.Code)
	require.NoError(t, err)
	assert.Equal(t, node, stored)
}

func TestClassificationHeuristics(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		rawID          string
		code           string
		classification string
	}{
		{
			name:           "cortical gyrus",
			rawID:          "GYR-PRE-CEN",
			code:           "NA-SC-SG-PRE-PRE-CEN-001",
			classification: "CORT",
		},
		{
			name:           "artery",
			rawID:          "ART-BAS",
			code:           "NA-SV-AR-BAS-BAS-001",
			classification: "ANAT",
		},
		{
			name:           "ventricle category despite venous system prefix",
			rawID:          "VEN-LAT",
			code:           "NA-SV-VT-LAT-LAT-001",
			classification: "VENT",
		},
		{
			name:           "cistern",
			rawID:          "CIS-MAG",
			code:           "NA-SE-CIS-MAG-MAG-001",
			classification: "ANAT",
		},
		{
			name:           "unknown prefix falls back to defaults",
			rawID:          "XYZ",
			code:           "NA-SC-SG-GEN-XYZ-001",
			classification: "ANAT",
		},
		{
			name:           "floccular marker without table entry",
			rawID:          "FLOC-NOD",
			code:           "NA-SC-CRB-NOD-NOD-001",
			classification: "CRBM",
		},
		{
			name:           "bare sulcus prefix keeps sulcus region",
			rawID:          "SUL",
			code:           "NA-SC-SF-SUL-SUL-001",
			classification: "SULC",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			graph := memory.NewGraph(nil)
			im := New(graph, nil)

			nodes, err := im.ImportCatalog([]byte(
				`[{"id_code": "` + tc.rawID + `", "nombre_espanol": "Prueba"}]`))
			require.NoError(t, err)
			require.Len(t, nodes, 1)

			node := nodes[0]
			assert.Equal(t, tc.code, node.Code)
			assert.Equal(t, tc.classification, node.Classification)
		})
	}
}

func TestImportSkipsUnusableRecords(t *testing.T) {
	t.Parallel()

	graph := memory.NewGraph(nil)
	im := New(graph, nil)

	nodes, err := im.ImportCatalog([]byte(`[
		{"id_code": "", "nombre_espanol": "Sin identificador"},
		{"id_code": "CTX-MOT", "nombre_espanol": ""},
		{"id_code": "CTX-MOT", "nombre_espanol": "Corteza motora"}
	]`))
	require.NoError(t, err)
	assert.Len(t, nodes, 1)
	assert.Equal(t, 1, graph.NodeCount())
}

func TestSplitFunctionsFallback(t *testing.T) {
	t.Parallel()

	// No sentence delimiter: the raw text survives as a single entry.
	assert.Equal(t, []string{"texto sin delimitador"}, splitFunctions("texto sin delimitador"))

	// Only delimiters: fall back to the original text unmodified.
	assert.Equal(t, []string{". . "}, splitFunctions(". . "))

	// Regular sentences are trimmed and empties dropped.
	assert.Equal(t,
		[]string{"Primera función", "Segunda función."},
		splitFunctions("Primera función. Segunda función."))
}

func TestImportOverwriteSemantics(t *testing.T) {
	t.Parallel()

	graph := memory.NewGraph(nil)
	im := New(graph, nil)

	// Two records resolving to the same hierarchy key get distinct sequence
	// numbers, so both survive.
	nodes, err := im.ImportCatalog([]byte(`[
		{"id_code": "CTX-MOT", "nombre_espanol": "Primera"},
		{"id_code": "CTX-MOT", "nombre_espanol": "Segunda"}
	]`))
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "NA-SC-SG-MOT-MOT-001", nodes[0].Code)
	assert.Equal(t, "NA-SC-SG-MOT-MOT-002", nodes[1].Code)
	assert.Equal(t, 2, graph.NodeCount())
}
