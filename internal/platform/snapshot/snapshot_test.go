package snapshot

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurorad/neurograph/internal/domain"
	"github.com/neurorad/neurograph/internal/store"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	s := NewFileStore(fs, "/data", "neurodata_cache", nil)

	nodes := []domain.Node{
		{
			Code:           "NA-SC-SG-CTX-Motor-001",
			RawID:          "CTX-MOT",
			Classification: "CORT",
			NameLocal:      "Corteza motora",
			NameLatin:      "Cortex motorius",
			Description:    "Controla el movimiento voluntario",
			Functions:      []string{"Movimiento voluntario"},
			Reference:      "Atlas 4ed",
		},
	}
	relations := []domain.Relation{
		{
			Code:       "RE-IRRIGA-A-B-001",
			Type:       domain.RelationIrrigates,
			OriginCode: "A",
			DestCode:   "B",
		},
	}

	require.NoError(t, s.Save(context.Background(), nodes, relations))
	assert.Equal(t, "/data/neurodata_cache.json", s.Path())

	gotNodes, gotRelations, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, nodes, gotNodes)
	assert.Equal(t, relations, gotRelations)
}

// TestLegacyFieldNames pins the external wire contract: snapshots must stay
// loadable by (and from) caches written with the original field names.
func TestLegacyFieldNames(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	s := NewFileStore(fs, "/data", "neurodata_cache", nil)

	require.NoError(t, s.Save(context.Background(),
		[]domain.Node{{Code: "NA-SC-SG-CTX-Motor-001", NameLocal: "Corteza", ImageReference: "motor.png"}},
		[]domain.Relation{{Code: "RE-IRRIGA-A-B-001", Type: domain.RelationIrrigates, OriginCode: "A", DestCode: "B"}},
	))

	raw, err := afero.ReadFile(fs, s.Path())
	require.NoError(t, err)

	var doc map[string][]map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	require.Len(t, doc["nodos"], 1)
	node := doc["nodos"][0]
	for _, field := range []string{
		"codigo", "idCode", "clasificacion", "nombreEspanol", "nombreLatin",
		"descripcion", "funciones", "referencia", "imagenReferencia",
	} {
		assert.Contains(t, node, field)
	}

	require.Len(t, doc["relaciones"], 1)
	relation := doc["relaciones"][0]
	for _, field := range []string{"codigo", "tipo", "idOrigen", "idDestino"} {
		assert.Contains(t, relation, field)
	}
	assert.Equal(t, "IRRIGA", relation["tipo"])
}

func TestLoadMissingSnapshot(t *testing.T) {
	t.Parallel()

	s := NewFileStore(afero.NewMemMapFs(), "/data", "neurodata_cache", nil)

	_, _, err := s.Load(context.Background())
	assert.ErrorIs(t, err, store.ErrSnapshotNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestLoadCorruptSnapshot(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	s := NewFileStore(fs, "/data", "neurodata_cache", nil)
	require.NoError(t, afero.WriteFile(fs, s.Path(), []byte("{not json"), 0o644))

	_, _, err := s.Load(context.Background())
	assert.ErrorIs(t, err, store.ErrSnapshotCorrupt)
}

func TestSaveOnReadOnlyFilesystem(t *testing.T) {
	t.Parallel()

	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	s := NewFileStore(fs, "/data", "neurodata_cache", nil)

	err := s.Save(context.Background(), nil, nil)
	assert.ErrorIs(t, err, store.ErrSnapshotWrite)
}
