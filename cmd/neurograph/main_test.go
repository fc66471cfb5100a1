package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeed = `[
	{
		"id_code": "ART-CER-POS",
		"nombre_espanol": "Arteria cerebral posterior",
		"descripcion": "Irriga el Tálamo.",
		"funcion": "Aporte sanguíneo posterior"
	},
	{
		"id_code": "NUC-TAL",
		"nombre_espanol": "Tálamo",
		"descripcion": "Centro de relevo sensitivo."
	}
]`

func TestInitializeAppAndRun(t *testing.T) {
	dir := t.TempDir()
	seedPath := filepath.Join(dir, "estructuras_anatomicas.json")
	require.NoError(t, os.WriteFile(seedPath, []byte(testSeed), 0o644))

	t.Setenv("NEUROGRAPH_LOGGING_LEVEL", "error")
	t.Setenv("NEUROGRAPH_STORAGE_DIR", dir)
	t.Setenv("NEUROGRAPH_STORAGE_CACHE_NAME", "neurodata_cache")
	t.Setenv("NEUROGRAPH_CATALOG_SEED_PATH", seedPath)

	app, err := initializeApp()
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 2, app.catalog.NodeCount())
	assert.Equal(t, 1, app.catalog.RelationCount())

	// The bootstrap persisted a snapshot for the next run.
	_, err = os.Stat(filepath.Join(dir, "neurodata_cache.json"))
	assert.NoError(t, err)

	// A second run must come up from the snapshot even without the seed.
	require.NoError(t, os.Remove(seedPath))
	second, err := initializeApp()
	require.NoError(t, err)
	require.NoError(t, second.Run(context.Background()))
	assert.Equal(t, 2, second.catalog.NodeCount())
}

func TestInitializeAppInvalidLogLevel(t *testing.T) {
	t.Setenv("NEUROGRAPH_LOGGING_LEVEL", "verbose")

	_, err := initializeApp()
	assert.Error(t, err)
}
