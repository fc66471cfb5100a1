// Package snapshot persists the knowledge graph as a single pretty-printed
// JSON document ({"nodos": [...], "relaciones": [...]}), byte-compatible
// with the legacy cache format. Writes go through a temporary file and a
// rename so a failed save never leaves a partial snapshot behind. The
// filesystem is abstracted behind afero so tests run against an in-memory
// filesystem.
package snapshot
