package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/neurorad/neurograph/internal/domain"
	"github.com/neurorad/neurograph/internal/store"
)

// Verify interface compliance at compile time
var _ store.SnapshotStore = (*FileStore)(nil)

// document is the on-disk shape of a snapshot. Field names are the legacy
// wire contract and must not change.
type document struct {
	Nodes     []domain.Node     `json:"nodos"`
	Relations []domain.Relation `json:"relaciones"`
}

// FileStore reads and writes graph snapshots under a directory on the given
// filesystem.
type FileStore struct {
	fs     afero.Fs
	dir    string
	name   string
	logger *slog.Logger
}

// NewFileStore creates a snapshot store writing <dir>/<name>.json on fs.
func NewFileStore(fs afero.Fs, dir, name string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore{
		fs:     fs,
		dir:    dir,
		name:   name,
		logger: logger.With(slog.String("component", "snapshot_store")),
	}
}

// Path returns the snapshot's full file path.
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, s.name+".json")
}

// Save writes the graph as pretty-printed JSON. The document is written to a
// temporary file first and renamed into place, so an interrupted or failed
// save leaves any previous snapshot untouched.
func (s *FileStore) Save(ctx context.Context, nodes []domain.Node, relations []domain.Relation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(document{Nodes: nodes, Relations: relations}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrSnapshotWrite, err)
	}

	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", store.ErrSnapshotWrite, err)
	}

	tmp := s.Path() + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", store.ErrSnapshotWrite, err)
	}
	if err := s.fs.Rename(tmp, s.Path()); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("%w: %v", store.ErrSnapshotWrite, err)
	}

	s.logger.Info("snapshot saved",
		slog.String("path", s.Path()),
		slog.Int("nodes", len(nodes)),
		slog.Int("relations", len(relations)))
	return nil
}

// Load reads the persisted snapshot. It mutates nothing: callers swap their
// in-memory state only after a successful decode.
func (s *FileStore) Load(ctx context.Context) ([]domain.Node, []domain.Relation, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	data, err := afero.ReadFile(s.fs, s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", store.ErrSnapshotNotFound, s.Path())
		}
		return nil, nil, fmt.Errorf("%w: %v", store.ErrSnapshotNotFound, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", store.ErrSnapshotCorrupt, err)
	}

	s.logger.Info("snapshot loaded",
		slog.String("path", s.Path()),
		slog.Int("nodes", len(doc.Nodes)),
		slog.Int("relations", len(doc.Relations)))
	return doc.Nodes, doc.Relations, nil
}
