package main

import (
	"context"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/neurorad/neurograph/internal/config"
	"github.com/neurorad/neurograph/internal/domain/srs"
	"github.com/neurorad/neurograph/internal/events"
	"github.com/neurorad/neurograph/internal/importer"
	"github.com/neurorad/neurograph/internal/inference"
	"github.com/neurorad/neurograph/internal/platform/memory"
	"github.com/neurorad/neurograph/internal/platform/snapshot"
	"github.com/neurorad/neurograph/internal/service"
)

// application holds the wired component graph.
type application struct {
	cfg     *config.Config
	logger  *slog.Logger
	fs      afero.Fs
	catalog *service.CatalogService
	study   *service.StudyService
}

// newApplication wires every component against the OS filesystem.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	fs := afero.NewOsFs()
	graph := memory.NewGraph(logger)
	snapshots := snapshot.NewFileStore(fs, cfg.Storage.Dir, cfg.Storage.CacheName, logger)
	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(&changeLogger{logger: logger})

	catalog := service.NewCatalogService(
		graph,
		snapshots,
		importer.New(graph, logger),
		inference.NewInferrer(graph, inference.KeywordClassifier{}, logger),
		emitter,
		logger,
	)
	study := service.NewStudyService(
		graph,
		srs.NewScheduler(srs.NewDefaultParams(), logger),
		emitter,
		logger,
	)

	return &application{
		cfg:     cfg,
		logger:  logger,
		fs:      fs,
		catalog: catalog,
		study:   study,
	}
}

// Run executes the startup contract and reports the resulting catalog
// state.
func (a *application) Run(ctx context.Context) error {
	seed := func(context.Context) ([]byte, error) {
		return afero.ReadFile(a.fs, a.cfg.Catalog.SeedPath)
	}

	if err := a.catalog.Bootstrap(ctx, seed); err != nil {
		return err
	}

	a.logger.Info("catalog ready",
		slog.Int("nodes", a.catalog.NodeCount()),
		slog.Int("relations", a.catalog.RelationCount()),
		slog.Int("due_for_review", len(a.study.DueForReview())))
	return nil
}

// changeLogger logs every change event at debug level.
type changeLogger struct {
	logger *slog.Logger
}

func (h *changeLogger) HandleEvent(_ context.Context, event *events.ChangeEvent) error {
	h.logger.Debug("state changed",
		slog.String("event_type", string(event.Type)),
		slog.String("event_id", event.ID.String()))
	return nil
}
