package app

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"one-billion-row/internal/aggregators"
	"one-billion-row/internal/models"
	"one-billion-row/internal/parsers"
	"one-billion-row/internal/planners"
	"one-billion-row/internal/renderers"
	"one-billion-row/internal/shared/configs"
	"one-billion-row/internal/shared/filestorages"
	"one-billion-row/internal/shared/loggers"
	"one-billion-row/internal/shared/metrics"
	"one-billion-row/internal/shared/svcerrors"
	"one-billion-row/internal/shared/ulid"
	"one-billion-row/internal/sources"
	"one-billion-row/internal/stores"
	"one-billion-row/internal/workers"
)

// App holds all application dependencies for one aggregation run.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	out       io.Writer
	workers   int

	loader             sources.Loader
	aggregationService aggregators.AggregationService
	renderer           renderers.SummaryRenderer
	summaryStore       stores.SummaryStore // nil unless output.dir is set
}

// New wires the application. The summary line goes to out, logs to logOut.
func New(config *configs.Config, out io.Writer, logOut io.Writer) (*App, error) {
	appLogger, err := loggers.NewWithWriter(config.Log.Level, logOut)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger = appLogger.With().
		Str(loggers.FieldApp, "aggregator").
		Logger()

	// Initialize source loader
	loader := sources.NewLoader(config.Input.Mode, config.Input.Compression)

	// Initialize aggregation service
	lineParser := parsers.NewLineParser(config.Aggregation.MaxKeyBytes)
	pool := workers.NewPool(workers.NewChunkWorker(lineParser))
	chunkPlanner := planners.NewChunkPlanner(config.Aggregation.PageAlign)
	aggregationService := aggregators.NewAggregationService(chunkPlanner, pool, aggregators.NewTableRolluper())

	// Initialize summary store
	var summaryStore stores.SummaryStore
	if config.Output.Dir != "" {
		fileStorage, err := filestorages.NewFileStorage(config.Output.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		summaryStore = stores.NewSummaryStore(fileStorage)
	}

	return &App{
		config:             config,
		appLogger:          appLogger,
		out:                out,
		workers:            resolveWorkers(config.Aggregation.Workers),
		loader:             loader,
		aggregationService: aggregationService,
		renderer:           renderers.NewSummaryRenderer(),
		summaryStore:       summaryStore,
	}, nil
}

// resolveWorkers turns the configured worker count into a concrete one; 0 means
// one per CPU this process may run on (affinity and GOMAXPROCS respected).
func resolveWorkers(configured int) int {
	if configured > 0 {
		return configured
	}
	return runtime.GOMAXPROCS(0)
}

// Run aggregates the configured input and writes the summary line followed by
// a blank line. On failure nothing is written to out and the returned error is
// a *svcerrors.ServiceError.
func (app *App) Run(ctx context.Context) error {
	runID := ulid.NewRunID()
	logger := app.appLogger.With().Str(loggers.FieldRunID, runID).Logger()
	ctx = logger.WithContext(ctx)
	start := time.Now()

	logger.Info().
		Str(loggers.FieldSource, app.config.Input.Path).
		Int(loggers.FieldWorkers, app.workers).
		Msgf("starting aggregation (mode=%s, compression=%s)", app.config.Input.Mode, app.config.Input.Compression)

	source, err := app.loader.Load(ctx, app.config.Input.Path)
	if err != nil {
		return app.fail(ctx, err)
	}
	defer func() {
		if err := source.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to release source")
		}
	}()

	result, svcErr := app.aggregationService.Aggregate(ctx, source, app.workers)
	if svcErr != nil {
		return app.fail(ctx, svcErr)
	}

	rows, svcErr := app.renderer.Rows(result.Table)
	if svcErr != nil {
		return app.fail(ctx, svcErr)
	}
	text := app.renderer.Join(rows)

	// persist before printing so that a failed run never prints a summary
	if app.summaryStore != nil {
		summary := &models.Summary{
			RunID:       runID,
			Source:      source.Name(),
			GeneratedAt: time.Now().UTC(),
			Workers:     result.Workers,
			Chunks:      len(result.Chunks),
			Records:     result.Records,
			Text:        text,
			Rows:        rows,
		}
		if err := app.summaryStore.Save(ctx, summary); err != nil {
			return app.fail(ctx, errInternalSummaryStoreFailed(err))
		}
	}

	if path := app.config.Metrics.TextfilePath; path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			logger.Warn().Err(err).Msgf("failed to write metrics to %s", path)
		}
	}

	if _, err := fmt.Fprintf(app.out, "%s\n\n", text); err != nil {
		return app.fail(ctx, errInternalOutputFailed(err))
	}

	logger.Info().
		Uint64(loggers.FieldRecords, result.Records).
		Int(loggers.FieldKeys, len(rows)).
		Dur(loggers.FieldDuration, time.Since(start)).
		Msg("aggregation completed")
	return nil
}

func (app *App) fail(ctx context.Context, err error) *svcerrors.ServiceError {
	svcErr, ok := svcerrors.AsServiceError(err)
	if !ok {
		svcErr = svcerrors.NewInternalErrorUndefined(err)
	}
	loggers.Ctx(ctx).Error().
		Str(loggers.FieldErrorCode, svcErr.Code).
		Err(svcErr.Cause).
		Msg(svcErr.Message)
	return svcErr
}
