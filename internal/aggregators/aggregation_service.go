package aggregators

import (
	"context"
	"errors"
	"time"

	"one-billion-row/internal/models"
	"one-billion-row/internal/parsers"
	"one-billion-row/internal/planners"
	"one-billion-row/internal/shared/loggers"
	"one-billion-row/internal/shared/metrics"
	"one-billion-row/internal/shared/svcerrors"
	"one-billion-row/internal/sources"
	"one-billion-row/internal/workers"
)

//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	// Aggregate plans chunks over source, runs one worker per chunk and folds
	// their tables as they finish. Any failure fails the whole run.
	Aggregate(ctx context.Context, source sources.ByteSource, workerCount int) (*models.AggregateResult, *svcerrors.ServiceError)
}

type aggregationService struct {
	planner  planners.ChunkPlanner
	pool     workers.Pool
	rolluper TableRolluper
}

func NewAggregationService(planner planners.ChunkPlanner, pool workers.Pool, rolluper TableRolluper) AggregationService {
	return &aggregationService{planner: planner, pool: pool, rolluper: rolluper}
}

func (s *aggregationService) Aggregate(ctx context.Context, source sources.ByteSource, workerCount int) (*models.AggregateResult, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)
	start := time.Now()

	chunks, err := s.planner.Plan(source.Bytes(), workerCount)
	if err != nil {
		return nil, s.fail(err)
	}
	logger.Debug().
		Str(loggers.FieldSource, source.Name()).
		Int(loggers.FieldWorkers, workerCount).
		Int(loggers.FieldChunks, len(chunks)).
		Msg("chunks planned")

	merged := models.NewAggregateTable(0)
	err = s.pool.Run(ctx, source, chunks, func(partial *models.AggregateTable) {
		s.rolluper.Rollup(merged, partial)
	})
	if err != nil {
		return nil, s.fail(err)
	}

	var records uint64
	for _, m := range merged.All() {
		records += m.Count
	}

	elapsed := time.Since(start)
	metricAggregationTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricAggregationDurationSeconds.WithLabelValues().Observe(elapsed.Seconds())
	metricKeysAggregated.WithLabelValues().Observe(float64(merged.Len()))
	logger.Info().
		Int(loggers.FieldChunks, len(chunks)).
		Uint64(loggers.FieldRecords, records).
		Int(loggers.FieldKeys, merged.Len()).
		Dur(loggers.FieldDuration, elapsed).
		Msg("aggregation finished")

	return &models.AggregateResult{
		Table:   merged,
		Workers: workerCount,
		Chunks:  chunks,
		Records: records,
	}, nil
}

func (s *aggregationService) fail(err error) *svcerrors.ServiceError {
	svcErr := toServiceError(err)
	metricAggregationTotal.WithLabelValues(svcErr.Code).Inc()
	return svcErr
}

func toServiceError(err error) *svcerrors.ServiceError {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr
	}
	switch {
	case errors.Is(err, planners.ErrNoRecordTerminator):
		return errMalformedInput(err)
	case errors.Is(err, parsers.ErrMalformedRecord):
		return errMalformedRecord(err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return errInternalAggregationAborted(err)
	default:
		return errInternalWorkerFailed(err)
	}
}
