package workers

import (
	"context"
	"fmt"
	"runtime/debug"

	"one-billion-row/internal/models"
	"one-billion-row/internal/shared/loggers"
	"one-billion-row/internal/shared/svcerrors"
	"one-billion-row/internal/sources"

	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=pool.go -destination=./mocks/pool_mock.go -package=mocks
type Pool interface {
	// Run processes every chunk on its own goroutine. fold receives each
	// finished table on the calling goroutine, in completion order, and is
	// the table's only owner from then on. The first failure cancels the
	// remaining workers and is returned; a panicking worker fails the run
	// with a SYS_9000 *svcerrors.ServiceError.
	Run(ctx context.Context, source sources.ByteSource, chunks []models.Chunk, fold func(*models.AggregateTable)) error
}

type pool struct {
	worker ChunkWorker
}

func NewPool(worker ChunkWorker) Pool {
	return &pool{
		worker: worker,
	}
}

func (p *pool) Run(ctx context.Context, source sources.ByteSource, chunks []models.Chunk, fold func(*models.AggregateTable)) error {
	eg, egCtx := errgroup.WithContext(ctx)
	// buffered so that a finished worker never waits for the fold
	results := make(chan *models.AggregateTable, len(chunks))

	for i, chunk := range chunks {
		eg.Go(func() (err error) {
			logger := loggers.Ctx(egCtx).With().Int(loggers.FieldWorkerID, i).Logger()
			defer func() {
				if r := recover(); r != nil {
					logger.Error().
						Bytes(loggers.FieldErrorStack, debug.Stack()).
						Msgf("worker panic recovered: %v", r)
					metricChunksProcessedTotal.WithLabelValues(valuePanic).Inc()

					panicErr, ok := r.(error)
					if !ok {
						panicErr = fmt.Errorf("%v", r)
					}
					err = svcerrors.NewInternalErrorPanic(fmt.Errorf("worker %d: %w", i, panicErr))
				}
			}()

			table, err := p.worker.Process(logger.WithContext(egCtx), source, chunk)
			if err != nil {
				return err
			}
			results <- table
			return nil
		})
	}

	received := 0
receive:
	for received < len(chunks) {
		select {
		case table := <-results:
			fold(table)
			received++
		case <-egCtx.Done():
			break receive
		}
	}

	if err := eg.Wait(); err != nil {
		return err
	}
	// every worker succeeded, so the rest are already buffered
	for ; received < len(chunks); received++ {
		fold(<-results)
	}
	return nil
}
