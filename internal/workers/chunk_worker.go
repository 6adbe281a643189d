package workers

import (
	"context"
	"errors"
	"time"

	"one-billion-row/internal/models"
	"one-billion-row/internal/parsers"
	"one-billion-row/internal/shared/loggers"
	"one-billion-row/internal/shared/metrics"
	"one-billion-row/internal/sources"
)

// tableSizeHint covers the usual few hundred distinct keys without growing.
const tableSizeHint = 1024

//go:generate mockgen -source=chunk_worker.go -destination=./mocks/chunk_worker_mock.go -package=mocks
type ChunkWorker interface {
	// Process parses one chunk of source into a table that nothing else references.
	Process(ctx context.Context, source sources.ByteSource, chunk models.Chunk) (*models.AggregateTable, error)
}

type chunkWorker struct {
	parser parsers.LineParser
}

func NewChunkWorker(parser parsers.LineParser) ChunkWorker {
	return &chunkWorker{
		parser: parser,
	}
}

func (w *chunkWorker) Process(ctx context.Context, source sources.ByteSource, chunk models.Chunk) (*models.AggregateTable, error) {
	logger := loggers.Ctx(ctx)
	if err := ctx.Err(); err != nil {
		metricChunksProcessedTotal.WithLabelValues(valueCanceled).Inc()
		return nil, err
	}

	if err := source.Advise(chunk); err != nil {
		logger.Debug().Err(err).Msg("sequential read advice rejected")
	}

	start := time.Now()
	table := models.NewAggregateTable(tableSizeHint)
	records, err := w.parser.Parse(source.Bytes(), chunk, table)
	if err != nil {
		label := valueMalformedRecord
		if !errors.Is(err, parsers.ErrMalformedRecord) {
			label = "parse_failed"
		}
		metricChunksProcessedTotal.WithLabelValues(label).Inc()
		return nil, err
	}

	elapsed := time.Since(start)
	metricChunksProcessedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricRecordsParsedTotal.WithLabelValues().Add(float64(records))
	metricChunkDurationSeconds.WithLabelValues().Observe(elapsed.Seconds())

	logger.Debug().
		Int(loggers.FieldChunkOffset, chunk.Offset).
		Int(loggers.FieldChunkEnd, chunk.End).
		Int(loggers.FieldRecords, records).
		Int(loggers.FieldKeys, table.Len()).
		Dur(loggers.FieldDuration, elapsed).
		Msg("chunk parsed")
	return table, nil
}
