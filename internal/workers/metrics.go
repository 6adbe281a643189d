package workers

import (
	"one-billion-row/internal/shared/metrics"
)

var (
	metricChunksProcessedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubWorker,
			Name:      "chunks_processed_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricRecordsParsedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubWorker,
			Name:      "records_parsed_total",
		},
		[]string{},
	)

	// metricChunkDurationSeconds observes how long one worker spent parsing its chunk.
	metricChunkDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubWorker,
			Name:      "chunk_duration_seconds",
			Buckets:   metrics.ExponentialBuckets(0.001, 4, 10),
		},
		[]string{},
	)
)

const (
	valueMalformedRecord = "malformed_record"
	valueCanceled        = "canceled"
	valuePanic           = "panic"
)
