package planners

import (
	"one-billion-row/internal/shared/metrics"
)

var (
	// metricChunksPlannedTotal counts chunks handed out by the planner.
	metricChunksPlannedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPlanner,
			Name:      "chunks_planned_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricChunkBytes observes the size of every planned chunk. Buckets run from 64KiB to 16GiB.
	metricChunkBytes = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPlanner,
			Name:      "chunk_bytes",
			Buckets:   metrics.ExponentialBuckets(64*1024, 4, 10),
		},
		[]string{},
	)
)
