package sources

import (
	"one-billion-row/internal/shared/metrics"
)

var (
	metricSourceLoadedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "loaded_total",
		},
		[]string{"mode", metrics.FieldErrorCode},
	)

	metricSourceBytes = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "bytes",
			Buckets:   metrics.ExponentialBuckets(1024, 8, 10),
		},
		[]string{"mode"},
	)
)
