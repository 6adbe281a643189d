package aggregators

import (
	"one-billion-row/internal/shared/metrics"
)

var (
	// metricAggregationTotal counts aggregation runs by outcome. A successful run
	// carries an empty error_code; a failed one carries the ServiceError code,
	// e.g. error_code="AGG_1001" for a malformed record.
	metricAggregationTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "runs_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricAggregationDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{},
	)

	metricKeysAggregated = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "keys",
			Buckets:   metrics.ExponentialBuckets(1, 4, 10),
		},
		[]string{},
	)
)
