package renderers

import (
	"one-billion-row/internal/shared/metrics"
)

var (
	metricRenderTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRender,
			Name:      "summaries_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
