package aggregators

import (
	"one-billion-row/internal/models"
)

//go:generate mockgen -source=aggregate_rolluper.go -destination=./mocks/aggregate_rolluper_mock.go -package=mocks
type TableRolluper interface {
	// Rollup mutates agg by folding in every key of partial. Ownership of
	// partial passes to agg: it must not be used afterwards.
	// The result does not depend on the order partials are rolled up in.
	Rollup(agg *models.AggregateTable, partial *models.AggregateTable)
}

type tableRolluper struct{}

func NewTableRolluper() TableRolluper {
	return &tableRolluper{}
}

func (r *tableRolluper) Rollup(agg *models.AggregateTable, partial *models.AggregateTable) {
	if partial == nil {
		return
	}
	for key, m := range partial.All() {
		agg.Merge(key, m)
	}
}
