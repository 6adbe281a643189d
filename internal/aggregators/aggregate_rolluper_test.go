package aggregators

import (
	"math/rand"
	"testing"

	"one-billion-row/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableOf(records map[string][]models.FixedPoint) *models.AggregateTable {
	table := models.NewAggregateTable(0)
	for key, values := range records {
		for _, v := range values {
			table.Update([]byte(key), v)
		}
	}
	return table
}

func snapshot(table *models.AggregateTable) map[string]models.Measurement {
	out := make(map[string]models.Measurement, table.Len())
	for key, m := range table.All() {
		out[key] = m
	}
	return out
}

// rollupAll folds tables, in order, into a fresh table.
func rollupAll(rolluper TableRolluper, tables ...*models.AggregateTable) *models.AggregateTable {
	agg := models.NewAggregateTable(0)
	for _, table := range tables {
		rolluper.Rollup(agg, table)
	}
	return agg
}

func TestTableRolluper_Rollup_MergesOverlappingKeys(t *testing.T) {
	t.Parallel()

	rolluper := NewTableRolluper()
	agg := tableOf(map[string][]models.FixedPoint{"Tokyo": {12300}, "Berlin": {20000}})
	partial := tableOf(map[string][]models.FixedPoint{"Tokyo": {-5600}, "Berlin": {19000, 21000}})

	rolluper.Rollup(agg, partial)

	assert.Equal(t, map[string]models.Measurement{
		"Tokyo":  {Min: -5600, Max: 12300, Sum: 6700, Count: 2},
		"Berlin": {Min: 19000, Max: 21000, Sum: 60000, Count: 3},
	}, snapshot(agg))
}

func TestTableRolluper_Rollup_AddsNewKeys(t *testing.T) {
	t.Parallel()

	rolluper := NewTableRolluper()
	agg := tableOf(map[string][]models.FixedPoint{"Tokyo": {12300}})
	partial := tableOf(map[string][]models.FixedPoint{"Oslo": {-1000}, "Lima": {18500}})

	rolluper.Rollup(agg, partial)

	assert.Equal(t, []string{"Lima", "Oslo", "Tokyo"}, agg.Keys())
	tokyo, ok := agg.Get("Tokyo")
	require.True(t, ok)
	assert.Equal(t, models.NewMeasurement(12300), tokyo, "existing keys must be unchanged")
}

func TestTableRolluper_Rollup_NilPartial(t *testing.T) {
	t.Parallel()

	agg := tableOf(map[string][]models.FixedPoint{"Tokyo": {12300}})
	NewTableRolluper().Rollup(agg, nil)
	assert.Equal(t, 1, agg.Len())
}

func TestTableRolluper_Rollup_OrderIndependent(t *testing.T) {
	t.Parallel()

	tables := []*models.AggregateTable{
		tableOf(map[string][]models.FixedPoint{"Tokyo": {12300}, "Berlin": {20000}}),
		tableOf(map[string][]models.FixedPoint{"Tokyo": {-5600}}),
		tableOf(map[string][]models.FixedPoint{"Berlin": {-100}, "Oslo": {0}}),
	}
	rolluper := NewTableRolluper()

	expected := snapshot(rollupAll(rolluper, tables...))
	permutations := [][]int{{0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for _, perm := range permutations {
		reordered := make([]*models.AggregateTable, len(perm))
		for i, idx := range perm {
			reordered[i] = tables[idx]
		}
		assert.Equal(t, expected, snapshot(rollupAll(rolluper, reordered...)), "order %v", perm)
	}
}

func TestTableRolluper_Rollup_PartitionIndependent(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	keys := []string{"Abha", "Accra", "Hamburg", "Zürich", "İzmir"}

	type record struct {
		key   string
		value models.FixedPoint
	}
	records := make([]record, 5000)
	sequential := models.NewAggregateTable(0)
	for i := range records {
		records[i] = record{key: keys[rng.Intn(len(keys))], value: models.FixedPoint(rng.Intn(199_800) - 99_900)}
		sequential.Update([]byte(records[i].key), records[i].value)
	}

	rolluper := NewTableRolluper()
	for _, parts := range []int{1, 2, 3, 8, 64} {
		tables := make([]*models.AggregateTable, parts)
		for i := range tables {
			tables[i] = models.NewAggregateTable(0)
		}
		for _, r := range records {
			tables[rng.Intn(parts)].Update([]byte(r.key), r.value)
		}

		assert.Equal(t, snapshot(sequential), snapshot(rollupAll(rolluper, tables...)), "%d partitions", parts)
	}
}
