package renderers

import (
	"testing"

	"one-billion-row/internal/models"
	"one-billion-row/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableOf(records ...any) *models.AggregateTable {
	table := models.NewAggregateTable(0)
	for i := 0; i < len(records); i += 2 {
		table.Update([]byte(records[i].(string)), models.FixedPoint(records[i+1].(int)))
	}
	return table
}

func TestSummaryRenderer_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		table    *models.AggregateTable
		expected string
	}{
		{
			name:     "empty table",
			table:    models.NewAggregateTable(0),
			expected: "{}",
		},
		{
			name:     "single record",
			table:    tableOf("A", 1000),
			expected: "{A=1.0/1.0/1.0}",
		},
		{
			name:     "two keys sorted with mean rounded half away from zero",
			table:    tableOf("Tokyo", 12300, "Tokyo", -5600, "Berlin", 20000),
			expected: "{Berlin=20.0/20.0/20.0, Tokyo=-5.6/3.4/12.3}",
		},
		{
			name:     "negative value rounding to zero keeps its sign",
			table:    tableOf("Oslo", -40),
			expected: "{Oslo=-0.0/-0.0/-0.0}",
		},
		{
			name:     "hundredths round half away from zero",
			table:    tableOf("X", 50, "Y", -50, "Z", 149),
			expected: "{X=0.1/0.1/0.1, Y=-0.1/-0.1/-0.1, Z=0.1/0.1/0.1}",
		},
		{
			name:     "byte-wise order puts upper case and ASCII first",
			table:    tableOf("b", 0, "Ürümqi", 0, "a", 0, "Z", 0),
			expected: "{Z=0.0/0.0/0.0, a=0.0/0.0/0.0, b=0.0/0.0/0.0, Ürümqi=0.0/0.0/0.0}",
		},
		{
			name: "sum beyond int64 keeps the exact mean",
			table: tableOf(
				"A", 999999999999999000, "A", 999999999999999000, "A", 999999999999999000, "A", 999999999999999000,
				"A", 999999999999999000, "A", 999999999999999000, "A", 999999999999999000, "A", 999999999999999000,
				"A", 999999999999999000, "A", 999999999999999000, "A", -999999999999999000,
			),
			expected: "{A=-999999999999999.0/818181818181817.4/999999999999999.0}",
		},
		{
			name:     "mean of mixed signs",
			table:    tableOf("K", -1000, "K", 3000, "K", -8000),
			expected: "{K=-8.0/-2.0/3.0}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, svcErr := NewSummaryRenderer().Render(tt.table)
			require.Nil(t, svcErr)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestSummaryRenderer_Rows(t *testing.T) {
	t.Parallel()

	rows, svcErr := NewSummaryRenderer().Rows(tableOf("Tokyo", 12300, "Tokyo", -5600, "Berlin", 20000))
	require.Nil(t, svcErr)

	assert.Equal(t, []models.SummaryRow{
		{Key: "Berlin", Min: "20.0", Mean: "20.0", Max: "20.0", Count: 1},
		{Key: "Tokyo", Min: "-5.6", Mean: "3.4", Max: "12.3", Count: 2},
	}, rows)
}

func TestSummaryRenderer_InvalidUTF8(t *testing.T) {
	t.Parallel()

	table := tableOf("Tokyo", 12300)
	table.Update([]byte{'B', 0xff, 'r'}, 1000)

	out, svcErr := NewSummaryRenderer().Render(table)
	assert.Empty(t, out)
	require.NotNil(t, svcErr)
	assert.Equal(t, codeInvalidKeyEncoding, svcErr.Code)
	assert.Equal(t, svcerrors.ExitCodeDataErr, svcErr.ExitCode)
	assert.ErrorIs(t, svcErr, ErrInvalidKeyEncoding)
}

func TestSummaryRenderer_Join(t *testing.T) {
	t.Parallel()

	renderer := NewSummaryRenderer()
	assert.Equal(t, "{}", renderer.Join(nil))
	assert.Equal(t, "{A=1.0/2.0/3.0, B=-1.0/-1.0/-1.0}", renderer.Join([]models.SummaryRow{
		{Key: "A", Min: "1.0", Mean: "2.0", Max: "3.0"},
		{Key: "B", Min: "-1.0", Mean: "-1.0", Max: "-1.0"},
	}))
}
