package workers

import (
	"context"
	"errors"
	"testing"

	"one-billion-row/internal/models"
	"one-billion-row/internal/parsers"
	parsermocks "one-billion-row/internal/parsers/mocks"
	"one-billion-row/internal/sources"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const sampleMeasurements = "Tokyo;12.3\nTokyo;-5.6\nBerlin;20.0\n"

type adviseFailingSource struct {
	sources.ByteSource
}

func (s adviseFailingSource) Advise(models.Chunk) error {
	return errors.New("madvise: invalid argument")
}

func TestChunkWorker_Process(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   sources.ByteSource
		chunk    models.Chunk
		expected map[string]models.Measurement
	}{
		{
			name:   "whole source",
			source: sources.NewMemorySource("inline", []byte(sampleMeasurements)),
			chunk:  models.Chunk{Offset: 0, End: len(sampleMeasurements)},
			expected: map[string]models.Measurement{
				"Tokyo":  {Min: -5600, Max: 12300, Sum: 6700, Count: 2},
				"Berlin": {Min: 20000, Max: 20000, Sum: 20000, Count: 1},
			},
		},
		{
			name:   "second chunk only",
			source: sources.NewMemorySource("inline", []byte(sampleMeasurements)),
			chunk:  models.Chunk{Offset: 22, End: len(sampleMeasurements)},
			expected: map[string]models.Measurement{
				"Berlin": {Min: 20000, Max: 20000, Sum: 20000, Count: 1},
			},
		},
		{
			name:   "advice failure is ignored",
			source: adviseFailingSource{sources.NewMemorySource("inline", []byte(sampleMeasurements))},
			chunk:  models.Chunk{Offset: 0, End: 11},
			expected: map[string]models.Measurement{
				"Tokyo": {Min: 12300, Max: 12300, Sum: 12300, Count: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			worker := NewChunkWorker(parsers.NewLineParser(parsers.DefaultMaxKeyBytes))
			table, err := worker.Process(context.Background(), tt.source, tt.chunk)
			require.NoError(t, err)

			got := make(map[string]models.Measurement)
			for key, m := range table.All() {
				got[key] = m
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestChunkWorker_Process_MalformedRecord(t *testing.T) {
	t.Parallel()

	source := sources.NewMemorySource("inline", []byte("Tokyo;12.3\nBerlin\n"))
	worker := NewChunkWorker(parsers.NewLineParser(parsers.DefaultMaxKeyBytes))

	table, err := worker.Process(context.Background(), source, models.Chunk{Offset: 0, End: source.Len()})
	assert.Nil(t, table)
	assert.ErrorIs(t, err, parsers.ErrMalformedRecord)
}

func TestChunkWorker_Process_Canceled(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	parser := parsermocks.NewMockLineParser(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	worker := NewChunkWorker(parser)
	table, err := worker.Process(ctx, sources.NewMemorySource("inline", []byte(sampleMeasurements)), models.Chunk{Offset: 0, End: 11})
	assert.Nil(t, table)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestChunkWorker_Process_FreshTablePerChunk(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	parser := parsermocks.NewMockLineParser(ctrl)

	var seen []*models.AggregateTable
	parser.EXPECT().
		Parse(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ []byte, _ models.Chunk, table *models.AggregateTable) (int, error) {
			seen = append(seen, table)
			return 0, nil
		}).
		Times(2)

	worker := NewChunkWorker(parser)
	source := sources.NewMemorySource("inline", []byte(sampleMeasurements))

	first, err := worker.Process(context.Background(), source, models.Chunk{Offset: 0, End: 11})
	require.NoError(t, err)
	second, err := worker.Process(context.Background(), source, models.Chunk{Offset: 11, End: 22})
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Same(t, first, seen[0])
	assert.Same(t, second, seen[1])
	assert.NotSame(t, first, second)
}
