package planners

import (
	"bytes"
	"fmt"
	"os"

	"one-billion-row/internal/models"
	"one-billion-row/internal/shared/metrics"
)

//go:generate mockgen -source=chunk_planner.go -destination=./mocks/chunk_planner_mock.go -package=mocks
type ChunkPlanner interface {
	// Plan splits data into at most workers contiguous chunks that start and end
	// on record boundaries and together cover data exactly. Empty data yields no chunks.
	Plan(data []byte, workers int) ([]models.Chunk, error)
}

type chunkPlanner struct {
	pageAlign bool
	pageSize  int
}

// NewChunkPlanner returns a planner. With pageAlign set, the target chunk size is
// rounded down to a multiple of the OS page size whenever it spans at least one page.
func NewChunkPlanner(pageAlign bool) ChunkPlanner {
	return &chunkPlanner{
		pageAlign: pageAlign,
		pageSize:  os.Getpagesize(),
	}
}

func (p *chunkPlanner) Plan(data []byte, workers int) ([]models.Chunk, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkerCount, workers)
	}
	size := len(data)
	if size == 0 {
		return nil, nil
	}
	if bytes.IndexByte(data, '\n') < 0 {
		metricChunksPlannedTotal.WithLabelValues("no_record_terminator").Inc()
		return nil, fmt.Errorf("%w: %d bytes", ErrNoRecordTerminator, size)
	}

	target := p.targetSize(size, workers)
	chunks := make([]models.Chunk, 0, workers)
	for offset := 0; offset < size; {
		// the last worker takes whatever is left
		end := size
		if k := len(chunks); k < workers-1 {
			end = recordEnd(data, offset, (k+1)*target)
		}
		chunks = append(chunks, models.Chunk{Offset: offset, End: end})
		metricChunkBytes.WithLabelValues().Observe(float64(end - offset))
		offset = end
	}

	metricChunksPlannedTotal.WithLabelValues(metrics.ValueNoError).Add(float64(len(chunks)))
	return chunks, nil
}

func (p *chunkPlanner) targetSize(size, workers int) int {
	target := size / workers
	if target < 1 {
		target = 1
	}
	if p.pageAlign && p.pageSize > 0 && target >= p.pageSize {
		target -= target % p.pageSize
	}
	return target
}

// recordEnd returns the end of the chunk starting at offset whose ideal end is
// candidate: one past the last newline before candidate or, when the range holds
// none, one past the next newline at or after it. Without any, the chunk runs to
// the end of data.
func recordEnd(data []byte, offset, candidate int) int {
	size := len(data)
	if candidate >= size {
		return size
	}
	if candidate > offset {
		if i := bytes.LastIndexByte(data[offset:candidate], '\n'); i >= 0 {
			return offset + i + 1
		}
	}
	from := max(candidate, offset)
	if i := bytes.IndexByte(data[from:], '\n'); i >= 0 {
		return from + i + 1
	}
	return size
}
