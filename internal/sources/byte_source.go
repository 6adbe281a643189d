package sources

import (
	"one-billion-row/internal/models"
	"one-billion-row/internal/shared/filestorages"
)

// ByteSource is the whole input, addressable by offset. Its bytes are never
// mutated, so workers may slice and read them concurrently until Close.
type ByteSource interface {
	// Name identifies the source in logs and summaries.
	Name() string
	Bytes() []byte
	Len() int
	// Advise hints that chunk is about to be read sequentially. It never affects results.
	Advise(chunk models.Chunk) error
	Close() error
}

type mappedSource struct {
	name    string
	mapping *filestorages.Mapping
}

func (s *mappedSource) Name() string  { return s.name }
func (s *mappedSource) Bytes() []byte { return s.mapping.Bytes() }
func (s *mappedSource) Len() int      { return len(s.mapping.Bytes()) }

func (s *mappedSource) Advise(chunk models.Chunk) error {
	return s.mapping.Advise(chunk.Offset, chunk.End)
}

func (s *mappedSource) Close() error {
	return s.mapping.Close()
}

type memorySource struct {
	name string
	data []byte
}

// NewMemorySource wraps bytes already held in memory.
func NewMemorySource(name string, data []byte) ByteSource {
	return &memorySource{name: name, data: data}
}

func (s *memorySource) Name() string                { return s.name }
func (s *memorySource) Bytes() []byte               { return s.data }
func (s *memorySource) Len() int                    { return len(s.data) }
func (s *memorySource) Advise(_ models.Chunk) error { return nil }
func (s *memorySource) Close() error                { return nil }
