package filestorages

import (
	"errors"
	"fmt"
	"math"
	"os"

	"golang.org/x/sys/unix"
)

var (
	ErrFileTooLarge  = errors.New("file too large to map")
	ErrMappingClosed = errors.New("mapping already closed")
)

var pageSize = os.Getpagesize()

// Mapping is a read-only memory mapping of a whole file. Its bytes are never
// mutated, so any number of goroutines may read them concurrently until Close.
type Mapping struct {
	data   []byte
	closed bool
}

func mapFile(file *os.File) (*Mapping, error) {
	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		// mmap rejects zero-length mappings
		return &Mapping{}, nil
	}
	if size < 0 || size > math.MaxInt {
		return nil, fmt.Errorf("%w: %s (%d bytes)", ErrFileTooLarge, file.Name(), size)
	}

	data, err := unix.Mmap(int(file.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", file.Name(), err)
	}
	return &Mapping{data: data}, nil
}

// Bytes returns the mapped file contents.
func (m *Mapping) Bytes() []byte {
	return m.data
}

// Advise tells the kernel that [offset, end) is about to be read sequentially.
// The range start is rounded down to a page boundary as madvise requires.
func (m *Mapping) Advise(offset, end int) error {
	if m.closed || offset >= end || end > len(m.data) {
		return nil
	}
	aligned := offset &^ (pageSize - 1)
	return unix.Madvise(m.data[aligned:end], unix.MADV_SEQUENTIAL)
}

// Close unmaps the file. Slices previously returned by Bytes must not be used afterwards.
func (m *Mapping) Close() error {
	if m.closed {
		return ErrMappingClosed
	}
	m.closed = true
	if m.data == nil {
		return nil
	}
	data := m.data
	m.data = nil
	return unix.Munmap(data)
}
