package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"one-billion-row/internal/shared/filestorages"
	"one-billion-row/internal/shared/loggers"
	"one-billion-row/internal/shared/metrics"
	"one-billion-row/internal/shared/svcerrors"

	"github.com/klauspost/compress/zstd"
)

// Acquisition modes.
const (
	ModeMmap = "mmap"
	ModeRead = "read"
)

// Compression settings. With CompressionAuto a ".zst" suffix selects zstd.
const (
	CompressionAuto = "auto"
	CompressionNone = "none"
	CompressionZstd = "zstd"
)

const zstdSuffix = ".zst"

//go:generate mockgen -source=loader.go -destination=./mocks/loader_mock.go -package=mocks
type Loader interface {
	// Load makes the file at path available as a ByteSource. Errors are
	// *svcerrors.ServiceError: SRC_1000 when the file is missing, is a
	// directory or cannot be read by this process.
	Load(ctx context.Context, path string) (ByteSource, error)
}

type loader struct {
	mode        string
	compression string
	newStorage  func(rootDir string) (filestorages.FileStorage, error)
}

func NewLoader(mode, compression string) Loader {
	return &loader{
		mode:        mode,
		compression: compression,
		newStorage:  filestorages.NewFileStorage,
	}
}

func (l *loader) Load(ctx context.Context, path string) (ByteSource, error) {
	logger := loggers.Ctx(ctx)
	start := time.Now()

	storage, err := l.newStorage(filepath.Dir(path))
	if err != nil {
		return nil, errInternalSourceFailed(err)
	}
	key := filepath.Base(path)

	mode := l.mode
	if l.isCompressed(path) {
		mode = CompressionZstd
	}

	var src ByteSource
	switch mode {
	case CompressionZstd:
		src, err = l.loadZstd(ctx, storage, key, path)
	case ModeRead:
		src, err = l.loadRead(ctx, storage, key, path)
	default:
		src, err = l.loadMapped(ctx, storage, key, path)
	}
	if err != nil {
		svcErr := l.toServiceError(path, err)
		metricSourceLoadedTotal.WithLabelValues(mode, svcErr.Code).Inc()
		return nil, svcErr
	}

	metricSourceLoadedTotal.WithLabelValues(mode, metrics.ValueNoError).Inc()
	metricSourceBytes.WithLabelValues(mode).Observe(float64(src.Len()))
	logger.Debug().
		Str(loggers.FieldSource, path).
		Str(loggers.FieldSourceMode, mode).
		Int(loggers.FieldSourceBytes, src.Len()).
		Dur(loggers.FieldDuration, time.Since(start)).
		Msg("source loaded")
	return src, nil
}

func (l *loader) isCompressed(path string) bool {
	switch l.compression {
	case CompressionZstd:
		return true
	case CompressionAuto:
		return strings.HasSuffix(path, zstdSuffix)
	default:
		return false
	}
}

func (l *loader) loadMapped(ctx context.Context, storage filestorages.FileStorage, key, path string) (ByteSource, error) {
	mapping, err := storage.Map(ctx, key)
	if err != nil {
		return nil, err
	}
	return &mappedSource{name: path, mapping: mapping}, nil
}

func (l *loader) loadRead(ctx context.Context, storage filestorages.FileStorage, key, path string) (ByteSource, error) {
	rc, err := storage.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return NewMemorySource(path, data), nil
}

// loadZstd decompresses the whole file into memory.
func (l *loader) loadZstd(ctx context.Context, storage filestorages.FileStorage, key, path string) (ByteSource, error) {
	rc, err := storage.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	decoder, err := zstd.NewReader(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptInput, err)
	}
	defer decoder.Close()

	data, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptInput, path, err)
	}
	return NewMemorySource(path, data), nil
}

func (l *loader) toServiceError(path string, err error) *svcerrors.ServiceError {
	switch {
	case errors.Is(err, filestorages.ErrFileNotFound),
		errors.Is(err, filestorages.ErrFileUnreadable),
		errors.Is(err, filestorages.ErrInvalidKey):
		return errInputNotFound(path, err)
	case errors.Is(err, ErrCorruptInput):
		return errCorruptInput(err)
	default:
		return errInternalSourceFailed(err)
	}
}
