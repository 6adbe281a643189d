package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"one-billion-row/internal/models"
	"one-billion-row/internal/shared/filestorages"
)

var (
	ErrSummaryAlreadyExist = errors.New("summary already exists")
	ErrSummaryNotFound     = errors.New("summary not found")
)

// SummaryStore keeps one JSON document per run under summaries/<runId>.json.
// A run id is written at most once; a second Save for the same id fails with
// ErrSummaryAlreadyExist and leaves the first document intact.
//
//go:generate mockgen -source=summary_store.go -destination=./mocks/summary_store_mock.go -package=mocks
type SummaryStore interface {
	Save(ctx context.Context, summary *models.Summary) error
	Get(ctx context.Context, runID string) (*models.Summary, error)
}

type summaryStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewSummaryStore(fileStorage filestorages.FileStorage) SummaryStore {
	return &summaryStore{fileStorage: fileStorage, dir: "summaries"}
}

func (s *summaryStore) Save(ctx context.Context, summary *models.Summary) error {
	jsonData, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	_, err = s.fileStorage.Put(ctx, s.getKey(summary.RunID), bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return fmt.Errorf("%w: %s", ErrSummaryAlreadyExist, summary.RunID)
		}
		return fmt.Errorf("failed to put summary: %w", err)
	}
	return nil
}

func (s *summaryStore) Get(ctx context.Context, runID string) (*models.Summary, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(runID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSummaryNotFound, runID)
		}
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read summary: %w", err)
	}
	var summary models.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
	}
	return &summary, nil
}

func (s *summaryStore) getKey(runID string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, runID)
}
