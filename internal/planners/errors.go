package planners

import "errors"

var (
	// ErrNoRecordTerminator is returned for a non-empty source without a single newline.
	ErrNoRecordTerminator = errors.New("no record terminator in input")
	ErrInvalidWorkerCount = errors.New("worker count must be at least 1")
)
