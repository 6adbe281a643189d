package parsers

import (
	"errors"
	"fmt"
)

var ErrMalformedRecord = errors.New("malformed record")

// RecordError describes a malformed record. Offset is the absolute byte
// position of the start of the offending line in the source.
type RecordError struct {
	Offset int
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Reason)
}

// Is makes errors.Is(err, ErrMalformedRecord) hold for every RecordError.
func (e *RecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

func malformed(offset int, format string, args ...any) error {
	return &RecordError{Offset: offset, Reason: fmt.Sprintf(format, args...)}
}
