package sources

import (
	"errors"
	"fmt"

	"one-billion-row/internal/shared/svcerrors"
)

var ErrCorruptInput = errors.New("corrupt compressed input")

const (
	codeInputNotFound = "SRC_1000"
	codeCorruptInput  = "SRC_1001"

	codeInternalSourceFailed = "SRC_9000"
)

// errInputNotFound returns an error when the input path cannot be opened.
func errInputNotFound(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInputNotFoundError(codeInputNotFound, fmt.Sprintf("cannot open input: %s", path), cause)
}

// errCorruptInput returns an error when compressed input cannot be decoded.
func errCorruptInput(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInputError(codeCorruptInput, "corrupt compressed input", cause)
}

// errInternalSourceFailed returns an error when the input cannot be read.
func errInternalSourceFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSourceFailed, fmt.Errorf("sourceLoadFailed: %w", cause))
}
