package renderers

import (
	"errors"
	"fmt"

	"one-billion-row/internal/shared/svcerrors"
)

var ErrInvalidKeyEncoding = errors.New("key is not valid UTF-8")

const codeInvalidKeyEncoding = "REN_1000"

// errInvalidKeyEncoding returns an error when a key cannot be rendered as text.
func errInvalidKeyEncoding(key string) *svcerrors.ServiceError {
	return svcerrors.NewEncodingError(codeInvalidKeyEncoding, "key is not valid UTF-8", fmt.Errorf("%w: %q", ErrInvalidKeyEncoding, key))
}
