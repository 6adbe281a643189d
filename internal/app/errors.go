package app

import (
	"fmt"

	"one-billion-row/internal/shared/svcerrors"
)

const (
	codeInternalSummaryStoreFailed = "STO_9000"
	codeInternalOutputFailed       = "APP_9000"
)

// errInternalSummaryStoreFailed returns an error when the run summary cannot be persisted.
func errInternalSummaryStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSummaryStoreFailed, fmt.Errorf("summaryStoreFailed: %w", cause))
}

// errInternalOutputFailed returns an error when the summary line cannot be written.
func errInternalOutputFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalOutputFailed, fmt.Errorf("outputFailed: %w", cause))
}
