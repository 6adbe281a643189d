package aggregators

import (
	"fmt"

	"one-billion-row/internal/shared/svcerrors"
)

const (
	codeMalformedInput  = "AGG_1000"
	codeMalformedRecord = "AGG_1001"

	codeInternalWorkerFailed       = "AGG_9000"
	codeInternalAggregationAborted = "AGG_9001"
)

// errMalformedInput returns an error when the input cannot be split into records at all.
func errMalformedInput(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInputError(codeMalformedInput, "malformed input", cause)
}

// errMalformedRecord returns an error when a worker meets a record it cannot parse.
func errMalformedRecord(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInputError(codeMalformedRecord, "malformed record", cause)
}

// errInternalWorkerFailed returns an error when planning or a worker fails for a reason unrelated to the input.
func errInternalWorkerFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalWorkerFailed, fmt.Errorf("workerFailed: %w", cause))
}

// errInternalAggregationAborted returns an error when the run is canceled before it completes.
func errInternalAggregationAborted(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalAggregationAborted, fmt.Errorf("aggregationAborted: %w", cause))
}
