package loggers

const (
	FieldApp       = "app"
	FieldComponent = "component"
	FieldRunID     = "run_id"

	FieldDuration   = "duration"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldSource      = "source"
	FieldSourceBytes = "source_bytes"
	FieldSourceMode  = "source_mode"
	FieldWorkers     = "workers"
	FieldChunks      = "chunks"
	FieldWorkerID    = "worker_id"
	FieldChunkOffset = "chunk_offset"
	FieldChunkEnd    = "chunk_end"
	FieldRecords     = "records"
	FieldKeys        = "keys"
)
