package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewRunID generates a new ULID string identifying one aggregation run.
// Run ids sort by creation time, which keeps persisted summaries ordered on disk.
var NewRunID = func() string {
	return ulid.Make().String()
}
