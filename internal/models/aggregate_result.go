package models

// AggregateResult is the outcome of aggregating one source: the merged table
// plus the shape of the run that produced it.
type AggregateResult struct {
	Table   *AggregateTable
	Workers int
	Chunks  []Chunk
	Records uint64
}
