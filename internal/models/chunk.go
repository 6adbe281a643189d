package models

// Chunk is the half-open byte range [Offset, End) of the source handed to one
// worker. Both ends fall on record boundaries: Offset is 0 or follows a newline,
// and End follows a newline or is the source length.
type Chunk struct {
	Offset int `json:"offset"`
	End    int `json:"end"`
}

// Len returns the number of bytes in the chunk.
func (c Chunk) Len() int {
	return c.End - c.Offset
}
