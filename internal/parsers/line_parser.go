package parsers

import (
	"one-billion-row/internal/models"
)

const (
	DefaultMaxKeyBytes = 100

	// maxValueDigits keeps a single value, once rescaled to
	// thousandths, inside int64. Sums widen in models.Measurement.
	maxValueDigits = 15
)

//go:generate mockgen -source=line_parser.go -destination=./mocks/line_parser_mock.go -package=mocks
type LineParser interface {
	// Parse scans data[chunk.Offset:chunk.End] once, forward, and records every
	// `<key>;<value>` line into table. A last line without a trailing newline is
	// accepted. It returns the number of records committed; on error the records
	// committed before the malformed line are in table but the caller must
	// discard it.
	Parse(data []byte, chunk models.Chunk, table *models.AggregateTable) (int, error)
}

type lineParser struct {
	maxKeyBytes int
}

// NewLineParser returns a parser rejecting keys longer than maxKeyBytes.
// A non-positive maxKeyBytes falls back to DefaultMaxKeyBytes.
func NewLineParser(maxKeyBytes int) LineParser {
	if maxKeyBytes <= 0 {
		maxKeyBytes = DefaultMaxKeyBytes
	}
	return &lineParser{maxKeyBytes: maxKeyBytes}
}

type parseState uint8

const (
	stateKey      parseState = iota // before ';'
	stateSign                       // right after ';'
	stateInteger                    // digits before '.'
	stateFraction                   // digits after '.'
)

// record is the parse state of the line being scanned.
type record struct {
	state      parseState
	lineStart  int
	keyEnd     int
	negative   bool
	digits     int
	fracDigits int
	value      int64
}

func (r *record) reset(lineStart int) {
	*r = record{lineStart: lineStart}
}

func (p *lineParser) Parse(data []byte, chunk models.Chunk, table *models.AggregateTable) (int, error) {
	records := 0
	rec := record{lineStart: chunk.Offset}

	for i := chunk.Offset; i < chunk.End; i++ {
		c := data[i]
		switch rec.state {
		case stateKey:
			switch {
			case c == ';':
				if i == rec.lineStart {
					return records, malformed(rec.lineStart, "empty key")
				}
				rec.keyEnd = i
				rec.state = stateSign
			case c == '\n':
				return records, malformed(rec.lineStart, "missing ';'")
			case i-rec.lineStart >= p.maxKeyBytes:
				return records, malformed(rec.lineStart, "key longer than %d bytes", p.maxKeyBytes)
			}

		case stateSign:
			rec.state = stateInteger
			if c == '-' {
				rec.negative = true
				continue
			}
			fallthrough

		case stateInteger:
			if err := rec.integerByte(c, i); err != nil {
				return records, err
			}
			if c == '\n' {
				if err := rec.commit(data, table); err != nil {
					return records, err
				}
				records++
				rec.reset(i + 1)
			}

		case stateFraction:
			switch {
			case c >= '0' && c <= '9':
				rec.fracDigits++
				if rec.fracDigits > models.FractionDigits {
					return records, malformed(rec.lineStart, "more than %d fractional digits", models.FractionDigits)
				}
				if err := rec.addDigit(c); err != nil {
					return records, err
				}
			case c == '\n':
				if err := rec.commit(data, table); err != nil {
					return records, err
				}
				records++
				rec.reset(i + 1)
			default:
				return records, malformed(rec.lineStart, "unexpected byte %q in value", c)
			}
		}
	}

	// unterminated last line
	if rec.lineStart < chunk.End {
		if rec.state == stateKey {
			return records, malformed(rec.lineStart, "missing ';'")
		}
		if err := rec.commit(data, table); err != nil {
			return records, err
		}
		records++
	}
	return records, nil
}

// integerByte handles one byte of the integer part. A newline is left to the caller.
func (r *record) integerByte(c byte, offset int) error {
	switch {
	case c >= '0' && c <= '9':
		return r.addDigit(c)
	case c == '.':
		if r.digits == 0 {
			return malformed(r.lineStart, "missing integer digits before '.'")
		}
		r.state = stateFraction
		return nil
	case c == '\n':
		return nil
	case c == '-':
		return malformed(r.lineStart, "misplaced '-' at offset %d", offset)
	default:
		return malformed(r.lineStart, "unexpected byte %q in value", c)
	}
}

func (r *record) addDigit(c byte) error {
	r.digits++
	if r.digits > maxValueDigits {
		return malformed(r.lineStart, "value has more than %d digits", maxValueDigits)
	}
	r.value = r.value*10 + int64(c-'0')
	return nil
}

// commit validates the completed value and folds it into table.
func (r *record) commit(data []byte, table *models.AggregateTable) error {
	if r.digits == 0 {
		return malformed(r.lineStart, "empty value")
	}
	if r.state == stateFraction && r.fracDigits == 0 {
		return malformed(r.lineStart, "missing fractional digits after '.'")
	}
	v := models.Rescale(r.value, r.fracDigits)
	if r.negative {
		v = -v
	}
	table.Update(data[r.lineStart:r.keyEnd], v)
	return nil
}
