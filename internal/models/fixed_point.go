package models

import (
	"github.com/shopspring/decimal"
)

// FixedPoint is a signed decimal stored as an integer number of thousandths,
// so 12.3 is 12300 and -0.04 is -40. All aggregation arithmetic stays in
// integers, which keeps results exact and independent of evaluation order.
type FixedPoint int64

const (
	// FractionDigits is the number of decimal places a FixedPoint carries.
	FractionDigits = 3
	// Scale is the FixedPoint representation of 1.
	Scale FixedPoint = 1000
)

var pow10 = [FractionDigits + 1]int64{1, 10, 100, 1000}

// Rescale converts the digits of a decimal number written without its point,
// fracDigits of which followed the point, to thousandths: Rescale(123, 1) is 12.3.
// fracDigits must be in [0, FractionDigits].
func Rescale(digits int64, fracDigits int) FixedPoint {
	return FixedPoint(digits * pow10[FractionDigits-fracDigits])
}

// Decimal returns the exact decimal value.
func (v FixedPoint) Decimal() decimal.Decimal {
	return decimal.New(int64(v), -FractionDigits)
}

func (v FixedPoint) String() string {
	return v.Decimal().String()
}
