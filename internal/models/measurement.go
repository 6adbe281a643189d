package models

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Measurement is the running aggregate of every value observed for one key.
// A Measurement only exists once a value has been observed, so Count >= 1.
//
// The exact sum is SumCarry*2^64 + Sum: Sum wraps like an int64 and every
// wrap is counted in SumCarry, so no number of additions loses precision.
type Measurement struct {
	Min      FixedPoint `json:"min"`
	Max      FixedPoint `json:"max"`
	Sum      int64      `json:"sum"`
	SumCarry int64      `json:"sumCarry,omitempty"`
	Count    uint64     `json:"count"`
}

// NewMeasurement starts an aggregate from its first observation.
func NewMeasurement(value FixedPoint) Measurement {
	return Measurement{
		Min:   value,
		Max:   value,
		Sum:   int64(value),
		Count: 1,
	}
}

// Update folds one observation into m.
// Min and max are two independent comparisons; a value may move neither, one or both.
func (m *Measurement) Update(value FixedPoint) {
	if value < m.Min {
		m.Min = value
	}
	if value > m.Max {
		m.Max = value
	}
	m.addSum(int64(value))
	m.Count++
}

// Merge folds another partial aggregate of the same key into m.
func (m *Measurement) Merge(other Measurement) {
	if other.Min < m.Min {
		m.Min = other.Min
	}
	if other.Max > m.Max {
		m.Max = other.Max
	}
	m.addSum(other.Sum)
	m.SumCarry += other.SumCarry
	m.Count += other.Count
}

func (m *Measurement) addSum(v int64) {
	sum := m.Sum + v
	// signed overflow: both operands share a sign the result lacks
	if (m.Sum^sum)&(v^sum) < 0 {
		if v > 0 {
			m.SumCarry++
		} else {
			m.SumCarry--
		}
	}
	m.Sum = sum
}

// Negative reports whether the exact sum is below zero.
func (m Measurement) Negative() bool {
	if m.SumCarry != 0 {
		return m.SumCarry < 0
	}
	return m.Sum < 0
}

// Total returns the exact sum of every observed value.
func (m Measurement) Total() decimal.Decimal {
	if m.SumCarry == 0 {
		return decimal.New(m.Sum, -FractionDigits)
	}
	total := new(big.Int).Lsh(big.NewInt(m.SumCarry), 64)
	total.Add(total, big.NewInt(m.Sum))
	return decimal.NewFromBigInt(total, -FractionDigits)
}

// Mean returns the exact sum divided by Count, rounded half away from zero to
// the given number of decimal places.
func (m Measurement) Mean(places int32) decimal.Decimal {
	return m.Total().DivRound(decimal.NewFromInt(int64(m.Count)), places)
}
