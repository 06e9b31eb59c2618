package model

import (
	"strconv"
	"strings"
)

// Average is a mean rounded to two decimal places.
//
// The zero value represents the mean of an empty collection. It renders as
// the integer "0", while a computed mean always renders with a fractional
// part ("1.0", "3.5").
type Average struct {
	value   float64
	defined bool
}

// NewAverage returns sum/count rounded to two decimal places,
// or the empty Average when count is zero.
func NewAverage(sum, count int) Average {
	if count == 0 {
		return Average{}
	}
	return Average{
		value:   Round2(float64(sum) / float64(count)),
		defined: true,
	}
}

// Float64 returns the rounded value. The empty Average is 0.
func (a Average) Float64() float64 {
	return a.value
}

// Defined reports whether the average was computed from at least one value.
func (a Average) Defined() bool {
	return a.defined
}

// String renders the average the way every output format prints it.
func (a Average) String() string {
	if !a.defined {
		return "0"
	}
	s := strconv.FormatFloat(a.value, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// MarshalJSON implements json.Marshaler.
func (a Average) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// Round2 rounds f to two decimal places.
// Rounding is done on the exact binary value with ties going to even,
// so 2.675 (stored as 2.67499...) becomes 2.67.
func Round2(f float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', 2, 64), 64)
	if err != nil {
		return f
	}
	return r
}
