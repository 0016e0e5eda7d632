package core

import "math"

// Interval is a closed range of real numbers. An interval with Min > Max is
// empty and contains nothing.
type Interval struct {
	Min, Max float64
}

var (
	// EmptyInterval contains no values
	EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	// UniverseInterval contains every value
	UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
)

// NewInterval creates an interval from min to max
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Size returns Max - Min (negative for empty intervals)
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether min <= v <= max
func (i Interval) Contains(v float64) bool {
	return i.Min <= v && v <= i.Max
}

// Surrounds reports whether min < v < max
func (i Interval) Surrounds(v float64) bool {
	return i.Min < v && v < i.Max
}

// Clamp restricts v to the interval
func (i Interval) Clamp(v float64) float64 {
	if v < i.Min {
		return i.Min
	}
	if v > i.Max {
		return i.Max
	}
	return v
}

// Expand returns the interval widened by delta/2 on each side
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}

// Offset returns the interval shifted by d
func (i Interval) Offset(d float64) Interval {
	return Interval{Min: i.Min + d, Max: i.Max + d}
}

// IsEmpty reports whether the interval contains no values
func (i Interval) IsEmpty() bool {
	return i.Min > i.Max
}

// IntersectIntervals returns the overlap of a and b
func IntersectIntervals(a, b Interval) Interval {
	return Interval{Min: math.Max(a.Min, b.Min), Max: math.Min(a.Max, b.Max)}
}

// UniteIntervals returns the smallest interval enclosing both a and b
func UniteIntervals(a, b Interval) Interval {
	return Interval{Min: math.Min(a.Min, b.Min), Max: math.Max(a.Max, b.Max)}
}
