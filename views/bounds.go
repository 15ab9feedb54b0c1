package views

import "math"

// None marks an omitted bound in a Bounds triple, like leaving a slot empty
// in a start:stop:step slice expression.
const None = math.MinInt

// Bounds is a start:stop:step triple selecting a windowed, strided range of
// a sequence. Any field may be None. The zero value Bounds{} selects the
// empty range [0:0:1]... which is rarely what you want; build values with
// All, From, To, Span or a struct literal using None explicitly.
type Bounds struct {
	Start, Stop, Step int
}

// All selects the full range, like [::].
func All() Bounds { return Bounds{None, None, None} }

// From selects [start::].
func From(start int) Bounds { return Bounds{start, None, None} }

// To selects [:stop:].
func To(stop int) Bounds { return Bounds{None, stop, None} }

// Span selects [start:stop:].
func Span(start, stop int) Bounds { return Bounds{start, stop, None} }

// By returns a copy of b with the step replaced, so All().By(-1) reads
// like [::-1].
func (b Bounds) By(step int) Bounds {
	b.Step = step
	return b
}

// Normalize resolves b against a sequence of the given length, with the
// exact semantics of native slicing in the source ecosystem: a missing step
// defaults to 1 and must not be zero; missing bounds fill to the full range
// respecting the sign of the step; negative bounds count from the end;
// out-of-range bounds clamp to [0, length] when ascending and to
// [-1, length-1] when descending.
//
// The returned triple is absolute: feeding it back into Normalize would
// change its meaning (a descending stop of -1 would wrap), so composed
// triples are never re-normalized.
func (b Bounds) Normalize(length int) (start, stop, step int, err error) {
	step = b.Step
	if step == None {
		step = 1
	}
	if step == 0 {
		return 0, 0, 0, ErrZeroStep
	}

	var lower, upper int
	if step > 0 {
		lower, upper = 0, length
	} else {
		lower, upper = -1, length-1
	}

	start = b.Start
	if start == None {
		if step > 0 {
			start = lower
		} else {
			start = upper
		}
	} else {
		if start < 0 {
			start += length
		}
		start = clamp(start, lower, upper)
	}

	stop = b.Stop
	if stop == None {
		if step > 0 {
			stop = upper
		} else {
			stop = lower
		}
	} else {
		if stop < 0 {
			stop += length
		}
		stop = clamp(stop, lower, upper)
	}

	return start, stop, step, nil
}

func clamp(v, lower, upper int) int {
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}

// RangeLength reports the number of integers in the arithmetic progression
// start, start+step, ... strictly before stop, using the sign of step to
// pick the comparison direction. Zero if the progression is empty.
func RangeLength(start, stop, step int) int {
	if step > 0 {
		if stop <= start {
			return 0
		}
		return (stop - start + step - 1) / step
	}
	if stop >= start {
		return 0
	}
	return (start - stop - step - 1) / -step
}

// ResolveIndex maps a relative index to an absolute one: i must lie in
// [-length, length-1]; negative values count from the end.
func ResolveIndex(i, length int) (int, error) {
	if i < 0 {
		i += length
	}
	if i < 0 || i >= length {
		return 0, ErrIndexOutOfRange
	}
	return i, nil
}
