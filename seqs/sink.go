package seqs

import "iter"

// First returns the first element of seq, or false if seq is empty.
func First[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}

// Last fully consumes seq and returns its final element, or false if seq
// is empty.
func Last[T any](seq iter.Seq[T]) (T, bool) {
	var last T
	found := false
	for v := range seq {
		last = v
		found = true
	}
	return last, found
}

// Count fully consumes seq and reports how many elements it yielded.
func Count[T any](seq iter.Seq[T]) int {
	count := 0
	for range seq {
		count++
	}
	return count
}
