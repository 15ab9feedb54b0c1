package seqs

import "iter"

// Concat yields the elements of each sequence in order, as one sequence.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// FlatMap maps each element of source to a sequence and yields the
// elements of those sequences in order.
func FlatMap[S any, T any](source iter.Seq[S], f func(S) iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for s := range source {
			for t := range f(s) {
				if !yield(t) {
					return
				}
			}
		}
	}
}
