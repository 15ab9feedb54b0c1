package views

import "iter"

// Values yields the elements of s in order as an iter.Seq. Iteration stops
// silently if an access fails (for example when the view has gone stale);
// use TryValues when the error matters.
func Values[T any](s Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		n := s.Len()
		for i := 0; i < n; i++ {
			v, err := s.Get(i)
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// TryValues yields (element, nil) pairs in order. If an access fails, the
// error is yielded with a zero element and iteration stops.
func TryValues[T any](s Sequence[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		n := s.Len()
		for i := 0; i < n; i++ {
			v, err := s.Get(i)
			if err != nil {
				yield(v, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Collect snapshots the elements of s into a new slice. This is the one
// place the package copies elements, and only at the caller's request.
func Collect[T any](s Sequence[T]) ([]T, error) {
	n := s.Len()
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := s.Get(i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
