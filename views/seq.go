package views

// Seq is a windowed, strided view over exactly one underlying Sequence.
// It records the collection's length at construction time and fails every
// later access with ErrLengthChanged if that length drifts.
//
// A Seq is an immutable value-like handle: slicing always produces a new
// Seq over the same collection, with the bounds composed arithmetically and
// no element ever copied.
type Seq[T any] struct {
	src     Sequence[T]
	lenOrig int

	// Absolute, pre-normalized mapping from view index i to the
	// collection index start + i*step. stop is kept for composition only.
	start, stop, step int

	length int
}

// NewSeq builds a view over src selecting the given bounds, normalized
// against the collection's current length.
func NewSeq[T any](src Sequence[T], b Bounds) (*Seq[T], error) {
	if src == nil {
		return nil, ErrNotSequence
	}
	n := src.Len()
	start, stop, step, err := b.Normalize(n)
	if err != nil {
		return nil, err
	}
	return &Seq[T]{
		src:     src,
		lenOrig: n,
		start:   start,
		stop:    stop,
		step:    step,
		length:  RangeLength(start, stop, step),
	}, nil
}

// Len reports the number of elements the view selects. O(1).
func (s *Seq[T]) Len() int { return s.length }

// Deps reports the single underlying collection.
func (s *Seq[T]) Deps() []Sequence[T] { return []Sequence[T]{s.src} }

func (s *Seq[T]) stale() error {
	if s.src.Len() != s.lenOrig {
		return ErrLengthChanged
	}
	return nil
}

// Get returns the element at view index i, which may be negative counting
// from the end. Fails with ErrLengthChanged if the underlying collection's
// length has drifted since construction, and with ErrIndexOutOfRange if i
// resolves outside [0, Len()).
func (s *Seq[T]) Get(i int) (T, error) {
	var zero T
	if err := s.stale(); err != nil {
		return zero, err
	}
	j, err := ResolveIndex(i, s.length)
	if err != nil {
		return zero, err
	}
	return s.src.Get(s.start + j*s.step)
}

// Slice returns a new Seq over the same underlying collection, with b
// normalized against the view's own length and composed onto the current
// triple. The composition is exact index arithmetic, so re-slicing is
// associative: v.Slice(a).Slice(b) selects element-for-element the same
// sequence as translating both bounds against the collection directly.
func (s *Seq[T]) Slice(b Bounds) (View[T], error) {
	if err := s.stale(); err != nil {
		return nil, err
	}
	bStart, bStop, bStep, err := b.Normalize(s.length)
	if err != nil {
		return nil, err
	}

	// stop is derived with the current step, not the composed one: the
	// composed window spans (bStop-bStart) of the current stride.
	start := s.start + bStart*s.step
	stop := start + s.step*(bStop-bStart)
	step := s.step * bStep

	// The composed triple is absolute and is installed without
	// re-normalization: a descending stop of -1 must stay -1.
	return &Seq[T]{
		src:     s.src,
		lenOrig: s.lenOrig,
		start:   start,
		stop:    stop,
		step:    step,
		length:  RangeLength(start, stop, step),
	}, nil
}

// String implements fmt.Stringer via the shared view formatter.
func (s *Seq[T]) String() string { return formatView[T](s) }
