package views

import (
	"fmt"
	"slices"
)

// Chain is a concatenation view presenting N parts as one logically
// contiguous sequence. Parts may be plain collections or other views, so
// chains nest to arbitrary depth. The total length is recorded at
// construction and re-validated against the parts on every indexed access.
type Chain[T any] struct {
	parts  []Sequence[T]
	length int
}

// NewChain builds a concatenation view over the given parts. A nil part
// fails with ErrNotSequence. NewChain() is the valid empty chain.
func NewChain[T any](parts ...Sequence[T]) (*Chain[T], error) {
	total := 0
	for i, p := range parts {
		if p == nil {
			return nil, fmt.Errorf("%w: part %d is nil", ErrNotSequence, i)
		}
		total += p.Len()
	}
	return &Chain[T]{parts: slices.Clone(parts), length: total}, nil
}

// ChainOf builds a heterogeneous concatenation view, adapting each part
// through AsSequence. It is the mixed-element-type entry point:
//
//	ChainOf([]int{0, 1, 2}, "abc")
//
// yields a six-element view of three ints followed by three runes.
func ChainOf(parts ...any) (*Chain[any], error) {
	adapted := make([]Sequence[any], len(parts))
	for i, p := range parts {
		s, err := AsSequence(p)
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}
		adapted[i] = s
	}
	return NewChain(adapted...)
}

// Len reports the recorded total length. O(1).
func (c *Chain[T]) Len() int { return c.length }

// Deps reports the chain's parts in order.
func (c *Chain[T]) Deps() []Sequence[T] { return slices.Clone(c.parts) }

// Get returns the element at chain index i, which may be negative counting
// from the end. The owning part is located by walking all parts and
// accumulating lengths; the accumulated total is then compared against the
// recorded length, so a length change in any part fails the access with
// ErrLengthChanged even when the queried index lives in an untouched part.
func (c *Chain[T]) Get(i int) (T, error) {
	var zero T
	j, err := ResolveIndex(i, c.length)
	if err != nil {
		return zero, err
	}

	running := 0
	owner, local := -1, 0
	for k, p := range c.parts {
		next := running + p.Len()
		if running <= j && j < next {
			owner, local = k, j-running
		}
		running = next
	}
	if running != c.length || owner < 0 {
		return zero, ErrLengthChanged
	}
	return c.parts[owner].Get(local)
}

// Slice wraps the chain itself in a Seq with the given bounds, so slice
// normalization and composition are uniform across both view kinds.
func (c *Chain[T]) Slice(b Bounds) (View[T], error) {
	s, err := NewSeq[T](c, b)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// String implements fmt.Stringer via the shared view formatter.
func (c *Chain[T]) String() string { return formatView[T](c) }
