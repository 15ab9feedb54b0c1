package views

import (
	"fmt"
	"iter"
	"slices"

	"lens/lists"
	"lens/seqs"
)

// Item is one element of a literal view expression: either a plain literal
// value or an existing collection embedded verbatim. Build items with Lit
// and Embed.
type Item struct {
	value   any
	chained bool
}

// Lit tags v as a single literal element of the view being built.
func Lit(v any) Item { return Item{value: v} }

// Embed tags collection as an existing sequence to splice into the view
// unchanged, without copying its elements.
func Embed(collection any) Item { return Item{value: collection, chained: true} }

// Of builds a Chain from a flat item list mixing literals and embedded
// collections:
//
//	v, err := views.Of(
//		views.Embed(views.Ints(0, 3, 1)),
//		views.Lit(nil),
//		views.Embed("abc"),
//		views.Lit("Hi!"),
//	)
//
// Each maximal run of literals becomes one concrete ordered container (a
// lists.ArrayList); each embedded collection becomes a part referencing the
// original object, adapted through AsSequence. A Bounds value in literal
// position fails with ErrChainSyntax: chain markers carry no bounds.
func Of(items ...Item) (*Chain[any], error) {
	var parts []Sequence[any]
	run := lists.NewArrayList[any](0)
	flush := func() {
		if run.Len() > 0 {
			parts = append(parts, run)
			run = lists.NewArrayList[any](0)
		}
	}

	for i, it := range items {
		if it.chained {
			s, err := AsSequence(it.value)
			if err != nil {
				return nil, fmt.Errorf("item %d cannot be chained: %w", i, err)
			}
			flush()
			parts = append(parts, s)
			continue
		}
		if b, ok := it.value.(Bounds); ok {
			return nil, fmt.Errorf("%w: literal bounds %v at item %d", ErrChainSyntax, b, i)
		}
		run.Add(it.value)
	}
	flush()

	return NewChain(parts...)
}

// Gen is the lazily flattening variant of Of: instead of a view it builds
// an iterator over the expression, and embedded values may additionally be
// element streams (iter.Seq[any]), which are flattened inline rather than
// embedded as structured parts. Anything AsSequence accepts is also
// accepted and iterated in order.
//
// The result is lazy; embedded streams are not consumed until the returned
// iterator is ranged over.
func Gen(items ...Item) (iter.Seq[any], error) {
	var parts []iter.Seq[any]
	var run []any
	flush := func() {
		if len(run) > 0 {
			parts = append(parts, slices.Values(slices.Clone(run)))
			run = run[:0]
		}
	}

	for i, it := range items {
		if it.chained {
			s, err := asIterable(it.value)
			if err != nil {
				return nil, fmt.Errorf("item %d cannot be chained: %w", i, err)
			}
			flush()
			parts = append(parts, s)
			continue
		}
		if b, ok := it.value.(Bounds); ok {
			return nil, fmt.Errorf("%w: literal bounds %v at item %d", ErrChainSyntax, b, i)
		}
		run = append(run, it.value)
	}
	flush()

	return seqs.Concat(parts...), nil
}

func asIterable(v any) (iter.Seq[any], error) {
	switch s := v.(type) {
	case iter.Seq[any]:
		return s, nil
	case func(func(any) bool):
		return s, nil
	}
	s, err := AsSequence(v)
	if err != nil {
		return nil, err
	}
	return Values(s), nil
}
