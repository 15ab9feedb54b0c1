/*
Package views provides a small algebra of lazy sequence views: read-only,
index-addressable projections over one or more underlying ordered
collections, composable by slicing and concatenation without copying a
single element.

# View kinds

  - [Seq]: a windowed, strided view over exactly one collection. Re-slicing
    composes offsets and strides arithmetically and never touches the
    collection.
  - [Chain]: a concatenation view presenting N parts as one contiguous
    sequence. Slicing a chain wraps it in a [Seq], so slice semantics are
    uniform across both kinds.

Anything with a length and positional access can back a view: the
[Sequence] capability is satisfied by the adapters here ([SliceOf],
[SlicePtr], [Str], [Ints], [AsSequence]), by lens/lists containers, and by
the views themselves, so views nest freely.

# Staleness

A view records its dependencies' lengths at construction and re-checks them
on every access. Mutating an underlying collection's length after the view
was built turns the next access into a deterministic [ErrLengthChanged]
instead of undefined behavior. The check is a staleness detector, not a
lock.

# Literal construction

[Of] builds a view from a flat expression mixing literal elements and
embedded collections; [Gen] is the lazy variant producing an iterator and
additionally accepting element streams:

	v, _ := views.Of(views.Embed([]int{0, 1, 2}), views.Lit(7))
	fmt.Println(v) // <sequence view 4: [0 1 2 7] >

# Errors

All failures are sentinel errors matched with errors.Is; see [ErrNotSequence],
[ErrIndexOutOfRange], [ErrLengthChanged], [ErrMultiIndex], [ErrZeroStep],
[ErrBadSubscript] and [ErrChainSyntax]. Nothing panics on user input, and a
failed access leaves every view unchanged.
*/
package views
