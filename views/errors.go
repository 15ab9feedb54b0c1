package views

import "errors"

// Sentinel error set for the views package. All operations return these
// sentinels (possibly wrapped with fmt.Errorf("...: %w") for context) and
// callers match them with errors.Is.
var (
	// ErrNotSequence is returned when a value offered as an underlying
	// collection, or as a chain part, does not provide length plus
	// positional access. Wrapping sites name the offending concrete type.
	ErrNotSequence = errors.New("views: object is not a sequence")

	// ErrMultiIndex is returned when a structured (multi-dimensional)
	// subscript is supplied. Views are strictly one-dimensional.
	ErrMultiIndex = errors.New("views: multi-indices not supported")

	// ErrIndexOutOfRange is returned when a resolved index falls outside
	// [0, Len()) after negative-index resolution.
	ErrIndexOutOfRange = errors.New("views: index out of range")

	// ErrLengthChanged is returned when an access-time check finds that the
	// length of an underlying collection (or of any chain part) differs
	// from the length recorded when the view was constructed.
	ErrLengthChanged = errors.New("views: length of underlying sequence has changed")

	// ErrZeroStep is returned when a Bounds triple carries a step of zero.
	ErrZeroStep = errors.New("views: slice step cannot be zero")

	// ErrBadSubscript is returned by Subscript for values that are neither
	// an integer, a Bounds, nor an Indexer.
	ErrBadSubscript = errors.New("views: index must be an integer, a Bounds or have an Index method")

	// ErrChainSyntax is returned by the literal builders when a Bounds
	// value appears in literal position: a chain marker carries no bounds.
	ErrChainSyntax = errors.New("views: invalid syntax in chain expression")
)
