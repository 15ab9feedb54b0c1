package lists

import "iter"

// List defines a generic mutable ordered container supporting positional
// access. T can be any type.
//
// Len and Get together satisfy the sequence capability consumed by the
// lens/views package, so any List can back a lazy view directly; mutating
// a List's length while views over it exist is detected by the views'
// staleness check on their next access.
type List[T any] interface {
	// -------------------------------------------------------
	// Basic Operations
	// -------------------------------------------------------

	// Add appends one or more elements to the end of the list.
	Add(values ...T)

	// Insert inserts an element at the specified index.
	// Returns an error if index < 0 or index > Len().
	Insert(index int, value T) error

	// Remove removes and returns the element at the specified index.
	// A negative index counts from the end.
	Remove(index int) (T, error)

	// Set modifies the element at the specified index.
	// A negative index counts from the end.
	Set(index int, value T) error

	// Get retrieves the element at the specified index.
	// A negative index counts from the end: Get(-1) is the last element.
	Get(index int) (T, error)

	// -------------------------------------------------------
	// Query Operations
	// -------------------------------------------------------

	// Len returns the current number of elements in the list.
	Len() int

	// IsEmpty checks if the list is empty.
	IsEmpty() bool

	// Clear clears the list and releases memory.
	Clear()

	// -------------------------------------------------------
	// Transformation & Iteration
	// -------------------------------------------------------

	// ToSlice copies the list into a native slice.
	// This is an "escape hatch" for falling back to standard library
	// operations; views over the list never read through it.
	ToSlice() []T

	// Values iterates the elements in order.
	Values() iter.Seq[T]

	// All iterates (index, element) pairs in order.
	All() iter.Seq2[int, T]
}
