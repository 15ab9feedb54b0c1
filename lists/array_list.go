package lists

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrIndexOutOfBounds is returned by positional operations when the index
// falls outside the valid range after negative-index resolution.
var ErrIndexOutOfBounds = errors.New("lists: index out of bounds")

// ArrayList is a slice-backed List implementation with O(1) positional
// access, which makes it a natural backing store for lazy views.
type ArrayList[T any] struct {
	data []T
}

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

// NewArrayListOf builds a list pre-populated with the given values.
func NewArrayListOf[T any](values ...T) *ArrayList[T] {
	return &ArrayList[T]{data: slices.Clone(values)}
}

// resolve maps a possibly negative index to an absolute one.
// ok is false when the index is out of bounds.
func (al *ArrayList[T]) resolve(index int) (int, bool) {
	if index < 0 {
		index += len(al.data)
	}
	if index < 0 || index >= len(al.data) {
		return 0, false
	}
	return index, true
}

func (al *ArrayList[T]) Add(values ...T) {
	al.data = append(al.data, values...)
}

func (al *ArrayList[T]) Insert(index int, value T) error {
	if index < 0 || index > len(al.data) {
		return ErrIndexOutOfBounds
	}

	var zero T
	al.data = append(al.data, zero)
	copy(al.data[index+1:], al.data[index:])
	al.data[index] = value
	return nil
}

// InsertAll inserts multiple elements at the specified index.
// Performs at most one allocation and one memory shift.
func (al *ArrayList[T]) InsertAll(index int, values ...T) error {
	if index < 0 || index > len(al.data) {
		return ErrIndexOutOfBounds
	}

	n := len(values)
	if n == 0 {
		return nil
	}

	oldLen := len(al.data)
	newLen := oldLen + n

	if newLen > cap(al.data) {
		newCap := max(newLen, 2*oldLen)
		newItems := make([]T, newLen, newCap)

		copy(newItems, al.data[:index])
		copy(newItems[index+n:], al.data[index:])
		copy(newItems[index:], values)
		al.data = newItems
	} else {
		// enough capacity, in-place shift
		al.data = al.data[:newLen]
		copy(al.data[index+n:], al.data[index:])
		copy(al.data[index:], values)
	}

	return nil
}

func (al *ArrayList[T]) Get(index int) (T, error) {
	i, ok := al.resolve(index)
	if !ok {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return al.data[i], nil
}

func (al *ArrayList[T]) Set(index int, value T) error {
	i, ok := al.resolve(index)
	if !ok {
		return ErrIndexOutOfBounds
	}
	al.data[i] = value
	return nil
}

func (al *ArrayList[T]) Remove(index int) (T, error) {
	i, ok := al.resolve(index)
	if !ok {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	removed := al.data[i]
	copy(al.data[i:], al.data[i+1:])
	// clear the last element, let it be GCed
	clear(al.data[len(al.data)-1:])
	al.data = al.data[:len(al.data)-1]
	return removed, nil
}

// RemoveRange removes elements from index 'start' (inclusive) to 'end' (exclusive).
func (al *ArrayList[T]) RemoveRange(start, end int) error {
	if start < 0 || end > len(al.data) || start > end {
		return ErrIndexOutOfBounds
	}
	if start == end {
		return nil
	}

	copy(al.data[start:], al.data[end:])

	// Clear the tail to prevent memory leaks
	newLen := len(al.data) - (end - start)
	clear(al.data[newLen:])
	al.data = al.data[:newLen]
	return nil
}

// Truncate shortens the list to at most n elements. A no-op when the list
// is already that short.
func (al *ArrayList[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= len(al.data) {
		return
	}
	clear(al.data[n:])
	al.data = al.data[:n]
}

func (al *ArrayList[T]) Len() int {
	return len(al.data)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return len(al.data) == 0
}

func (al *ArrayList[T]) Clear() {
	// clear the underlying array to let elements be GCed
	clear(al.data)
	al.data = al.data[:0]
}

func (al *ArrayList[T]) ToSlice() []T {
	return slices.Clone(al.data)
}

// Clone returns a shallow copy of the list.
// Note: If T is a pointer or reference type, the referenced data is shared.
func (al *ArrayList[T]) Clone() List[T] {
	return &ArrayList[T]{data: slices.Clone(al.data)}
}

// String implements fmt.Stringer for easier debugging.
func (al *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", al.data)
}

func (al *ArrayList[T]) Values() iter.Seq[T] {
	return slices.Values(al.data)
}

func (al *ArrayList[T]) All() iter.Seq2[int, T] {
	return slices.All(al.data)
}

func (al *ArrayList[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(al.data)
}
