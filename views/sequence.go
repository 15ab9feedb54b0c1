package views

import (
	"fmt"
	"reflect"
)

// Sequence is the capability an underlying collection must provide: a
// length and positional element access. Get accepts the same negative-index
// convention as the views themselves (-1 is the last element).
//
// The core never mutates a Sequence and never copies its elements; a view
// holds the Sequence for its lifetime and re-reads Len on every access to
// detect external mutation.
type Sequence[T any] interface {
	Len() int
	Get(i int) (T, error)
}

// View is a read-only, lazily evaluated projection over one or more
// Sequences. Seq and Chain are the two implementations. Every View is
// itself a Sequence, so views nest freely.
type View[T any] interface {
	Sequence[T]

	// Slice returns a new View selecting the given bounds of this view.
	// The receiver is never mutated.
	Slice(b Bounds) (View[T], error)

	// Deps reports the sequences this view was built directly from:
	// one element for a Seq, the parts for a Chain. Advisory metadata.
	Deps() []Sequence[T]

	fmt.Stringer
}

// SliceOf wraps a Go slice as a Sequence. The wrapper keeps the slice
// header, so its length is fixed; use SlicePtr when external truncation
// must remain observable.
func SliceOf[T any](data []T) Sequence[T] { return sliceSeq[T]{data} }

type sliceSeq[T any] struct{ data []T }

func (s sliceSeq[T]) Len() int { return len(s.data) }

func (s sliceSeq[T]) Get(i int) (T, error) {
	j, err := ResolveIndex(i, len(s.data))
	if err != nil {
		var zero T
		return zero, err
	}
	return s.data[j], nil
}

// SlicePtr wraps a pointer to a Go slice as a Sequence with a live length:
// assigning a shorter or longer slice through the pointer is visible to
// views and trips their staleness check.
func SlicePtr[T any](data *[]T) Sequence[T] { return slicePtrSeq[T]{data} }

type slicePtrSeq[T any] struct{ data *[]T }

func (s slicePtrSeq[T]) Len() int { return len(*s.data) }

func (s slicePtrSeq[T]) Get(i int) (T, error) {
	j, err := ResolveIndex(i, len(*s.data))
	if err != nil {
		var zero T
		return zero, err
	}
	return (*s.data)[j], nil
}

// Str wraps a string as a rune-addressable Sequence. The rune conversion
// happens once, up front; the adapter, not the view, pays the copy.
func Str(s string) Sequence[rune] { return stringSeq{[]rune(s)} }

type stringSeq struct{ runes []rune }

func (s stringSeq) Len() int { return len(s.runes) }

func (s stringSeq) Get(i int) (rune, error) {
	j, err := ResolveIndex(i, len(s.runes))
	if err != nil {
		return 0, err
	}
	return s.runes[j], nil
}

// Ints is an arithmetic progression as an O(1) indexable Sequence:
// start, start+step, ... strictly before stop. Panics on a zero step,
// which is a programmer error.
func Ints(start, stop, step int) Sequence[int] {
	if step == 0 {
		panic("views: Ints step cannot be zero")
	}
	return intsSeq{start, step, RangeLength(start, stop, step)}
}

type intsSeq struct {
	start, step, length int
}

func (s intsSeq) Len() int { return s.length }

func (s intsSeq) Get(i int) (int, error) {
	j, err := ResolveIndex(i, s.length)
	if err != nil {
		return 0, err
	}
	return s.start + j*s.step, nil
}

// AnyOf erases the element type of a Sequence, so typed collections can
// take part in heterogeneous chains.
func AnyOf[T any](src Sequence[T]) Sequence[any] { return anySeq[T]{src} }

type anySeq[T any] struct{ src Sequence[T] }

func (s anySeq[T]) Len() int { return s.src.Len() }

func (s anySeq[T]) Get(i int) (any, error) { return s.src.Get(i) }

// AsSequence adapts an arbitrary value to a Sequence[any]:
//
//   - a Sequence[any] (including any View[any]) is returned as is
//   - a Sequence over int, rune, string or float64 is erased via AnyOf;
//     other element types need an explicit AnyOf at the call site
//   - a string becomes rune-addressable via Str
//   - a Go slice or array is wrapped via reflection
//   - a pointer to a slice or array is wrapped with a live length
//
// Anything else fails with ErrNotSequence, naming the concrete type.
func AsSequence(v any) (Sequence[any], error) {
	switch s := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: untyped nil", ErrNotSequence)
	case Sequence[any]:
		return s, nil
	case Sequence[int]:
		return AnyOf(s), nil
	case Sequence[rune]:
		return AnyOf(s), nil
	case Sequence[string]:
		return AnyOf(s), nil
	case Sequence[float64]:
		return AnyOf(s), nil
	case string:
		return AnyOf(Str(s)), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return reflectSeq{rv}, nil
	case reflect.Pointer:
		switch rv.Type().Elem().Kind() {
		case reflect.Slice, reflect.Array:
			if !rv.IsNil() {
				return reflectPtrSeq{rv}, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: '%T'", ErrNotSequence, v)
}

type reflectSeq struct{ rv reflect.Value }

func (s reflectSeq) Len() int { return s.rv.Len() }

func (s reflectSeq) Get(i int) (any, error) {
	j, err := ResolveIndex(i, s.rv.Len())
	if err != nil {
		return nil, err
	}
	return s.rv.Index(j).Interface(), nil
}

type reflectPtrSeq struct{ rv reflect.Value }

func (s reflectPtrSeq) Len() int { return s.rv.Elem().Len() }

func (s reflectPtrSeq) Get(i int) (any, error) {
	elem := s.rv.Elem()
	j, err := ResolveIndex(i, elem.Len())
	if err != nil {
		return nil, err
	}
	return elem.Index(j).Interface(), nil
}
