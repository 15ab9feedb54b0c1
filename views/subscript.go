package views

import (
	"fmt"
	"math"
)

// Indexer is implemented by values that convert to an integer index on
// demand, mirroring the integer-conversion protocol of the source
// ecosystem.
type Indexer interface {
	Index() int
}

// Subscript applies a dynamic subscript to a view: any integer kind (or an
// Indexer) selects a single element, a Bounds selects a sub-view. Exactly
// one subscript is accepted; more than one fails with ErrMultiIndex, since
// views are one-dimensional. Any other subscript type fails with
// ErrBadSubscript.
func Subscript[T any](v View[T], subs ...any) (any, error) {
	if len(subs) != 1 {
		return nil, ErrMultiIndex
	}
	switch s := subs[0].(type) {
	case Bounds:
		return v.Slice(s)
	case Indexer:
		return v.Get(s.Index())
	case int:
		return v.Get(s)
	case int8:
		return v.Get(int(s))
	case int16:
		return v.Get(int(s))
	case int32:
		return v.Get(int(s))
	case int64:
		return v.Get(int(s))
	case uint:
		if uint64(s) > math.MaxInt {
			return nil, ErrIndexOutOfRange
		}
		return v.Get(int(s))
	case uint8:
		return v.Get(int(s))
	case uint16:
		return v.Get(int(s))
	case uint32:
		return v.Get(int(s))
	case uint64:
		if s > math.MaxInt {
			return nil, ErrIndexOutOfRange
		}
		return v.Get(int(s))
	default:
		return nil, fmt.Errorf("%w, got '%T'", ErrBadSubscript, subs[0])
	}
}
