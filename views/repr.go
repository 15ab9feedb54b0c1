package views

import (
	"fmt"
	"strings"
)

// Display thresholds for the String form of a view. Views no longer than
// ReprItems render all elements; longer views render ReprHead elements, an
// ellipsis, then ReprTail elements.
var (
	ReprItems = 10
	ReprHead  = 5
	ReprTail  = 4
)

// formatView renders "<sequence view N: [...] >". A view whose access
// fails (typically stale) renders the error in place of the elements.
func formatView[T any](v View[T]) string {
	n := v.Len()
	if n <= ReprItems {
		elems, err := Collect[T](v)
		if err != nil {
			return fmt.Sprintf("<sequence view %d: %v >", n, err)
		}
		return fmt.Sprintf("<sequence view %d: %v >", n, elems)
	}

	items := make([]string, 0, ReprHead+ReprTail+1)
	for i := 0; i < ReprHead; i++ {
		e, err := v.Get(i)
		if err != nil {
			return fmt.Sprintf("<sequence view %d: %v >", n, err)
		}
		items = append(items, fmt.Sprint(e))
	}
	items = append(items, "...")
	for i := n - ReprTail; i < n; i++ {
		e, err := v.Get(i)
		if err != nil {
			return fmt.Sprintf("<sequence view %d: %v >", n, err)
		}
		items = append(items, fmt.Sprint(e))
	}
	return fmt.Sprintf("<sequence view %d: [%s] >", n, strings.Join(items, " "))
}
