// Package render formats the contents of linear containers for debugging.
package render

import (
	"fmt"
	"iter"
	"strings"
)

// Empty is rendered for a container with no elements.
const Empty = "empty"

// Join renders the values of seq separated by ", ", or Empty when seq
// yields nothing.
func Join[T any](seq iter.Seq[T]) string {
	var b strings.Builder
	n := 0
	for v := range seq {
		if n > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
		n++
	}
	if n == 0 {
		return Empty
	}
	return b.String()
}
