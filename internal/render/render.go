// Package render formats queue contents for String and GoString.
package render

import (
	"fmt"
	"iter"
	"strings"
)

// Join formats each element of seq with verb and joins them with sep.
func Join[T any](seq iter.Seq[T], verb, sep string) string {
	var sb strings.Builder
	first := true
	for v := range seq {
		if !first {
			sb.WriteString(sep)
		}
		first = false
		fmt.Fprintf(&sb, verb, v)
	}
	return sb.String()
}

// Markers renders seq between the left and right markers, e.g. "<< 1 < 2 <<".
// Every element is followed by a space, so sep carries only its trailing
// space. An empty sequence renders as the two markers separated by one space.
func Markers[T any](left string, seq iter.Seq[T], sep, right string) string {
	var sb strings.Builder
	sb.WriteString(left)
	sb.WriteString(" ")
	first := true
	for v := range seq {
		if !first {
			sb.WriteString(sep)
		}
		first = false
		fmt.Fprintf(&sb, "%v ", v)
	}
	sb.WriteString(right)
	return sb.String()
}

// Call renders seq as a constructor call, e.g. `fifo.Of(1, "a")`.
func Call[T any](fn string, seq iter.Seq[T]) string {
	return fn + "(" + Join(seq, "%#v", ", ") + ")"
}
