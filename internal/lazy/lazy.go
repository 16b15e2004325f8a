package lazy

import "iter"

// Forward is a cursor that can only move towards the end of its sequence.
type Forward[T any] interface {
	Value() T
	Next()
	Done() bool
}

// Bidirectional is a cursor that can also step backward.
type Bidirectional[T any] interface {
	Forward[T]
	Prev()
}

// RandomAccess is a cursor that can jump by arbitrary offsets. Pos is the
// zero-based index of the current element.
type RandomAccess[T any] interface {
	Bidirectional[T]
	Advance(k int)
	Pos() int
}

// Domain is a finite sequence that can hand out fresh cursors positioned at
// its first element.
type Domain[T any] interface {
	Size() int
	Start() Forward[T]
}

// Distance returns the signed number of steps from a to b.
func Distance[T any](a, b RandomAccess[T]) int {
	return b.Pos() - a.Pos()
}

// All adapts a cursor into a range-over-func sequence. Iteration consumes
// the cursor.
func All[T any](c Forward[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for ; !c.Done(); c.Next() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// Collect drains c into a slice.
func Collect[T any](c Forward[T]) []T {
	var out []T
	for v := range All(c) {
		out = append(out, v)
	}
	return out
}
