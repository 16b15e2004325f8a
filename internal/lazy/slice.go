package lazy

// Slice adapts a Go slice into a random-access Domain.
type Slice[T any] []T

func (s Slice[T]) Size() int { return len(s) }

func (s Slice[T]) Start() Forward[T] {
	return &SliceCursor[T]{s: s}
}

// SliceCursor walks a Slice.
type SliceCursor[T any] struct {
	s []T
	i int
}

func (c *SliceCursor[T]) Value() T      { return c.s[c.i] }
func (c *SliceCursor[T]) Next()         { c.i++ }
func (c *SliceCursor[T]) Prev()         { c.i-- }
func (c *SliceCursor[T]) Advance(k int) { c.i += k }
func (c *SliceCursor[T]) Pos() int      { return c.i }
func (c *SliceCursor[T]) Done() bool    { return c.i >= len(c.s) }
