package grid

import (
	"fmt"
	"iter"

	"github.com/san-kum/colormap/internal/lazy"
)

// Range is a closed interval [Lo, Hi]. Lo may exceed Hi for descending axes.
type Range struct {
	Lo, Hi float64
}

// Axis is a one-dimensional grid of N evenly spaced samples from lo to hi.
type Axis struct {
	n     int
	begin AxisCursor
}

// NewAxis returns an axis of n samples spanning [lo, hi].
func NewAxis(n int, lo, hi float64) (Axis, error) {
	if n < 2 {
		return Axis{}, fmt.Errorf("%w: axis needs at least 2 points, got %d", ErrInvalidGrid, n)
	}
	step := (hi - lo) / float64(n-1)
	return Axis{
		n:     n,
		begin: AxisCursor{step: step, i: 0, n: n, x: lo},
	}, nil
}

// MustAxis is like NewAxis but panics on error.
func MustAxis(n int, lo, hi float64) Axis {
	a, err := NewAxis(n, lo, hi)
	if err != nil {
		panic(err)
	}
	return a
}

// Begin returns a cursor at the first sample.
func (a Axis) Begin() AxisCursor { return a.begin }

// End returns a cursor one past the last sample.
func (a Axis) End() AxisCursor {
	c := a.begin
	c.SetToEnd()
	return c
}

// Front returns the first sample.
func (a Axis) Front() float64 { return a.begin.x }

// Back returns the last sample.
func (a Axis) Back() float64 {
	c := a.begin
	c.Advance(a.n - 1)
	return c.x
}

func (a Axis) Size() int { return a.n }

// Step returns the spacing between neighbouring samples.
func (a Axis) Step() float64 { return a.begin.step }

func (a Axis) Range() Range { return Range{a.Front(), a.Back()} }

// Start implements lazy.Domain.
func (a Axis) Start() lazy.Forward[float64] {
	c := a.begin
	return &c
}

// All iterates over the samples in order.
func (a Axis) All() iter.Seq[float64] {
	return lazy.All(a.Start())
}

// AxisCursor is a position on an Axis. The zero-based index is exact; the
// sample value is carried along and updated by adding the step, so long
// walks accumulate rounding error.
type AxisCursor struct {
	step float64
	i    int
	n    int
	x    float64
}

// Value returns the sample at the cursor.
func (c *AxisCursor) Value() float64 { return c.x }

func (c *AxisCursor) Next() {
	c.i++
	c.x += c.step
}

func (c *AxisCursor) Prev() {
	c.i--
	c.x -= c.step
}

// Advance moves the cursor by k samples; k may be negative.
func (c *AxisCursor) Advance(k int) {
	c.i += k
	c.x += float64(k) * c.step
}

// Pos returns the index of the cursor.
func (c *AxisCursor) Pos() int { return c.i }

// Done reports whether the cursor is one past the last sample.
func (c *AxisCursor) Done() bool { return c.IsEnd() }

func (c *AxisCursor) IsBegin() bool { return c.i == 0 }
func (c *AxisCursor) IsEnd() bool   { return c.i == c.n }

// InBulk reports whether the cursor is strictly inside the axis, i.e.
// neither on the first nor on the last sample.
func (c *AxisCursor) InBulk() bool { return c.i > 0 && c.i < c.n-1 }

// Reset moves the cursor back to the first sample.
func (c *AxisCursor) Reset() { c.Advance(-c.i) }

// SetToEnd moves the cursor one past the last sample.
func (c *AxisCursor) SetToEnd() { c.Advance(c.n - c.i) }

// MoveForward steps forward, wrapping from the last sample to the first.
func (c *AxisCursor) MoveForward() {
	c.Next()
	if c.IsEnd() {
		c.Reset()
	}
}

// MoveBackward steps backward, wrapping from the first sample to the last.
func (c *AxisCursor) MoveBackward() {
	if c.IsBegin() {
		c.Advance(c.n - 1)
		return
	}
	c.Prev()
}

func (c *AxisCursor) Size() int { return c.n }

// Range reconstructs the interval of the axis from the cursor's own value
// and index.
func (c *AxisCursor) Range() Range {
	return Range{
		Lo: c.x - float64(c.i)*c.step,
		Hi: c.x + float64(c.n-1-c.i)*c.step,
	}
}

// Distance returns the signed number of steps from c to o.
func (c *AxisCursor) Distance(o *AxisCursor) int { return o.i - c.i }

// Compare orders cursors by index.
func (c *AxisCursor) Compare(o *AxisCursor) int {
	switch {
	case c.i < o.i:
		return -1
	case c.i > o.i:
		return 1
	}
	return 0
}

func (c *AxisCursor) Equal(o *AxisCursor) bool { return c.i == o.i }
func (c *AxisCursor) Less(o *AxisCursor) bool  { return c.i < o.i }
