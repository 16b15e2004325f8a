package grid

import (
	"fmt"
	"iter"

	"github.com/san-kum/colormap/internal/lazy"
)

// Order selects which axis of a Grid varies fastest.
type Order int

const (
	// RowMajor walks the last axis fastest.
	RowMajor Order = iota
	// ColMajor walks the first axis fastest.
	ColMajor
)

func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row"
	case ColMajor:
		return "col"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder accepts "row" or "col".
func ParseOrder(s string) (Order, error) {
	switch s {
	case "row", "row-major", "":
		return RowMajor, nil
	case "col", "column", "col-major":
		return ColMajor, nil
	}
	return 0, fmt.Errorf("grid: unknown order %q", s)
}

// Grid is the Cartesian product of a fixed list of axes.
type Grid struct {
	axes  []Axis
	order Order
	// walk lists axis indices from fastest to slowest varying.
	walk []int
}

// New returns a dim-dimensional grid over the given axes.
func New(dim int, order Order, axes ...Axis) (*Grid, error) {
	if dim < 1 {
		return nil, fmt.Errorf("%w: dimension must be positive, got %d", ErrInvalidGrid, dim)
	}
	if len(axes) != dim {
		return nil, fmt.Errorf("%w: %d axes for a %d-dimensional grid", ErrInvalidGrid, len(axes), dim)
	}
	for i, a := range axes {
		if a.n < 2 {
			return nil, fmt.Errorf("%w: axis %d is uninitialized", ErrInvalidGrid, i)
		}
	}

	walk := make([]int, dim)
	for k := range walk {
		if order == ColMajor {
			walk[k] = k
		} else {
			walk[k] = dim - 1 - k
		}
	}

	g := &Grid{
		axes:  append([]Axis(nil), axes...),
		order: order,
		walk:  walk,
	}
	return g, nil
}

func (g *Grid) Dim() int        { return len(g.axes) }
func (g *Grid) Order() Order    { return g.order }
func (g *Grid) Axis(i int) Axis { return g.axes[i] }

// Size returns the total number of grid points.
func (g *Grid) Size() int {
	prod := 1
	for _, a := range g.axes {
		prod *= a.n
	}
	return prod
}

// Shape returns the axis lengths in construction order.
func (g *Grid) Shape() []int {
	s := make([]int, len(g.axes))
	for i, a := range g.axes {
		s[i] = a.n
	}
	return s
}

// Ranges returns the axis intervals in construction order.
func (g *Grid) Ranges() []Range {
	r := make([]Range, len(g.axes))
	for i, a := range g.axes {
		r[i] = a.Range()
	}
	return r
}

// Begin returns a cursor at the first grid point.
func (g *Grid) Begin() *Cursor {
	c := &Cursor{g: g, its: make([]AxisCursor, len(g.axes))}
	for i, a := range g.axes {
		c.its[i] = a.begin
	}
	return c
}

// End returns the cursor one past the last grid point: the slowest axis is
// at its end and every other axis at its first sample.
func (g *Grid) End() *Cursor {
	c := g.Begin()
	c.its[g.walk[len(g.walk)-1]].SetToEnd()
	return c
}

// Start implements lazy.Domain.
func (g *Grid) Start() lazy.Forward[[]float64] { return g.Begin() }

// All iterates over the grid points in traversal order.
func (g *Grid) All() iter.Seq[[]float64] { return lazy.All[[]float64](g.Begin()) }

// Cursor is a position on a Grid, made of one AxisCursor per axis.
type Cursor struct {
	g   *Grid
	its []AxisCursor
}

// Clone returns an independent copy of c.
func (c *Cursor) Clone() *Cursor {
	return &Cursor{g: c.g, its: append([]AxisCursor(nil), c.its...)}
}

// Value returns the coordinates of the current point in axis construction
// order.
func (c *Cursor) Value() []float64 {
	p := make([]float64, len(c.its))
	for i := range c.its {
		p[i] = c.its[i].x
	}
	return p
}

// Indices returns the per-axis indices in axis construction order.
func (c *Cursor) Indices() []int {
	idx := make([]int, len(c.its))
	for i := range c.its {
		idx[i] = c.its[i].i
	}
	return idx
}

// Next advances to the following point. When the fastest axis runs off its
// end it is reset and the carry moves to the next slower axis. The slowest
// axis is never reset, so the walk stops at End.
func (c *Cursor) Next() {
	walk := c.g.walk
	last := len(walk) - 1
	it := &c.its[walk[0]]
	it.Next()
	for k := 0; it.IsEnd() && k < last; {
		it.Reset()
		k++
		it = &c.its[walk[k]]
		it.Next()
	}
}

// Prev steps back to the preceding point. An axis at its first sample wraps
// to its last and borrows from the next slower axis. Calling Prev on Begin
// leaves the cursor in an undefined position.
func (c *Cursor) Prev() {
	walk := c.g.walk
	last := len(walk) - 1
	for k := 0; k < last; k++ {
		it := &c.its[walk[k]]
		if !it.IsBegin() {
			it.Prev()
			return
		}
		it.Advance(it.n - 1)
	}
	c.its[walk[last]].Prev()
}

// Done reports whether c has reached End.
func (c *Cursor) Done() bool {
	return c.its[c.g.walk[len(c.g.walk)-1]].IsEnd()
}

// MoveForward steps a single axis forward with wrap-around, without carrying
// into other axes. Axes are numbered by variation speed: d = 0 is the
// fastest axis.
func (c *Cursor) MoveForward(d int) {
	c.its[c.g.walk[d]].MoveForward()
}

// MoveBackward is the reverse of MoveForward.
func (c *Cursor) MoveBackward(d int) {
	c.its[c.g.walk[d]].MoveBackward()
}

// InBulk reports whether the point is interior along every axis.
func (c *Cursor) InBulk() bool {
	for i := range c.its {
		if !c.its[i].InBulk() {
			return false
		}
	}
	return true
}

// Equal reports whether both cursors sit on the same point.
func (c *Cursor) Equal(o *Cursor) bool {
	for i := range c.its {
		if c.its[i].i != o.its[i].i {
			return false
		}
	}
	return true
}

// Compare orders cursors consistently with forward traversal: axes are
// compared from slowest to fastest and the first difference decides.
func (c *Cursor) Compare(o *Cursor) int {
	walk := c.g.walk
	for k := len(walk) - 1; k >= 0; k-- {
		if r := c.its[walk[k]].Compare(&o.its[walk[k]]); r != 0 {
			return r
		}
	}
	return 0
}

func (c *Cursor) Less(o *Cursor) bool { return c.Compare(o) < 0 }
