// Package grid provides evenly spaced sampling grids in any number of
// dimensions.
//
// The package defines:
//
//   - [Axis]: N >= 2 evenly spaced samples over a closed interval
//   - [AxisCursor]: a random-access position on an Axis
//   - [Grid]: the Cartesian product of several axes, walked in [RowMajor] or
//     [ColMajor] order
//   - [Cursor]: a bidirectional position on a Grid
//
// Under RowMajor the last axis varies fastest; under ColMajor the first axis
// does. Points are always reported in the order the axes were supplied.
//
// # Example
//
//	xs, _ := grid.NewAxis(701, -2.5, 1)
//	ys, _ := grid.NewAxis(401, 1, -1)
//	g, _ := grid.New(2, grid.ColMajor, xs, ys)
//	for p := range g.All() {
//	    x, y := p[0], p[1]
//	    ...
//	}
//
// # Thread Safety
//
// Axes and grids are never modified after construction and may be shared.
// Cursors are not safe for concurrent use; give each goroutine its own.
package grid
