// Package colormap maps real numbers onto colors, or any other value that
// can be mixed, by piecewise-linear interpolation between breakpoints.
//
// Breakpoints live on the normalized domain [0, 1]. A [Map] stores an
// external range and normalizes each query against it, so [Map.Rescale]
// retargets a palette to new data without touching its breakpoints.
//
// # Example
//
//	pal := colormap.Must("viridis").Rescale(0, 100)
//	c := pal.Eval(42)
package colormap
