// Package lazy composes iterable domains with functions without
// materializing intermediate results.
//
// Navigation is described by capability interfaces rather than by the
// concrete cursor type:
//
//   - [Forward]: dereference, step forward, detect the end
//   - [Bidirectional]: additionally step backward
//   - [RandomAccess]: additionally jump by an offset and report a position
//
// A mapped cursor forwards every navigation call to the cursor it wraps and
// applies its function only when [Forward.Value] is called. Nothing is
// cached, so a value is recomputed on every access.
//
// # Example
//
//	g, _ := grid.New(2, grid.ColMajor, xs, ys)
//	scores := lazy.NewView[[]float64](g, scene.Score)
//	colors := lazy.NewView[float64](scores, pal.Eval)
//	for c := range lazy.All(colors.Start()) {
//	    ...
//	}
package lazy
