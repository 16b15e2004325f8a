package render

import (
	"context"
	"runtime"
	"slices"
	"sync"

	"github.com/san-kum/colormap/internal/grid"
)

// minRows is the smallest chunk handed to one worker.
const minRows = 8

// parallelFor runs fn over [0, n) split into contiguous chunks, one per
// worker.
func parallelFor(n, minChunk int, fn func(start, end int)) {
	workers := runtime.GOMAXPROCS(0)
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}
	if n/minChunk < workers {
		workers = n / minChunk
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// Evaluate computes the field for every pixel in scanline order, spreading
// rows across GOMAXPROCS workers. Workers stop at the next row once ctx is
// done.
func (j *Job) Evaluate(ctx context.Context) ([]float64, error) {
	w, h := j.Config.Width, j.Config.Height
	x, err := grid.NewAxis(w, j.Canvas.X.Lo, j.Canvas.X.Hi)
	if err != nil {
		return nil, err
	}
	y, err := grid.NewAxis(h, j.Canvas.Y.Hi, j.Canvas.Y.Lo)
	if err != nil {
		return nil, err
	}
	xs, ys := slices.Collect(x.All()), slices.Collect(y.All())

	out := make([]float64, w*h)
	parallelFor(h, minRows, func(start, end int) {
		p := make([]float64, 2)
		for row := start; row < end; row++ {
			if ctx.Err() != nil {
				return
			}
			p[1] = ys[row]
			for col, xv := range xs {
				p[0] = xv
				out[row*w+col] = j.score(p)
			}
		}
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
