package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/san-kum/colormap/internal/colormap"
	"github.com/san-kum/colormap/internal/lazy"
	"github.com/san-kum/colormap/internal/metrics"
	"github.com/san-kum/colormap/internal/pixel"
	"github.com/san-kum/colormap/internal/raster"
)

const rampSize = 100

// readBuffer reads numbers from the named file, stdin for "-", or returns
// the ramp 0..99 when no file is given.
func readBuffer(args []string) ([]float64, error) {
	if len(args) == 0 {
		ramp := make([]float64, rampSize)
		for i := range ramp {
			ramp[i] = float64(i)
		}
		return ramp, nil
	}

	var r io.Reader = os.Stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var values []float64
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", len(values)+1, err)
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%s: no values", args[0])
	}
	return values, nil
}

func summarizeBuffer(values []float64) (lo, hi float64) {
	return metrics.Summarize(slices.Values(values)).Bounds()
}

// bufferPixmap maps values through m lazily; colors are computed while the
// image is written.
func bufferPixmap(values []float64, m colormap.Map[pixel.RGB8], width int) (*raster.Pixmap[pixel.RGB8], error) {
	colors := lazy.NewView[float64, pixel.RGB8](lazy.Slice[float64](values), m.Eval)
	return raster.New[pixel.RGB8](colors, width, len(values)/width)
}
