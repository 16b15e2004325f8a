package scene

import (
	"math"
	"math/cmplx"

	"github.com/san-kum/colormap/internal/grid"
)

func builtin() []Scene {
	return []Scene{
		{
			Name:        "mandelbrot",
			Description: "escape time of z^2+c with smooth coloring",
			Canvas:      Canvas{X: grid.Range{Lo: -2.5, Hi: 1}, Y: grid.Range{Lo: -1, Hi: 1}},
			Palette:     "inferno",
			Defaults:    Params{"max_it": 1000, "bail_out": 65536, "exponent": 0.1},
			build:       mandelbrot,
			bounds:      escapeBounds,
		},
		{
			Name:        "julia",
			Description: "escape time of z^2+c for fixed c",
			Canvas:      Canvas{X: grid.Range{Lo: -1.6, Hi: 1.6}, Y: grid.Range{Lo: -1, Hi: 1}},
			Palette:     "magma",
			Defaults:    Params{"max_it": 500, "bail_out": 65536, "exponent": 0.1, "c_re": -0.8, "c_im": 0.156},
			build:       julia,
			bounds:      escapeBounds,
		},
		{
			Name:        "ripple",
			Description: "damped radial wave sin(k r)/(1+r)",
			Canvas:      Canvas{X: grid.Range{Lo: -10, Hi: 10}, Y: grid.Range{Lo: -10, Hi: 10}},
			Palette:     "rdbu",
			Defaults:    Params{"k": 2},
			build:       ripple,
		},
		{
			Name:        "saddle",
			Description: "hyperbolic paraboloid x^2-y^2",
			Canvas:      Canvas{X: grid.Range{Lo: -1, Hi: 1}, Y: grid.Range{Lo: -1, Hi: 1}},
			Palette:     "rdbu",
			Defaults:    Params{},
			build:       saddle,
		},
		{
			Name:        "gaussian",
			Description: "isotropic gaussian bump",
			Canvas:      Canvas{X: grid.Range{Lo: -3, Hi: 3}, Y: grid.Range{Lo: -3, Hi: 3}},
			Palette:     "viridis",
			Defaults:    Params{"sigma": 1},
			build:       gaussian,
			bounds:      func(Params) (float64, float64) { return 0, 1 },
		},
		{
			Name:        "strip",
			Description: "horizontal ramp for palette previews",
			Canvas:      Canvas{X: grid.Range{Lo: 0, Hi: 1}, Y: grid.Range{Lo: 0, Hi: 1}},
			Palette:     "parula",
			Defaults:    Params{},
			build:       func(Params) Scorer { return func(p []float64) float64 { return p[0] } },
			bounds:      func(Params) (float64, float64) { return 0, 1 },
		},
	}
}

type escape struct {
	maxIt    int
	bailOut  float64
	exponent float64
}

func newEscape(p Params) escape {
	return escape{
		maxIt:    int(p.get("max_it", 1000)),
		bailOut:  p.get("bail_out", 65536),
		exponent: p.get("exponent", 0.1),
	}
}

// score iterates z from z0 and returns the compressed, smoothed escape count.
// Points that never escape score 0.
func (e escape) score(z, c complex128) float64 {
	norm := func(z complex128) float64 { return real(z)*real(z) + imag(z)*imag(z) }

	it := 0
	for ; it < e.maxIt && norm(z) < e.bailOut; it++ {
		z = z*z + c
	}
	if it == e.maxIt {
		return 0
	}
	log2z := math.Log(norm(z)) * 0.5 / math.Ln2
	nu := math.Log(log2z) / math.Ln2
	return math.Pow(float64(it)+1-nu, e.exponent)
}

func escapeBounds(p Params) (float64, float64) {
	e := newEscape(p)
	return 1, math.Pow(float64(e.maxIt), e.exponent)
}

func mandelbrot(p Params) Scorer {
	e := newEscape(p)
	return func(pt []float64) float64 {
		return e.score(0, complex(pt[0], pt[1]))
	}
}

func julia(p Params) Scorer {
	e := newEscape(p)
	c := complex(p.get("c_re", -0.8), p.get("c_im", 0.156))
	return func(pt []float64) float64 {
		return e.score(complex(pt[0], pt[1]), c)
	}
}

func ripple(p Params) Scorer {
	k := p.get("k", 2)
	return func(pt []float64) float64 {
		r := cmplx.Abs(complex(pt[0], pt[1]))
		return math.Sin(k*r) / (1 + r)
	}
}

func saddle(Params) Scorer {
	return func(pt []float64) float64 {
		return pt[0]*pt[0] - pt[1]*pt[1]
	}
}

func gaussian(p Params) Scorer {
	s := p.get("sigma", 1)
	return func(pt []float64) float64 {
		return math.Exp(-(pt[0]*pt[0] + pt[1]*pt[1]) / (2 * s * s))
	}
}
