package colormap

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/colormap/internal/grid"
)

// Mixer is implemented by values that can be blended linearly. Mix returns
// the receiver weighted by 1-w plus other weighted by w.
type Mixer[C any] interface {
	Mix(other C, w float64) C
}

// Stop pairs a domain value with the color it maps to.
type Stop[C any] struct {
	At    float64
	Value C
}

// Map is a piecewise-linear interpolation from a scalar range onto values
// of type C. The zero Map is not usable; build one with Uniform or
// FromStops. Maps are immutable and safe to share.
type Map[C Mixer[C]] struct {
	keys   []float64
	values []C
	lo, hi float64
}

// Uniform spreads values evenly over [0, 1]. It needs at least two values.
func Uniform[C Mixer[C]](values ...C) (Map[C], error) {
	if len(values) < 2 {
		return Map[C]{}, fmt.Errorf("%w: need at least 2 breakpoints, got %d", ErrInvalidMap, len(values))
	}
	keys := make([]float64, len(values))
	step := 1 / float64(len(values)-1)
	for i := range keys {
		keys[i] = float64(i) * step
	}
	keys[len(keys)-1] = 1
	return Map[C]{
		keys:   keys,
		values: append([]C(nil), values...),
		lo:     0,
		hi:     1,
	}, nil
}

// FromStops builds a map from breakpoints at arbitrary domain values. The
// span of the keys becomes the external range of the map, so evaluating at
// a stop returns its value. Stops may come in any order; for duplicate keys
// the last one wins.
func FromStops[C Mixer[C]](stops ...Stop[C]) (Map[C], error) {
	if len(stops) == 0 {
		return Map[C]{}, fmt.Errorf("%w: no breakpoints", ErrInvalidMap)
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range stops {
		if math.IsNaN(s.At) || math.IsInf(s.At, 0) {
			return Map[C]{}, fmt.Errorf("%w: breakpoint %v is not finite", ErrInvalidMap, s.At)
		}
		lo = math.Min(lo, s.At)
		hi = math.Max(hi, s.At)
	}
	if lo == hi {
		return Map[C]{}, fmt.Errorf("%w: breakpoints span no interval", ErrInvalidMap)
	}

	sorted := append([]Stop[C](nil), stops...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].At < sorted[j].At })

	m := Map[C]{lo: lo, hi: hi}
	for _, s := range sorted {
		k := (s.At - lo) / (hi - lo)
		if n := len(m.keys); n > 0 && m.keys[n-1] == k {
			m.values[n-1] = s.Value
			continue
		}
		m.keys = append(m.keys, k)
		m.values = append(m.values, s.Value)
	}
	return m, nil
}

// MustUniform is like Uniform but panics on error.
func MustUniform[C Mixer[C]](values ...C) Map[C] {
	m, err := Uniform(values...)
	if err != nil {
		panic(err)
	}
	return m
}

// Rescale returns a copy of m whose input range is [lo, hi]. The
// breakpoints are shared with m. lo > hi reverses the map.
func (m Map[C]) Rescale(lo, hi float64) Map[C] {
	m.lo, m.hi = lo, hi
	return m
}

// RescaleTo is Rescale with the interval of a grid axis.
func (m Map[C]) RescaleTo(r grid.Range) Map[C] {
	return m.Rescale(r.Lo, r.Hi)
}

// Range returns the current input range.
func (m Map[C]) Range() (lo, hi float64) { return m.lo, m.hi }

// Len returns the number of breakpoints.
func (m Map[C]) Len() int { return len(m.keys) }

// Stops returns the breakpoints in the current input range.
func (m Map[C]) Stops() []Stop[C] {
	out := make([]Stop[C], len(m.keys))
	for i, k := range m.keys {
		out[i] = Stop[C]{At: m.lo + k*(m.hi-m.lo), Value: m.values[i]}
	}
	return out
}

// Eval returns the value at x. Queries outside the breakpoints clamp to the
// nearest end, and a query landing exactly on a breakpoint returns its value
// without mixing.
func (m Map[C]) Eval(x float64) C {
	x = (x - m.lo) / (m.hi - m.lo)

	n := len(m.keys)
	i := sort.SearchFloat64s(m.keys, x)
	switch {
	case i == n:
		return m.values[n-1]
	case m.keys[i] == x || i == 0:
		return m.values[i]
	}

	a, b := i-1, i
	w := (x - m.keys[a]) / (m.keys[b] - m.keys[a])
	return m.values[a].Mix(m.values[b], w)
}

// Sample evaluates m at n evenly spaced points across its input range.
func (m Map[C]) Sample(n int) ([]C, error) {
	axis, err := grid.NewAxis(n, m.lo, m.hi)
	if err != nil {
		return nil, err
	}
	out := make([]C, 0, n)
	for x := range axis.All() {
		out = append(out, m.Eval(x))
	}
	return out, nil
}

// Convert maps every breakpoint value of m through f, keeping keys and
// range.
func Convert[D Mixer[D], C Mixer[C]](m Map[C], f func(C) D) Map[D] {
	out := Map[D]{
		keys:   m.keys,
		values: make([]D, len(m.values)),
		lo:     m.lo,
		hi:     m.hi,
	}
	for i, v := range m.values {
		out.values[i] = f(v)
	}
	return out
}
