package colormap

import (
	"fmt"
	"slices"

	"github.com/san-kum/colormap/internal/pixel"
)

// Grayscale runs from black to white.
var Grayscale = MustUniform(pixel.Gray8{V: 0}, pixel.Gray8{V: 255})

var palettes = map[string]Map[pixel.RGB8]{
	"gray": hexMap(0x000000, 0xffffff),
	"parula": hexMap(
		0x352a87, 0x0363e1, 0x1485d4, 0x06a7c6, 0x38b99e,
		0x92bf73, 0xd9ba56, 0xfcce2e, 0xf9fb0e,
	),
	"rdbu": hexMap(
		0xb2182b, 0xd6604d, 0xf4a582, 0xfddbc7,
		0xd1e5f0, 0x92c5de, 0x4393c3, 0x2166ac,
	),
	"viridis": hexMap(
		0x440154, 0x482878, 0x3e4989, 0x31688e, 0x26828e,
		0x1f9e89, 0x35b779, 0x6ece58, 0xb5de2b, 0xfde725,
	),
	"inferno": hexMap(
		0x000004, 0x1b0c41, 0x4a0c6b, 0x781c6d, 0xa52c60,
		0xcf4446, 0xed6925, 0xfb9b06, 0xf7d13d, 0xfcffa4,
	),
	"magma": hexMap(
		0x000004, 0x180f3d, 0x440f76, 0x721f81, 0x9e2f7f,
		0xcd4071, 0xf1605d, 0xfd9668, 0xfeca8d, 0xfcfdbf,
	),
}

func hexMap(codes ...uint32) Map[pixel.RGB8] {
	values := make([]pixel.RGB8, len(codes))
	for i, c := range codes {
		values[i] = pixel.Hex(c)
	}
	return MustUniform(values...)
}

// Get returns the named palette on the unit range.
func Get(name string) (Map[pixel.RGB8], error) {
	m, ok := palettes[name]
	if !ok {
		return Map[pixel.RGB8]{}, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
	return m, nil
}

// Must is like Get but panics on unknown names.
func Must(name string) Map[pixel.RGB8] {
	m, err := Get(name)
	if err != nil {
		panic(err)
	}
	return m
}

// Names lists the registered palettes in sorted order.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Reverse returns m with its breakpoints mirrored across the unit range.
func Reverse[C Mixer[C]](m Map[C]) Map[C] {
	n := len(m.keys)
	r := Map[C]{
		keys:   make([]float64, n),
		values: make([]C, n),
		lo:     m.lo,
		hi:     m.hi,
	}
	for i := range n {
		r.keys[i] = 1 - m.keys[n-1-i]
		r.values[i] = m.values[n-1-i]
	}
	return r
}
