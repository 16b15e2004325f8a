// Package scene holds the scalar fields that can be rendered: functions of
// a 2-D coordinate together with the canvas and palette they look best on.
package scene

import (
	"errors"
	"fmt"
	"slices"

	"github.com/san-kum/colormap/internal/grid"
)

// ErrUnknownScene is returned by Registry.Get for unregistered names.
var ErrUnknownScene = errors.New("scene: unknown scene")

// Scorer maps a point (x, y) to a scalar.
type Scorer func(p []float64) float64

// Params are free numeric knobs of a scene. Missing keys take defaults.
type Params map[string]float64

func (p Params) get(key string, def float64) float64 {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

// Canvas is the default viewport of a scene.
type Canvas struct {
	X grid.Range
	Y grid.Range
}

// Scene describes one renderable field.
type Scene struct {
	Name        string
	Description string
	Canvas      Canvas
	Palette     string
	Defaults    Params

	build  func(Params) Scorer
	bounds func(Params) (lo, hi float64)
}

// Scorer returns the field for the given params.
func (s Scene) Scorer(p Params) Scorer { return s.build(p) }

// Bounds returns the fixed color range of the scene. ok is false for
// scenes that should be scaled to the data.
func (s Scene) Bounds(p Params) (lo, hi float64, ok bool) {
	if s.bounds == nil {
		return 0, 0, false
	}
	lo, hi = s.bounds(p)
	return lo, hi, true
}

type Registry struct {
	scenes map[string]Scene
}

func NewRegistry() *Registry {
	r := &Registry{scenes: make(map[string]Scene)}
	for _, s := range builtin() {
		r.Register(s)
	}
	return r
}

// Register adds or replaces a scene.
func (r *Registry) Register(s Scene) {
	r.scenes[s.Name] = s
}

func (r *Registry) Get(name string) (Scene, error) {
	s, ok := r.scenes[name]
	if !ok {
		return Scene{}, fmt.Errorf("%w: %s", ErrUnknownScene, name)
	}
	return s, nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.scenes))
	for name := range r.scenes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
