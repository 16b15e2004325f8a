package scene

import (
	"errors"
	"math"
	"testing"
)

func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	names := r.List()
	want := []string{"gaussian", "julia", "mandelbrot", "ripple", "saddle", "strip"}
	if len(names) != len(want) {
		t.Fatalf("expected %d scenes, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("scene %d: expected %s, got %s", i, want[i], names[i])
		}
	}
}

func TestRegistryUnknown(t *testing.T) {
	_, err := NewRegistry().Get("lorenz")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("expected ErrUnknownScene, got %v", err)
	}
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	r.Register(Scene{
		Name:  "const",
		build: func(Params) Scorer { return func([]float64) float64 { return 7 } },
	})
	s, err := r.Get("const")
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Scorer(nil)([]float64{0, 0}); got != 7 {
		t.Errorf("expected 7, got %f", got)
	}
	if _, _, ok := s.Bounds(nil); ok {
		t.Error("expected no fixed bounds")
	}
}

func TestMandelbrot(t *testing.T) {
	s, _ := NewRegistry().Get("mandelbrot")
	f := s.Scorer(s.Defaults)

	if got := f([]float64{0, 0}); got != 0 {
		t.Errorf("origin is in the set, expected 0, got %f", got)
	}
	if got := f([]float64{-1, 0}); got != 0 {
		t.Errorf("-1 is in the set, expected 0, got %f", got)
	}

	lo, hi, ok := s.Bounds(s.Defaults)
	if !ok || lo != 1 {
		t.Fatalf("unexpected bounds %f %f %v", lo, hi, ok)
	}
	if math.Abs(hi-math.Pow(1000, 0.1)) > 1e-12 {
		t.Errorf("expected upper bound 1000^0.1, got %f", hi)
	}

	got := f([]float64{0.9, 0.9})
	if got <= 0 || got > hi {
		t.Errorf("escaping point scored %f, outside (0, %f]", got, hi)
	}
}

func TestMandelbrotParams(t *testing.T) {
	s, _ := NewRegistry().Get("mandelbrot")
	_, hi, _ := s.Bounds(Params{"max_it": 32, "exponent": 1})
	if hi != 32 {
		t.Errorf("expected upper bound 32, got %f", hi)
	}
}

func TestJulia(t *testing.T) {
	s, _ := NewRegistry().Get("julia")
	f := s.Scorer(Params{"c_re": 0, "c_im": 0})
	// c = 0 leaves the unit disk bounded
	if got := f([]float64{0.5, 0}); got != 0 {
		t.Errorf("expected bounded orbit, got %f", got)
	}
	if got := f([]float64{2, 0}); got == 0 {
		t.Error("expected escaping orbit")
	}
}

func TestSimpleFields(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		scene string
		p     []float64
		want  float64
	}{
		{"saddle", []float64{1, 0}, 1},
		{"saddle", []float64{0, 1}, -1},
		{"gaussian", []float64{0, 0}, 1},
		{"ripple", []float64{0, 0}, 0},
		{"strip", []float64{0.25, 0.9}, 0.25},
	}
	for _, tt := range tests {
		s, err := r.Get(tt.scene)
		if err != nil {
			t.Fatal(err)
		}
		got := s.Scorer(s.Defaults)(tt.p)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s%v: expected %f, got %f", tt.scene, tt.p, tt.want, got)
		}
	}
}
