package metrics

import (
	"math"
	"slices"
	"testing"
)

func TestExtent(t *testing.T) {
	lo, hi := NewMin(), NewMax()
	ObserveAll(slices.Values([]float64{3, -1, math.NaN(), 7, math.Inf(1)}), lo, hi)

	if lo.Value() != -1 {
		t.Errorf("expected min -1, got %f", lo.Value())
	}
	if hi.Value() != 7 {
		t.Errorf("expected max 7, got %f", hi.Value())
	}

	lo.Reset()
	if !math.IsInf(lo.Value(), 1) {
		t.Errorf("expected +Inf after reset, got %f", lo.Value())
	}
}

func TestMean(t *testing.T) {
	m := NewMean()
	if m.Value() != 0 {
		t.Error("expected zero mean with no samples")
	}
	for _, v := range []float64{1, 2, 3, math.NaN()} {
		m.Observe(v)
	}
	if math.Abs(m.Value()-2) > 1e-12 {
		t.Errorf("expected mean 2, got %f", m.Value())
	}
	if m.Count() != 3 {
		t.Errorf("expected 3 finite samples, got %d", m.Count())
	}
	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero mean after reset")
	}
}

func TestNonFinite(t *testing.T) {
	n := NewNonFinite()
	for _, v := range []float64{1, math.NaN(), math.Inf(-1), 4} {
		n.Observe(v)
	}
	if n.Value() != 0.5 {
		t.Errorf("expected fraction 0.5, got %f", n.Value())
	}
	if n.Name() != "non_finite" {
		t.Errorf("unexpected name %q", n.Name())
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(slices.Values([]float64{4, math.NaN(), 2, 6}))
	if s.Count != 4 || s.NonFinite != 1 {
		t.Errorf("unexpected counts %+v", s)
	}
	if s.Min != 2 || s.Max != 6 || s.Mean != 4 {
		t.Errorf("unexpected stats %+v", s)
	}
	if lo, hi := s.Bounds(); lo != 2 || hi != 6 {
		t.Errorf("expected bounds [2, 6], got [%f, %f]", lo, hi)
	}
}

func TestBoundsDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		lo, hi float64
	}{
		{"empty", nil, 0, 1},
		{"all nan", []float64{math.NaN(), math.NaN()}, 0, 1},
		{"constant", []float64{3, 3}, 2.5, 3.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := Summarize(slices.Values(tt.values)).Bounds()
			if lo != tt.lo || hi != tt.hi {
				t.Errorf("expected [%f, %f], got [%f, %f]", tt.lo, tt.hi, lo, hi)
			}
		})
	}
}
