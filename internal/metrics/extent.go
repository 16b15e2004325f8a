package metrics

import "math"

// Min tracks the smallest finite sample.
type Min struct {
	name string
	min  float64
}

func NewMin() *Min {
	return &Min{name: "min", min: math.Inf(1)}
}

func (m *Min) Name() string { return m.name }

func (m *Min) Observe(v float64) {
	if finite(v) && v < m.min {
		m.min = v
	}
}

// Value returns +Inf until a finite sample arrives.
func (m *Min) Value() float64 { return m.min }

func (m *Min) Reset() { m.min = math.Inf(1) }

// Max tracks the largest finite sample.
type Max struct {
	name string
	max  float64
}

func NewMax() *Max {
	return &Max{name: "max", max: math.Inf(-1)}
}

func (m *Max) Name() string { return m.name }

func (m *Max) Observe(v float64) {
	if finite(v) && v > m.max {
		m.max = v
	}
}

// Value returns -Inf until a finite sample arrives.
func (m *Max) Value() float64 { return m.max }

func (m *Max) Reset() { m.max = math.Inf(-1) }
