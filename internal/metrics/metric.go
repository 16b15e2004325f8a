// Package metrics accumulates statistics over a stream of scalar samples,
// typically the scores of a scene evaluated across a grid.
package metrics

import (
	"iter"
	"math"
)

// Metric observes samples one at a time and reports a single value.
type Metric interface {
	Name() string
	Observe(v float64)
	Value() float64
	Reset()
}

// ObserveAll feeds every value of seq to each metric.
func ObserveAll(seq iter.Seq[float64], ms ...Metric) {
	for v := range seq {
		for _, m := range ms {
			m.Observe(v)
		}
	}
}

// Summary is a one-pass digest of a sample stream.
type Summary struct {
	Count     int
	NonFinite int
	Min       float64
	Max       float64
	Mean      float64
}

// Summarize consumes seq and returns its summary. Non-finite samples are
// counted but excluded from Min, Max and Mean.
func Summarize(seq iter.Seq[float64]) Summary {
	lo, hi, mean, bad := NewMin(), NewMax(), NewMean(), NewNonFinite()
	ObserveAll(seq, lo, hi, mean, bad)
	return Summary{
		Count:     mean.Count() + bad.Count(),
		NonFinite: bad.Count(),
		Min:       lo.Value(),
		Max:       hi.Value(),
		Mean:      mean.Value(),
	}
}

// Bounds returns the finite extent of the summary, widened to unit width
// around the sample when all finite samples are equal, or [0, 1] when
// there are none.
func (s Summary) Bounds() (lo, hi float64) {
	switch {
	case s.Count == s.NonFinite:
		return 0, 1
	case s.Min == s.Max:
		return s.Min - 0.5, s.Max + 0.5
	}
	return s.Min, s.Max
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
