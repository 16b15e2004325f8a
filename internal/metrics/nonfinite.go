package metrics

// NonFinite reports the fraction of samples that were NaN or infinite.
type NonFinite struct {
	name       string
	violations int
	samples    int
}

func NewNonFinite() *NonFinite {
	return &NonFinite{
		name: "non_finite",
	}
}

func (n *NonFinite) Name() string {
	return n.name
}

func (n *NonFinite) Observe(v float64) {
	n.samples++
	if !finite(v) {
		n.violations++
	}
}

func (n *NonFinite) Value() float64 {
	if n.samples == 0 {
		return 0
	}
	return float64(n.violations) / float64(n.samples)
}

// Count is the number of non-finite samples seen.
func (n *NonFinite) Count() int { return n.violations }

func (n *NonFinite) Reset() {
	n.violations = 0
	n.samples = 0
}
