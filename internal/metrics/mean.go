package metrics

type Mean struct {
	name    string
	sum     float64
	samples int
}

func NewMean() *Mean {
	return &Mean{
		name: "mean",
	}
}

func (m *Mean) Name() string {
	return m.name
}

func (m *Mean) Observe(v float64) {
	if !finite(v) {
		return
	}
	m.sum += v
	m.samples++
}

func (m *Mean) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

// Count is the number of finite samples seen.
func (m *Mean) Count() int { return m.samples }

func (m *Mean) Reset() {
	m.sum = 0
	m.samples = 0
}
