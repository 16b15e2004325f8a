package pixel

// Gray is a single-channel intensity.
type Gray[T Channel] struct {
	V T
}

type (
	Gray8  = Gray[uint8]
	Gray16 = Gray[uint16]
)

// GrayUnit builds a gray value from an intensity in [0, 1].
func GrayUnit[T Channel](v float64) Gray[T] {
	return Gray[T]{V: fromUnit[T](v)}
}

// Mix blends g towards o; w is the weight of o.
func (g Gray[T]) Mix(o Gray[T], w float64) Gray[T] {
	return Gray[T]{V: mix(g.V, o.V, w)}
}

func (Gray[T]) Space() Space  { return Grayscale }
func (Gray[T]) Depth() uint32 { return uint32(maxOf[T]()) }

func (g Gray[T]) AppendBinary(b []byte) []byte { return appendChannel(b, g.V) }
func (g Gray[T]) AppendText(b []byte) []byte   { return appendDecimal(b, g.V) }

func (g Gray[T]) RGBA() (r, gg, b, a uint32) {
	y := to16(g.V)
	return y, y, y, 0xffff
}

// ConvertGray changes the channel depth of g.
func ConvertGray[U, T Channel](g Gray[T]) Gray[U] {
	return Gray[U]{V: convert[U](g.V)}
}
