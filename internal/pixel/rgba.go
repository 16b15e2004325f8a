package pixel

// RGBA is a color with a straight (non-premultiplied) alpha channel. Netpbm
// has no format for it, so it is only usable with the image encoders.
type RGBA[T Channel] struct {
	R, G, B, A T
}

type RGBA8 = RGBA[uint8]

func (c RGBA[T]) Mix(o RGBA[T], w float64) RGBA[T] {
	return RGBA[T]{
		R: mix(c.R, o.R, w),
		G: mix(c.G, o.G, w),
		B: mix(c.B, o.B, w),
		A: mix(c.A, o.A, w),
	}
}

func (RGBA[T]) Space() Space  { return RGBASpace }
func (RGBA[T]) Depth() uint32 { return uint32(maxOf[T]()) }

func (c RGBA[T]) AppendBinary(b []byte) []byte {
	b = RGB[T]{c.R, c.G, c.B}.AppendBinary(b)
	return appendChannel(b, c.A)
}

func (c RGBA[T]) AppendText(b []byte) []byte {
	b = RGB[T]{c.R, c.G, c.B}.AppendText(b)
	return appendDecimal(b, c.A)
}

// RGBA returns alpha-premultiplied values as image/color requires.
func (c RGBA[T]) RGBA() (r, g, b, a uint32) {
	a = to16(c.A)
	r = to16(c.R) * a / 0xffff
	g = to16(c.G) * a / 0xffff
	b = to16(c.B) * a / 0xffff
	return r, g, b, a
}
