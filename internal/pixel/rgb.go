package pixel

// RGB is an opaque red, green, blue triple.
type RGB[T Channel] struct {
	R, G, B T
}

type (
	RGB8  = RGB[uint8]
	RGB16 = RGB[uint16]
)

// Hex builds an 8-bit color from a 0xRRGGBB literal.
func Hex(v uint32) RGB8 {
	return RGB8{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// RGBUnit builds a color from channel intensities in [0, 1].
func RGBUnit[T Channel](r, g, b float64) RGB[T] {
	return RGB[T]{R: fromUnit[T](r), G: fromUnit[T](g), B: fromUnit[T](b)}
}

// Mix blends c towards o channel by channel; w is the weight of o.
func (c RGB[T]) Mix(o RGB[T], w float64) RGB[T] {
	return RGB[T]{
		R: mix(c.R, o.R, w),
		G: mix(c.G, o.G, w),
		B: mix(c.B, o.B, w),
	}
}

func (RGB[T]) Space() Space  { return RGBSpace }
func (RGB[T]) Depth() uint32 { return uint32(maxOf[T]()) }

func (c RGB[T]) AppendBinary(b []byte) []byte {
	b = appendChannel(b, c.R)
	b = appendChannel(b, c.G)
	return appendChannel(b, c.B)
}

func (c RGB[T]) AppendText(b []byte) []byte {
	b = appendDecimal(b, c.R)
	b = appendDecimal(b, c.G)
	return appendDecimal(b, c.B)
}

func (c RGB[T]) RGBA() (r, g, b, a uint32) {
	return to16(c.R), to16(c.G), to16(c.B), 0xffff
}

// Opaque extends c with a fully opaque alpha channel.
func (c RGB[T]) Opaque() RGBA[T] {
	return RGBA[T]{R: c.R, G: c.G, B: c.B, A: maxOf[T]()}
}

// Gray converts c to its Rec. 601 luma.
func (c RGB[T]) Gray() Gray[T] {
	y := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	return Gray[T]{V: T(y + 0.5)}
}

// ConvertRGB changes the channel depth of c.
func ConvertRGB[U, T Channel](c RGB[T]) RGB[U] {
	return RGB[U]{R: convert[U](c.R), G: convert[U](c.G), B: convert[U](c.B)}
}
