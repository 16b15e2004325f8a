package pixel

import (
	"fmt"
	"image/color"
	"strconv"
)

// Space tags the color model of a pixel type.
type Space int

const (
	Grayscale Space = iota
	RGBSpace
	RGBASpace
)

func (s Space) String() string {
	switch s {
	case Grayscale:
		return "grayscale"
	case RGBSpace:
		return "rgb"
	case RGBASpace:
		return "rgba"
	}
	return fmt.Sprintf("Space(%d)", int(s))
}

// Channel is the storage type of a single color channel.
type Channel interface {
	~uint8 | ~uint16
}

// Pixel is what the raster writers need from a color value.
type Pixel interface {
	color.Color
	Space() Space
	// Depth is the largest representable channel value.
	Depth() uint32
	// AppendBinary appends the big-endian channel bytes.
	AppendBinary(b []byte) []byte
	// AppendText appends each channel in decimal followed by a space.
	AppendText(b []byte) []byte
}

func maxOf[T Channel]() T { return ^T(0) }

func width[T Channel]() int {
	var v T
	if uint64(^v) > 0xff {
		return 2
	}
	return 1
}

func mix[T Channel](a, b T, w float64) T {
	return T(float64(b)*w + float64(a)*(1-w))
}

// fromUnit converts v in [0, 1] to a channel value, clamping out-of-range
// input.
func fromUnit[T Channel](v float64) T {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return maxOf[T]()
	}
	return T(v * float64(maxOf[T]()))
}

func to16[T Channel](v T) uint32 {
	return uint32(uint64(v) * 0xffff / uint64(maxOf[T]()))
}

func appendChannel[T Channel](b []byte, v T) []byte {
	if width[T]() == 2 {
		return append(b, byte(uint16(v)>>8), byte(v))
	}
	return append(b, byte(v))
}

func appendDecimal[T Channel](b []byte, v T) []byte {
	b = strconv.AppendUint(b, uint64(v), 10)
	return append(b, ' ')
}

func convert[U, T Channel](v T) U {
	return U(uint64(v) * uint64(maxOf[U]()) / uint64(maxOf[T]()))
}
