package raster

import "errors"

var (
	// ErrUnsupportedColorSpace is returned when the pixel type has no
	// Netpbm framing.
	ErrUnsupportedColorSpace = errors.New("raster: unsupported color space")

	// ErrShortSequence indicates the pixel sequence ended before width*height
	// pixels were read.
	ErrShortSequence = errors.New("raster: pixel sequence shorter than shape")

	// ErrInvalidShape indicates a non-positive width or height.
	ErrInvalidShape = errors.New("raster: invalid shape")

	// ErrUnknownFormat is returned for unrecognized output formats.
	ErrUnknownFormat = errors.New("raster: unknown format")
)
