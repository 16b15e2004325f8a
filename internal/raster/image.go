package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/san-kum/colormap/internal/pixel"
)

// Format names an output encoding.
type Format string

const (
	PNM  Format = "pnm"
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// Formats lists the supported formats.
func Formats() []Format { return []Format{PNM, PNG, BMP, TIFF} }

// ParseFormat accepts a format name or a file extension with or without
// the leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "pnm", "pgm", "ppm":
		return PNM, nil
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the format from a file name's extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Image reads the pixel sequence into an in-memory image. Gray pixels
// produce image.Gray or image.Gray16; everything else RGBA or RGBA64,
// chosen by channel depth.
func (p *Pixmap[C]) Image() (image.Image, error) {
	var zero C
	rect := image.Rect(0, 0, p.width, p.height)
	wide := zero.Depth() > 0xff

	var img draw.Image
	switch {
	case zero.Space() == pixel.Grayscale && wide:
		img = image.NewGray16(rect)
	case zero.Space() == pixel.Grayscale:
		img = image.NewGray(rect)
	case wide:
		img = image.NewRGBA64(rect)
	default:
		img = image.NewRGBA(rect)
	}

	c := p.src.Start()
	for y := range p.height {
		for x := range p.width {
			if c.Done() {
				return nil, fmt.Errorf("%w: row %d col %d", ErrShortSequence, y, x)
			}
			img.Set(x, y, c.Value())
			c.Next()
		}
	}
	return img, nil
}

// Encode writes the pixmap in the given format. PNM uses the binary
// Netpbm variant.
func (p *Pixmap[C]) Encode(w io.Writer, f Format) error {
	if f == PNM {
		return p.WriteBinary(w)
	}
	img, err := p.Image()
	if err != nil {
		return err
	}
	return Encode(w, img, f)
}

// Encode writes img as PNG, BMP or TIFF.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case PNM:
		return fmt.Errorf("%w: pnm needs a pixmap", ErrUnknownFormat)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}
