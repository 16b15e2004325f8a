package raster

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/colormap/internal/lazy"
	"github.com/san-kum/colormap/internal/pixel"
)

// Pixmap frames a pixel sequence as an image of the given shape. The
// sequence is restarted on every write, so a Pixmap can be written any
// number of times.
type Pixmap[C pixel.Pixel] struct {
	src    lazy.Domain[C]
	width  int
	height int
}

// New returns a pixmap reading width*height pixels from src.
func New[C pixel.Pixel](src lazy.Domain[C], width, height int) (*Pixmap[C], error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidShape, width, height)
	}
	return &Pixmap[C]{src: src, width: width, height: height}, nil
}

// Shape returns width and height in pixels.
func (p *Pixmap[C]) Shape() (width, height int) { return p.width, p.height }

// MagicNumber returns the Netpbm magic digit for the pixel type.
func (p *Pixmap[C]) MagicNumber(binary bool) (int, error) {
	var zero C
	switch zero.Space() {
	case pixel.Grayscale:
		if binary {
			return 5, nil
		}
		return 2, nil
	case pixel.RGBSpace:
		if binary {
			return 6, nil
		}
		return 3, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedColorSpace, zero.Space())
}

// Extension returns the conventional file extension without the dot.
func (p *Pixmap[C]) Extension() (string, error) {
	var zero C
	switch zero.Space() {
	case pixel.Grayscale:
		return "pgm", nil
	case pixel.RGBSpace:
		return "ppm", nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedColorSpace, zero.Space())
}

// Header returns the Netpbm header including the trailing newline.
func (p *Pixmap[C]) Header(binary bool) ([]byte, error) {
	magic, err := p.MagicNumber(binary)
	if err != nil {
		return nil, err
	}
	var zero C
	b := []byte{'P'}
	b = strconv.AppendInt(b, int64(magic), 10)
	b = append(b, '\n')
	b = strconv.AppendInt(b, int64(p.width), 10)
	b = append(b, ' ')
	b = strconv.AppendInt(b, int64(p.height), 10)
	b = append(b, '\n')
	b = strconv.AppendUint(b, uint64(zero.Depth()), 10)
	return append(b, '\n'), nil
}

// WriteBinary writes the raw Netpbm variant (P5 or P6).
func (p *Pixmap[C]) WriteBinary(w io.Writer) error {
	return p.write(w, true)
}

// WriteASCII writes the plain Netpbm variant (P2 or P3), one row per line.
func (p *Pixmap[C]) WriteASCII(w io.Writer) error {
	return p.write(w, false)
}

func (p *Pixmap[C]) write(w io.Writer, binary bool) error {
	hdr, err := p.Header(binary)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(hdr); err != nil {
		return err
	}

	var buf []byte
	c := p.src.Start()
	for row := range p.height {
		for col := range p.width {
			if c.Done() {
				return fmt.Errorf("%w: row %d col %d", ErrShortSequence, row, col)
			}
			if binary {
				buf = c.Value().AppendBinary(buf)
			} else {
				buf = c.Value().AppendText(buf)
			}
			c.Next()
		}
		if !binary {
			buf = append(buf, '\n')
		}
		if _, err := bw.Write(buf); err != nil {
			return err
		}
		buf = buf[:0]
	}
	return bw.Flush()
}
