package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/san-kum/colormap/internal/lazy"
	"github.com/san-kum/colormap/internal/pixel"
)

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"png":  PNG,
		".PNG": PNG,
		"ppm":  PNM,
		".pgm": PNM,
		"bmp":  BMP,
		"tif":  TIFF,
		"tiff": TIFF,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(gif) error = %v", err)
	}
	if f, _ := FormatFromPath("out/mandelbrot.tiff"); f != TIFF {
		t.Errorf("FormatFromPath = %q", f)
	}
}

func TestImageGray(t *testing.T) {
	p, _ := New[pixel.Gray8](grays(10, 20, 30, 40), 2, 2)
	img, err := p.Image()
	if err != nil {
		t.Fatal(err)
	}
	g, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("Image() type = %T", img)
	}
	if got := g.GrayAt(1, 1).Y; got != 40 {
		t.Errorf("pixel (1,1) = %d", got)
	}
	if got := g.GrayAt(1, 0).Y; got != 20 {
		t.Errorf("pixel (1,0) = %d", got)
	}
}

func TestImageRGB(t *testing.T) {
	src := lazy.Slice[pixel.RGB8]{{R: 255}, {G: 255}}
	p, _ := New[pixel.RGB8](src, 2, 1)
	img, err := p.Image()
	if err != nil {
		t.Fatal(err)
	}
	rgba, ok := img.(*image.RGBA)
	if !ok {
		t.Fatalf("Image() type = %T", img)
	}
	if got := rgba.RGBAAt(1, 0); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("pixel (1,0) = %v", got)
	}

	wide, _ := New[pixel.RGB16](lazy.Slice[pixel.RGB16]{{R: 1}}, 1, 1)
	img, _ = wide.Image()
	if _, ok := img.(*image.RGBA64); !ok {
		t.Errorf("16-bit Image() type = %T", img)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	src := lazy.Slice[pixel.RGB8]{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}}
	p, _ := New[pixel.RGB8](src, 2, 1)

	decoders := map[Format]func(*bytes.Buffer) (image.Image, error){
		PNG:  func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) },
		BMP:  func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) },
		TIFF: func(b *bytes.Buffer) (image.Image, error) { return tiff.Decode(b) },
	}
	for f, decode := range decoders {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			if err := p.Encode(&buf, f); err != nil {
				t.Fatal(err)
			}
			img, err := decode(&buf)
			if err != nil {
				t.Fatal(err)
			}
			r, g, b, _ := img.At(1, 0).RGBA()
			if r>>8 != 4 || g>>8 != 5 || b>>8 != 6 {
				t.Errorf("pixel (1,0) = %d %d %d", r>>8, g>>8, b>>8)
			}
		})
	}
}

func TestEncodePNM(t *testing.T) {
	p, _ := New[pixel.Gray8](grays(9), 1, 1)
	var buf bytes.Buffer
	if err := p.Encode(&buf, PNM); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("P5\n")) {
		t.Errorf("Encode(PNM) = %q", buf.Bytes())
	}
	if err := Encode(&buf, image.NewGray(image.Rect(0, 0, 1, 1)), PNM); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Encode(img, PNM) error = %v", err)
	}
}
