package pixel

import (
	"bytes"
	"image/color"
	"testing"
)

func TestGrayMix(t *testing.T) {
	a, b := Gray8{V: 0}, Gray8{V: 200}
	tests := []struct {
		w    float64
		want Gray8
	}{
		{0, Gray8{V: 0}},
		{1, Gray8{V: 200}},
		{0.5, Gray8{V: 100}},
		{0.25, Gray8{V: 50}},
	}
	for _, tt := range tests {
		if got := a.Mix(b, tt.w); got != tt.want {
			t.Errorf("Mix(%v) = %v, want %v", tt.w, got, tt.want)
		}
	}
}

func TestRGBMix(t *testing.T) {
	a := RGB8{R: 0, G: 100, B: 255}
	b := RGB8{R: 200, G: 100, B: 55}
	if got, want := a.Mix(b, 0.5), (RGB8{R: 100, G: 100, B: 155}); got != want {
		t.Errorf("Mix(0.5) = %v, want %v", got, want)
	}
	if got := a.Mix(b, 0); got != a {
		t.Errorf("Mix(0) = %v, want %v", got, a)
	}
	if got := a.Mix(b, 1); got != b {
		t.Errorf("Mix(1) = %v, want %v", got, b)
	}
}

func TestDepthAndSpace(t *testing.T) {
	depths := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"Gray8", Gray8{}.Depth(), 255},
		{"Gray16", Gray16{}.Depth(), 65535},
		{"RGB8", RGB8{}.Depth(), 255},
		{"RGB16", RGB16{}.Depth(), 65535},
	}
	for _, d := range depths {
		if d.got != d.want {
			t.Errorf("%s depth = %d, want %d", d.name, d.got, d.want)
		}
	}

	if (Gray8{}).Space() != Grayscale {
		t.Error("Gray8 should be grayscale")
	}
	if (RGB16{}).Space() != RGBSpace {
		t.Error("RGB16 should be rgb")
	}
	if (RGBA8{}).Space() != RGBASpace {
		t.Error("RGBA8 should be rgba")
	}
	if s := RGBSpace.String(); s != "rgb" {
		t.Errorf("expected rgb, got %s", s)
	}
}

func TestAppendBinary(t *testing.T) {
	tests := []struct {
		name string
		got  []byte
		want []byte
	}{
		{"Gray8", Gray8{V: 0x7f}.AppendBinary(nil), []byte{0x7f}},
		{"Gray16", Gray16{V: 0x1234}.AppendBinary(nil), []byte{0x12, 0x34}},
		{"RGB8", RGB8{R: 1, G: 2, B: 3}.AppendBinary(nil), []byte{1, 2, 3}},
		{"RGB16", RGB16{R: 1, G: 2, B: 3}.AppendBinary(nil), []byte{0, 1, 0, 2, 0, 3}},
		{"RGBA8", RGBA8{R: 1, G: 2, B: 3, A: 4}.AppendBinary(nil), []byte{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		if !bytes.Equal(tt.got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestAppendText(t *testing.T) {
	tests := []struct {
		got  []byte
		want string
	}{
		{Gray8{V: 7}.AppendText(nil), "7 "},
		{RGB8{R: 255, G: 0, B: 16}.AppendText(nil), "255 0 16 "},
		{Gray16{V: 1000}.AppendText(nil), "1000 "},
	}
	for _, tt := range tests {
		if string(tt.got) != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestImageColor(t *testing.T) {
	var c color.Color = RGB8{R: 255, G: 0, B: 0x80}
	r, g, b, a := c.RGBA()
	if r != 0xffff || g != 0 || b != 0x8080 || a != 0xffff {
		t.Errorf("RGBA() = %#x %#x %#x %#x", r, g, b, a)
	}

	if y, _, _, _ := (Gray16{V: 0xffff}).RGBA(); y != 0xffff {
		t.Errorf("Gray16 white = %#x", y)
	}

	if _, _, _, a := (RGBA8{A: 0}).RGBA(); a != 0 {
		t.Errorf("transparent alpha = %#x", a)
	}
}

func TestConstructors(t *testing.T) {
	if got, want := Hex(0x352a87), (RGB8{R: 0x35, G: 0x2a, B: 0x87}); got != want {
		t.Errorf("Hex = %v, want %v", got, want)
	}
	if got := GrayUnit[uint8](1.5); got != (Gray8{V: 255}) {
		t.Errorf("GrayUnit(1.5) = %v", got)
	}
	if got := GrayUnit[uint8](-1); got != (Gray8{V: 0}) {
		t.Errorf("GrayUnit(-1) = %v", got)
	}
	if got, want := RGBUnit[uint16](1, 0, 0.5), (RGB16{R: 65535, G: 0, B: 32767}); got != want {
		t.Errorf("RGBUnit = %v, want %v", got, want)
	}
	if got, want := (RGB8{R: 1, G: 2, B: 3}).Opaque(), (RGBA8{R: 1, G: 2, B: 3, A: 255}); got != want {
		t.Errorf("Opaque = %v, want %v", got, want)
	}
	if got := (RGB8{R: 255, G: 255, B: 255}).Gray(); got != (Gray8{V: 255}) {
		t.Errorf("Gray = %v", got)
	}
}

func TestConvertDepth(t *testing.T) {
	if got, want := ConvertRGB[uint16](RGB8{R: 0x80, G: 0xff}), (RGB16{R: 0x8080, G: 0xffff}); got != want {
		t.Errorf("RGB 8->16 = %v, want %v", got, want)
	}
	if got, want := ConvertRGB[uint8](RGB16{R: 0x8080}), (RGB8{R: 0x80}); got != want {
		t.Errorf("RGB 16->8 = %v, want %v", got, want)
	}
	if got, want := ConvertGray[uint16](Gray8{V: 0xff}), (Gray16{V: 0xffff}); got != want {
		t.Errorf("Gray 8->16 = %v, want %v", got, want)
	}
	if got, want := ConvertGray[uint8](Gray16{V: 0x0101}), (Gray8{V: 1}); got != want {
		t.Errorf("Gray 16->8 = %v, want %v", got, want)
	}
}
