package export

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/colormap/internal/colormap"
)

func TestPaletteToSVG(t *testing.T) {
	svg := PaletteToSVG("rdbu", colormap.Must("rdbu").Rescale(-5, 5), 200, 20)

	if !strings.HasPrefix(svg, "<?xml") {
		t.Error("missing xml header")
	}
	if got := strings.Count(svg, "<stop "); got != 8 {
		t.Errorf("expected 8 stops, got %d", got)
	}
	if !strings.Contains(svg, `<stop offset="0.00%" stop-color="#b2182b"/>`) {
		t.Error("missing first stop")
	}
	if !strings.Contains(svg, `<stop offset="100.00%" stop-color="#2166ac"/>`) {
		t.Error("missing last stop")
	}
	if !strings.Contains(svg, `fill="url(#rdbu)"`) {
		t.Error("gradient not referenced")
	}
}

func TestProfileToSVG(t *testing.T) {
	pal := colormap.Must("gray")
	svg := ProfileToSVG([]float64{0, 0.5, math.NaN(), 1}, pal, 100, 50)

	if strings.Count(svg, "M") != 2 {
		t.Errorf("expected the NaN to split the path in two: %s", svg)
	}
	if !strings.Contains(svg, `fill="#ffffff"`) {
		t.Error("expected a white band cell for value 1")
	}

	if ProfileToSVG([]float64{1}, pal, 10, 10) != "" {
		t.Error("expected empty output for a single value")
	}
	if ProfileToSVG([]float64{math.NaN(), math.Inf(1)}, pal, 10, 10) != "" {
		t.Error("expected empty output without finite values")
	}
}
