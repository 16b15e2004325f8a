package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/colormap/internal/colormap"
	"github.com/san-kum/colormap/internal/pixel"
)

func hex(c pixel.RGB8) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// PaletteToSVG renders a palette as a horizontal gradient swatch, one
// gradient stop per breakpoint.
func PaletteToSVG(name string, m colormap.Map[pixel.RGB8], width, height int) string {
	if m.Len() == 0 {
		return ""
	}
	lo, hi := m.Range()

	var sb strings.Builder

	// SVG header
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<defs>
<linearGradient id="%s" x1="0" y1="0" x2="1" y2="0">
`, width, height, width, height, name))

	for _, s := range m.Stops() {
		offset := (s.At - lo) / (hi - lo) * 100
		sb.WriteString(fmt.Sprintf(`<stop offset="%.2f%%" stop-color="%s"/>
`, offset, hex(s.Value)))
	}

	sb.WriteString(fmt.Sprintf(`</linearGradient>
</defs>
<rect width="100%%" height="100%%" fill="url(#%s)"/>
</svg>`, name))
	return sb.String()
}

// ProfileToSVG draws values as a polyline over a palette-colored
// background strip. Non-finite values break the line.
func ProfileToSVG(values []float64, m colormap.Map[pixel.RGB8], width, height int) string {
	if len(values) < 2 {
		return ""
	}

	// Find bounds
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if !finite(v) {
			continue
		}
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}
	if minY > maxY {
		return ""
	}

	// Add padding
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// Color band along the bottom edge
	band := float64(height) * 0.05
	dx := float64(width) / float64(len(values))
	for i, v := range values {
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, float64(i)*dx, float64(height)-band, dx+0.5, band, hex(m.Eval(v))))
	}

	sb.WriteString(`<path fill="none" stroke="#e0e0e0" stroke-width="1.5" d="`)
	pen := false
	for i, v := range values {
		if !finite(v) {
			pen = false
			continue
		}
		x := float64(i) / float64(len(values)-1) * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if !pen {
			sb.WriteString(fmt.Sprintf("M%.1f,%.1f", x, y))
			pen = true
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
