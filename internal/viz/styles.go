package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/colormap/internal/colormap"
	"github.com/san-kum/colormap/internal/pixel"
)

var (
	// Subtle muted text
	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	// Key hint style
	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	// Header with decorative line
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))
)

// Color converts a pixel to a lipgloss color.
func Color(c pixel.RGB8) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// Swatch renders width blocks sampled evenly across the palette's range.
func Swatch(m colormap.Map[pixel.RGB8], width int) string {
	if width < 2 {
		width = 2
	}
	colors, err := m.Sample(width)
	if err != nil {
		return ""
	}
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(lipgloss.NewStyle().Foreground(Color(c)).Render("█"))
	}
	return b.String()
}

// PaletteText colors each rune of text by its position along the palette.
func PaletteText(text string, m colormap.Map[pixel.RGB8]) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	lo, hi := m.Range()

	var result strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		style := lipgloss.NewStyle().Foreground(Color(m.Eval(lo + t*(hi-lo))))
		result.WriteString(style.Render(string(r)))
	}
	return result.String()
}

// HalfBlock draws a width x height image, pixels in scanline order, using
// upper half blocks: each text line carries two pixel rows. An odd last row
// is drawn against the terminal background.
func HalfBlock(pixels []pixel.RGB8, width, height int) string {
	if width <= 0 || height <= 0 || len(pixels) < width*height {
		return ""
	}
	var b strings.Builder
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			style := lipgloss.NewStyle().Foreground(Color(pixels[y*width+x]))
			if y+1 < height {
				style = style.Background(Color(pixels[(y+1)*width+x]))
			}
			b.WriteString(style.Render("▀"))
		}
		if y+2 < height {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// SparklineChart renders a mini sparkline from values, each bar colored
// by the palette at that value.
func SparklineChart(values []float64, m colormap.Map[pixel.RGB8], width int) string {
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}

	// Sparkline characters from low to high
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	// Find min/max
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return strings.Repeat("─", width)
	}

	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	// Sample to fit width
	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var result strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		v := values[i*step]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			result.WriteRune(' ')
			continue
		}
		norm := (v - lo) / rng
		idx := int(norm * float64(len(chars)-1))
		idx = max(0, min(idx, len(chars)-1))
		result.WriteString(lipgloss.NewStyle().Foreground(Color(m.Eval(v))).Render(string(chars[idx])))
	}

	return result.String()
}

// BoxWithTitle renders a titled box
func BoxWithTitle(title, content string, width int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Width(width).
		Padding(0, 1)

	header := "╭─ " + titleStyle.Render(title) + " " + strings.Repeat("─", max(0, width-len(title)-6)) + "╮"
	return header + "\n" + box.Render(content)
}

// Decorative separator
func Separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", max(0, mid-3))
	right := strings.Repeat("─", max(0, width-mid-3))
	return Subtle.Render(left + " ◆ " + right)
}
