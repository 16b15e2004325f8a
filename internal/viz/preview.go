package viz

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/colormap/internal/colormap"
	"github.com/san-kum/colormap/internal/config"
	"github.com/san-kum/colormap/internal/pixel"
	"github.com/san-kum/colormap/internal/render"
)

const (
	sidebarWidth = 34
	panFraction  = 0.1
	zoomFactor   = 0.8
)

// Preview is a Bubble Tea model showing a scene at terminal resolution.
// Every navigation key re-renders the scene synchronously.
type Preview struct {
	renderer *render.Renderer
	base     *config.Config
	cfg      *config.Config
	palettes []string
	theme    Theme

	job     *render.Job
	pixels  []pixel.RGB8
	profile []float64
	err     error

	width, height int
	showHelp      bool
}

// NewPreview renders cfg once and returns the model. The image size in cfg
// is replaced by the terminal size.
func NewPreview(r *render.Renderer, cfg *config.Config) Preview {
	m := Preview{
		renderer: r,
		base:     cfg.Clone(),
		cfg:      cfg.Clone(),
		palettes: colormap.Names(),
		theme:    ThemeCyberpunk,
		width:    80,
		height:   24,
	}
	m.refresh()
	if m.job != nil && m.cfg.Canvas == nil {
		c := m.job.Scene.Canvas
		m.cfg.Canvas = &config.CanvasConfig{XMin: c.X.Lo, XMax: c.X.Hi, YMin: c.Y.Lo, YMax: c.Y.Hi}
		m.base = m.cfg.Clone()
	}
	return m
}

func (m Preview) Init() tea.Cmd { return nil }

func (m Preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.refresh()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.pan(-1, 0)
		case "right", "l":
			m.pan(1, 0)
		case "up", "k":
			m.pan(0, 1)
		case "down", "j":
			m.pan(0, -1)
		case "+", "=":
			m.zoom(zoomFactor)
		case "-", "_":
			m.zoom(1 / zoomFactor)
		case "p":
			m.nextPalette()
		case "r":
			m.cfg.Reverse = !m.cfg.Reverse
			m.refresh()
		case "t":
			m.theme = NextTheme(m.theme)
		case "0":
			m.cfg = m.base.Clone()
			m.refresh()
		case "?":
			m.showHelp = !m.showHelp
		}
	}
	return m, nil
}

func (m *Preview) imageSize() (int, int) {
	return max(2, m.width-sidebarWidth), max(2, (m.height-2)*2)
}

func (m *Preview) refresh() {
	m.cfg.Width, m.cfg.Height = m.imageSize()
	job, err := m.renderer.Prepare(context.Background(), m.cfg)
	if err != nil {
		m.err = err
		return
	}
	pixels, err := job.Pixels(context.Background())
	if err != nil {
		m.err = err
		return
	}
	m.job, m.err = job, nil
	m.pixels = pixels
	m.profile, _ = job.Row(m.cfg.Height / 2)
}

func (m *Preview) pan(dx, dy float64) {
	c := m.cfg.Canvas
	if c == nil {
		return
	}
	sx, sy := (c.XMax-c.XMin)*panFraction, (c.YMax-c.YMin)*panFraction
	c.XMin, c.XMax = c.XMin+dx*sx, c.XMax+dx*sx
	c.YMin, c.YMax = c.YMin+dy*sy, c.YMax+dy*sy
	m.refresh()
}

func (m *Preview) zoom(f float64) {
	c := m.cfg.Canvas
	if c == nil {
		return
	}
	cx, cy := (c.XMin+c.XMax)/2, (c.YMin+c.YMax)/2
	hx, hy := (c.XMax-c.XMin)/2*f, (c.YMax-c.YMin)/2*f
	c.XMin, c.XMax = cx-hx, cx+hx
	c.YMin, c.YMax = cy-hy, cy+hy
	m.refresh()
}

func (m *Preview) nextPalette() {
	current := m.cfg.Palette
	if current == "" && m.job != nil {
		current = m.job.Scene.Palette
	}
	i := slices.Index(m.palettes, current)
	m.cfg.Palette = m.palettes[(i+1)%len(m.palettes)]
	m.refresh()
}

// Config returns the configuration currently on screen.
func (m Preview) Config() *config.Config { return m.cfg.Clone() }

func (m Preview) View() string {
	if m.job == nil {
		return lipgloss.NewStyle().Foreground(m.theme.Warning).Render(fmt.Sprintf("error: %v", m.err)) + "\n"
	}
	t := m.theme

	image := HalfBlock(m.pixels, m.cfg.Width, m.cfg.Height)

	var s strings.Builder
	s.WriteString(PaletteText(strings.ToUpper(m.job.Scene.Name), m.job.Palette) + "\n")
	s.WriteString(t.label().Render(m.job.Scene.Description) + "\n\n")

	row := func(label, value string) {
		s.WriteString(t.label().Render(fmt.Sprintf("%-8s", label)) + t.value().Render(value) + "\n")
	}
	name := m.cfg.Palette
	if name == "" {
		name = m.job.Scene.Palette
	}
	if m.cfg.Reverse {
		name += " (reversed)"
	}
	lo, hi := m.job.Palette.Range()
	c := m.cfg.Canvas
	row("palette", name)
	row("range", fmt.Sprintf("[%.3g, %.3g]", lo, hi))
	if c != nil {
		row("x", fmt.Sprintf("[%.4g, %.4g]", c.XMin, c.XMax))
		row("y", fmt.Sprintf("[%.4g, %.4g]", c.YMin, c.YMax))
	}
	row("pixels", fmt.Sprintf("%dx%d", m.cfg.Width, m.cfg.Height))
	s.WriteString("\n" + Swatch(m.job.Palette, sidebarWidth-4) + "\n\n")

	if len(m.profile) > 1 {
		chart := asciigraph.Plot(m.profile,
			asciigraph.Height(4),
			asciigraph.Width(sidebarWidth-12),
			asciigraph.Caption("middle row"))
		s.WriteString(t.label().Render(chart) + "\n")
	}
	if m.err != nil {
		s.WriteString(lipgloss.NewStyle().Foreground(t.Warning).Render(m.err.Error()) + "\n")
	}

	s.WriteString("\n" + t.key().Render("hjkl") + t.label().Render(" pan  ") +
		t.key().Render("+/-") + t.label().Render(" zoom  ") +
		t.key().Render("p") + t.label().Render(" palette  ") +
		t.key().Render("?") + t.label().Render(" help"))

	panel := lipgloss.NewStyle().Width(sidebarWidth).PaddingLeft(2).Render(s.String())
	view := lipgloss.JoinHorizontal(lipgloss.Top, image, panel)
	if m.showHelp {
		return `
╔══════════════════════════════╗
║       KEYBOARD SHORTCUTS     ║
╠══════════════════════════════╣
║  Arrows/hjkl - Pan           ║
║  + / -       - Zoom in/out   ║
║  P           - Next palette  ║
║  R           - Reverse       ║
║  T           - Cycle themes  ║
║  0           - Reset view    ║
║  ?           - Toggle help   ║
║  Q           - Quit          ║
╚══════════════════════════════╝
` + "\n" + view
	}
	return view
}
