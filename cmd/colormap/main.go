package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/colormap/internal/batch"
	"github.com/san-kum/colormap/internal/colormap"
	"github.com/san-kum/colormap/internal/config"
	"github.com/san-kum/colormap/internal/export"
	"github.com/san-kum/colormap/internal/grid"
	"github.com/san-kum/colormap/internal/raster"
	"github.com/san-kum/colormap/internal/render"
	"github.com/san-kum/colormap/internal/scene"
	"github.com/san-kum/colormap/internal/storage"
	"github.com/san-kum/colormap/internal/viz"
)

var (
	dataDir    string
	verbose    bool
	configFile string
	preset     string

	// render flags
	palette string
	reverse bool
	width   int
	height  int
	depth   int
	color   string
	order   string
	format  string
	plain   bool
	output  string
	save    bool
	canvas  []float64
	rangeLo float64
	rangeHi float64
	auto    bool
	params  map[string]string

	// grid flags
	gridAxes  []string
	gridOrder string

	// palette listing, profile and swatch flags
	swatchCells int
	samples     int
	stripWidth  int
	stripHeight int
	stripOutput string
	svgOut      string

	// buffer flags
	bufPalette string
	bufWidth   int
	bufLo      float64
	bufHi      float64
	bufOutput  string

	// batch flags
	outDir string

	// preview flags
	saveConfig string
)

var log = logrus.StandardLogger()

func main() {
	rootCmd := &cobra.Command{
		Use:   "colormap",
		Short: "render scalar fields through color palettes",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".colormap", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	renderCmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "render a scene to an image file or the run catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderScene,
	}
	addRenderFlags(renderCmd)
	renderCmd.Flags().StringVarP(&output, "output", "o", "", "output file (format from extension)")
	renderCmd.Flags().BoolVar(&save, "save", false, "store the render in the run catalog")

	previewCmd := &cobra.Command{
		Use:   "preview [scene]",
		Short: "explore a scene in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  previewScene,
	}
	addRenderFlags(previewCmd)
	previewCmd.Flags().StringVar(&saveConfig, "save-config", "", "write the final view as a YAML config")

	gridCmd := &cobra.Command{
		Use:   "grid",
		Short: "print grid points in traversal order",
		RunE:  printGrids,
	}
	gridCmd.Flags().StringArrayVar(&gridAxes, "axis", nil, "axis as n:lo:hi (repeatable)")
	gridCmd.Flags().StringVar(&gridOrder, "order", "row", "major order: row or col")

	palettesCmd := &cobra.Command{
		Use:   "palettes",
		Short: "list built-in palettes",
		RunE:  listPalettes,
	}
	palettesCmd.Flags().IntVar(&swatchCells, "width", 48, "swatch width in cells")

	profileCmd := &cobra.Command{
		Use:   "profile [palette]",
		Short: "plot the RGB channels of a palette",
		Args:  cobra.ExactArgs(1),
		RunE:  profilePalette,
	}
	profileCmd.Flags().IntVar(&samples, "samples", 64, "number of samples")
	profileCmd.Flags().BoolVar(&reverse, "reverse", false, "reverse the palette")

	swatchCmd := &cobra.Command{
		Use:   "swatch [palette]",
		Short: "write a palette strip as an image or SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  writeSwatch,
	}
	swatchCmd.Flags().IntVar(&stripWidth, "width", 400, "image width")
	swatchCmd.Flags().IntVar(&stripHeight, "height", 25, "image height")
	swatchCmd.Flags().BoolVar(&reverse, "reverse", false, "reverse the palette")
	swatchCmd.Flags().StringVarP(&stripOutput, "output", "o", "", "output file (.svg for vector)")

	bufferCmd := &cobra.Command{
		Use:   "buffer [file]",
		Short: "map a buffer of numbers to an image",
		Long:  "Reads whitespace-separated numbers from file (or stdin for -). Without a file, maps the ramp 0..99.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  mapBuffer,
	}
	bufferCmd.Flags().StringVar(&bufPalette, "palette", "inferno", "palette name")
	bufferCmd.Flags().BoolVar(&reverse, "reverse", false, "reverse the palette")
	bufferCmd.Flags().IntVar(&bufWidth, "width", 10, "image width")
	bufferCmd.Flags().Float64Var(&bufLo, "lo", 0, "value mapped to the first color")
	bufferCmd.Flags().Float64Var(&bufHi, "hi", 0, "value mapped to the last color")
	bufferCmd.Flags().StringVarP(&bufOutput, "output", "o", "buf.ppm", "output file")

	batchCmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "run a YAML batch of renders",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().StringVar(&outDir, "out", "", "directory for relative outputs")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored renders",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored render as JSON or its profile as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&svgOut, "svg", "", "write the row profile as SVG to this file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tSCENE\tPALETTE\tSIZE")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				pal := p.Palette
				if pal == "" {
					pal = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\n", name, p.Scene, pal, p.Width, p.Height)
			}
			return w.Flush()
		},
	}

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "list built-in scenes",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := scene.NewRegistry()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SCENE\tPALETTE\tDESCRIPTION")
			for _, name := range reg.List() {
				s, _ := reg.Get(name)
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, s.Palette, s.Description)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(renderCmd, previewCmd, gridCmd, palettesCmd, profileCmd, swatchCmd, bufferCmd, batchCmd, listCmd, exportCmd, presetsCmd, scenesCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func addRenderFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "YAML config file")
	f.StringVar(&preset, "preset", "", "start from a named preset")
	f.StringVar(&palette, "palette", "", "palette name (default: the scene's)")
	f.BoolVar(&reverse, "reverse", false, "reverse the palette")
	f.IntVar(&width, "width", config.DefaultWidth, "image width")
	f.IntVar(&height, "height", config.DefaultHeight, "image height")
	f.IntVar(&depth, "depth", config.DefaultDepth, "bits per channel: 8 or 16")
	f.StringVar(&color, "color", config.DefaultColor, "color space: rgb or gray")
	f.StringVar(&order, "order", config.DefaultOrder, "grid traversal order: row or col")
	f.StringVar(&format, "format", config.DefaultFormat, "pnm, png, bmp or tiff")
	f.BoolVar(&plain, "plain", false, "plain (ASCII) Netpbm output")
	f.Float64SliceVar(&canvas, "canvas", nil, "viewport as x_min,x_max,y_min,y_max")
	f.Float64Var(&rangeLo, "lo", 0, "field value mapped to the first color")
	f.Float64Var(&rangeHi, "hi", 1, "field value mapped to the last color")
	f.BoolVar(&auto, "auto", false, "scale the palette to the field's extent")
	f.StringToStringVar(&params, "param", nil, "scene parameter as key=value (repeatable)")
}

// resolveConfig layers defaults, preset, config file, positional scene and
// changed flags, in that order.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if len(args) > 0 {
		if args[0] != cfg.Scene {
			cfg.Canvas = nil
			cfg.Params = nil
		}
		cfg.Scene = args[0]
	}

	flags := cmd.Flags()
	if flags.Changed("palette") {
		cfg.Palette = palette
	}
	if flags.Changed("reverse") {
		cfg.Reverse = reverse
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("depth") {
		cfg.Depth = depth
	}
	if flags.Changed("color") {
		cfg.Color = color
	}
	if flags.Changed("order") {
		cfg.Order = order
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("plain") {
		cfg.Plain = plain
	}
	if flags.Changed("canvas") {
		if len(canvas) != 4 {
			return nil, fmt.Errorf("--canvas needs 4 values, got %d", len(canvas))
		}
		cfg.Canvas = &config.CanvasConfig{XMin: canvas[0], XMax: canvas[1], YMin: canvas[2], YMax: canvas[3]}
	}
	if flags.Changed("auto") && auto {
		cfg.Range = &config.RangeConfig{Auto: true}
	} else if flags.Changed("lo") || flags.Changed("hi") {
		cfg.Range = &config.RangeConfig{Lo: rangeLo, Hi: rangeHi}
	}
	if flags.Changed("param") {
		if cfg.Params == nil {
			cfg.Params = make(map[string]float64, len(params))
		}
		for k, v := range params {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("param %s: %w", k, err)
			}
			cfg.Params[k] = f
		}
	}

	return cfg, cfg.Validate()
}

func renderScene(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = output
	}

	r := render.New(scene.NewRegistry(), log)
	start := time.Now()

	job, err := r.Prepare(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	lo, hi := job.Palette.Range()
	log.WithFields(logrus.Fields{"scene": cfg.Scene, "palette": job.PaletteName, "lo": lo, "hi": hi}).Debug("prepared")

	fmt.Printf("rendering %s (%dx%d, %s)...\n", cfg.Scene, cfg.Width, cfg.Height, job.PaletteName)

	if save {
		f, err := raster.ParseFormat(cfg.Format)
		if err != nil {
			return err
		}
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.SaveJob(cmd.Context(), job, f, time.Since(start))
		if err != nil {
			return err
		}
		fmt.Printf("completed in %v\n", time.Since(start))
		fmt.Printf("run id: %s\n", runID)
		return nil
	}

	path := cfg.Output
	if path == "" {
		path, err = defaultOutput(cfg)
		if err != nil {
			return err
		}
	}
	if err := batch.WriteFile(cmd.Context(), job, path); err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("wrote %s\n", path)
	if job.Stats != nil {
		fmt.Printf("range: [%.6g, %.6g] (%d samples, %d non-finite)\n", lo, hi, job.Stats.Count, job.Stats.NonFinite)
	}
	return nil
}

// defaultOutput names the file after the scene, with the Netpbm extension
// matching the color space.
func defaultOutput(cfg *config.Config) (string, error) {
	f, err := raster.ParseFormat(cfg.Format)
	if err != nil {
		return "", err
	}
	ext := string(f)
	if f == raster.PNM {
		ext = "ppm"
		if cfg.Color == "gray" {
			ext = "pgm"
		}
	}
	return cfg.Scene + "." + ext, nil
}

func previewScene(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	// keep logrus from drawing over the alt screen
	log.SetLevel(logrus.ErrorLevel)

	r := render.New(scene.NewRegistry(), log)
	p := tea.NewProgram(viz.NewPreview(r, cfg), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}

	if saveConfig != "" {
		m, ok := final.(viz.Preview)
		if !ok {
			return fmt.Errorf("unexpected model %T", final)
		}
		if err := config.Save(saveConfig, m.Config()); err != nil {
			return err
		}
		fmt.Printf("saved view to %s\n", saveConfig)
	}
	return nil
}

func printGrids(cmd *cobra.Command, args []string) error {
	o, err := grid.ParseOrder(gridOrder)
	if err != nil {
		return err
	}

	if len(gridAxes) == 0 {
		demos := []*grid.Grid{}
		for _, demo := range []struct {
			order grid.Order
			axes  []grid.Axis
		}{
			{grid.RowMajor, []grid.Axis{grid.MustAxis(11, 0, 10)}},
			{grid.RowMajor, []grid.Axis{grid.MustAxis(4, 0, 10), grid.MustAxis(5, 0, 4)}},
			{grid.ColMajor, []grid.Axis{grid.MustAxis(4, 0, 10), grid.MustAxis(5, 0, 4)}},
		} {
			g, err := grid.New(len(demo.axes), demo.order, demo.axes...)
			if err != nil {
				return err
			}
			demos = append(demos, g)
		}
		for _, g := range demos {
			if err := printGrid(g); err != nil {
				return err
			}
		}
		return nil
	}

	axes := make([]grid.Axis, 0, len(gridAxes))
	for _, s := range gridAxes {
		a, err := parseAxis(s)
		if err != nil {
			return err
		}
		axes = append(axes, a)
	}
	g, err := grid.New(len(axes), o, axes...)
	if err != nil {
		return err
	}
	return printGrid(g)
}

func parseAxis(s string) (grid.Axis, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return grid.Axis{}, fmt.Errorf("axis %q: want n:lo:hi", s)
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		return grid.Axis{}, fmt.Errorf("axis %q: %w", s, err)
	}
	lo, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return grid.Axis{}, fmt.Errorf("axis %q: %w", s, err)
	}
	hi, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return grid.Axis{}, fmt.Errorf("axis %q: %w", s, err)
	}
	return grid.NewAxis(n, lo, hi)
}

func printGrid(g *grid.Grid) error {
	fmt.Printf("%d-D grid, %s-major, shape %v\n", g.Dim(), g.Order(), g.Shape())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for p := range g.All() {
		cells := make([]string, len(p))
		for i, x := range p {
			cells[i] = strconv.FormatFloat(x, 'g', 3, 64)
		}
		fmt.Fprintf(w, "{%s}\n", strings.Join(cells, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println("----------------")
	return nil
}

func listPalettes(cmd *cobra.Command, args []string) error {
	names := colormap.Names()
	pad := 0
	for _, name := range names {
		pad = max(pad, len(name))
	}
	for _, name := range names {
		m := colormap.Must(name)
		fmt.Printf("%-*s  %s  %d stops\n", pad, name, viz.Swatch(m, swatchCells), m.Len())
	}
	return nil
}

func profilePalette(cmd *cobra.Command, args []string) error {
	m, err := colormap.Get(args[0])
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, colormap.Names())
	}
	if reverse {
		m = colormap.Reverse(m)
	}

	colors, err := m.Sample(samples)
	if err != nil {
		return err
	}
	r := make([]float64, len(colors))
	g := make([]float64, len(colors))
	b := make([]float64, len(colors))
	for i, c := range colors {
		r[i], g[i], b[i] = float64(c.R), float64(c.G), float64(c.B)
	}

	fmt.Println(viz.Swatch(m, min(samples, 80)))
	fmt.Println()
	graph := asciigraph.PlotMany([][]float64{r, g, b},
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(255),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green, asciigraph.Blue),
		asciigraph.Caption(fmt.Sprintf("%s channels", args[0])),
	)
	fmt.Println(graph)
	return nil
}

func writeSwatch(cmd *cobra.Command, args []string) error {
	name := args[0]
	path := stripOutput
	if path == "" {
		path = name + ".ppm"
	}

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		m, err := colormap.Get(name)
		if err != nil {
			return err
		}
		if reverse {
			m = colormap.Reverse(m)
		}
		if err := os.WriteFile(path, []byte(export.PaletteToSVG(name, m, stripWidth, stripHeight)), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	}

	cfg := config.GetPreset("strip")
	cfg.Palette = name
	cfg.Reverse = reverse
	cfg.Width = stripWidth
	cfg.Height = stripHeight
	if name == "gray" {
		cfg.Color = "gray"
	}

	job, err := render.New(scene.NewRegistry(), log).Prepare(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	if err := batch.WriteFile(cmd.Context(), job, path); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	b, err := batch.Load(args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runner := &batch.Runner{
		Renderer: render.New(scene.NewRegistry(), log),
		Store:    st,
		OutDir:   outDir,
		Log:      log,
	}

	fmt.Printf("running batch %s (%d jobs)...\n", b.Name, len(b.Jobs))
	start := time.Now()
	results, err := runner.Run(cmd.Context(), b)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "JOB\tSTEP\tRESULT\tTIME")
	for _, res := range results {
		where := res.Output
		if where == "" {
			where = "run " + res.RunID
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%v\n", res.Job, res.Index+1, where, res.Elapsed.Round(time.Millisecond))
	}
	if ferr := w.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}

	fmt.Printf("completed %d renders in %v\n", len(results), time.Since(start))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tPALETTE\tTIME\tSIZE\tFORMAT\tRANGE\tELAPSED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%dx%d\t%s\t[%.4g, %.4g]\t%v\n",
			run.ID,
			run.Scene,
			run.Palette,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width, run.Height,
			run.Format,
			run.Range[0], run.Range[1],
			run.Elapsed.Round(time.Millisecond),
		)
	}

	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	if svgOut == "" {
		return st.ExportJSON(os.Stdout, runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	profile, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}
	m, err := colormap.Get(meta.Palette)
	if err != nil {
		return err
	}
	m = m.Rescale(meta.Range[0], meta.Range[1])

	svg := export.ProfileToSVG(profile.Values, m, 800, 300)
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", svgOut)
	return nil
}

func mapBuffer(cmd *cobra.Command, args []string) error {
	values, err := readBuffer(args)
	if err != nil {
		return err
	}
	if bufWidth < 1 || len(values)%bufWidth != 0 {
		return fmt.Errorf("%d values do not fill rows of width %d", len(values), bufWidth)
	}

	m, err := colormap.Get(bufPalette)
	if err != nil {
		return err
	}
	if reverse {
		m = colormap.Reverse(m)
	}

	lo, hi := bufLo, bufHi
	if !cmd.Flags().Changed("lo") && !cmd.Flags().Changed("hi") {
		lo, hi = 0, float64(len(values))
		if len(args) > 0 {
			lo, hi = summarizeBuffer(values)
		}
	}
	m = m.Rescale(lo, hi)
	log.WithFields(logrus.Fields{"values": len(values), "lo": lo, "hi": hi}).Debug("mapping buffer")

	f, err := raster.FormatFromPath(bufOutput)
	if err != nil {
		return err
	}
	pix, err := bufferPixmap(values, m, bufWidth)
	if err != nil {
		return err
	}

	file, err := os.Create(bufOutput)
	if err != nil {
		return err
	}
	if err := pix.Encode(file, f); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", bufOutput)
	return nil
}
