// Package render turns a configuration into an image: it lays a grid over
// the scene's canvas, scores every grid point, maps scores to colors
// through a palette and hands the lazy color sequence to a raster encoder.
// Nothing is materialized except the encoded output.
package render

import (
	"context"
	"fmt"
	"io"
	"maps"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/colormap/internal/colormap"
	"github.com/san-kum/colormap/internal/config"
	"github.com/san-kum/colormap/internal/grid"
	"github.com/san-kum/colormap/internal/lazy"
	"github.com/san-kum/colormap/internal/metrics"
	"github.com/san-kum/colormap/internal/pixel"
	"github.com/san-kum/colormap/internal/raster"
	"github.com/san-kum/colormap/internal/scene"
)

type Renderer struct {
	scenes *scene.Registry
	log    logrus.FieldLogger
}

// New returns a renderer resolving scene names against scenes. A nil log
// uses the logrus standard logger.
func New(scenes *scene.Registry, log logrus.FieldLogger) *Renderer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Renderer{scenes: scenes, log: log}
}

// Job is a fully resolved render request.
type Job struct {
	Config  *config.Config
	Scene   scene.Scene
	Canvas  scene.Canvas
	Grid    *grid.Grid
	Field   *lazy.View[[]float64, float64]
	Palette colormap.Map[pixel.RGB8]

	// PaletteName is the resolved palette, before reversal.
	PaletteName string

	// Stats is set when the palette range came from the data.
	Stats *metrics.Summary

	score scene.Scorer
}

// Prepare validates cfg and resolves scene, canvas, palette and color range.
// Autoscaling evaluates the whole field once.
func (r *Renderer) Prepare(ctx context.Context, cfg *config.Config) (*Job, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sc, err := r.scenes.Get(cfg.Scene)
	if err != nil {
		return nil, err
	}
	order, _ := grid.ParseOrder(cfg.Order)

	canvas := sc.Canvas
	if cv := cfg.Canvas; cv != nil {
		canvas = scene.Canvas{X: grid.Range{Lo: cv.XMin, Hi: cv.XMax}, Y: grid.Range{Lo: cv.YMin, Hi: cv.YMax}}
	}
	g, err := Canvas(canvas, cfg.Width, cfg.Height, order)
	if err != nil {
		return nil, err
	}

	params := maps.Clone(sc.Defaults)
	if params == nil {
		params = scene.Params{}
	}
	maps.Copy(params, cfg.Params)
	xy := sc.Scorer(params)
	score := xy
	if order == grid.RowMajor {
		score = func(p []float64) float64 { return xy([]float64{p[1], p[0]}) }
	}

	name := cfg.Palette
	if name == "" {
		name = sc.Palette
	}
	pal, err := colormap.Get(name)
	if err != nil {
		return nil, err
	}
	if cfg.Reverse {
		pal = colormap.Reverse(pal)
	}

	job := &Job{
		Config: cfg,
		Scene:  sc,
		Canvas: canvas,
		Grid:   g,
		Field:  lazy.NewView[[]float64, float64](g, score),

		PaletteName: name,
		score:       xy,
	}

	log := r.log.WithFields(logrus.Fields{"scene": sc.Name, "palette": name})

	lo, hi, fixed := sc.Bounds(params)
	if rc := cfg.Range; rc != nil {
		lo, hi, fixed = rc.Lo, rc.Hi, !rc.Auto
	}
	if !fixed {
		start := time.Now()
		s, err := summarize(ctx, job.Field)
		if err != nil {
			return nil, err
		}
		job.Stats = &s
		lo, hi = s.Bounds()
		log.WithFields(logrus.Fields{
			"min":     s.Min,
			"max":     s.Max,
			"mean":    s.Mean,
			"elapsed": time.Since(start),
		}).Debug("autoscaled palette")
		if s.NonFinite > 0 {
			log.Warnf("%d of %d samples are not finite", s.NonFinite, s.Count)
		}
	}
	job.Palette = pal.Rescale(lo, hi)
	log.Debugf("grid %v, range [%g, %g]", g.Shape(), lo, hi)
	return job, nil
}

// Canvas builds the pixel grid over c. Rows run from the top of the canvas
// (Y.Hi) down, columns from X.Lo across. ColMajor lists the axes as (x, y),
// RowMajor as (y, x); both traverse pixels in scanline order.
func Canvas(c scene.Canvas, width, height int, order grid.Order) (*grid.Grid, error) {
	x, err := grid.NewAxis(width, c.X.Lo, c.X.Hi)
	if err != nil {
		return nil, err
	}
	y, err := grid.NewAxis(height, c.Y.Hi, c.Y.Lo)
	if err != nil {
		return nil, err
	}
	if order == grid.RowMajor {
		return grid.New(2, order, y, x)
	}
	return grid.New(2, order, x, y)
}

func summarize(ctx context.Context, field lazy.Domain[float64]) (metrics.Summary, error) {
	s := metrics.Summarize(lazy.All(guard(ctx, field).Start()))
	if err := ctx.Err(); err != nil {
		return metrics.Summary{}, err
	}
	return s, nil
}

// Encode writes the job's image in format f.
func (j *Job) Encode(ctx context.Context, w io.Writer, f raster.Format) error {
	var err error
	switch d := j.Config.Depth; {
	case j.Config.Color == "gray" && d == 16:
		gray := colormap.Convert(j.Palette, pixel.RGB8.Gray)
		err = encode(ctx, w, f, j, colormap.Convert(gray, pixel.ConvertGray[uint16, uint8]))
	case j.Config.Color == "gray":
		err = encode(ctx, w, f, j, colormap.Convert(j.Palette, pixel.RGB8.Gray))
	case d == 16:
		err = encode(ctx, w, f, j, colormap.Convert(j.Palette, pixel.ConvertRGB[uint16, uint8]))
	default:
		err = encode(ctx, w, f, j, j.Palette)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}

// encodable is a pixel type a palette can be built over.
type encodable[C any] interface {
	pixel.Pixel
	colormap.Mixer[C]
}

func encode[C encodable[C]](ctx context.Context, w io.Writer, f raster.Format, j *Job, pal colormap.Map[C]) error {
	colors := lazy.NewView[float64, C](guard(ctx, j.Field), pal.Eval)
	p, err := raster.New[C](colors, j.Config.Width, j.Config.Height)
	if err != nil {
		return err
	}
	if f == raster.PNM && j.Config.Plain {
		return p.WriteASCII(w)
	}
	return p.Encode(w, f)
}

// Pixels evaluates the job into memory as 8-bit RGB in scanline order.
func (j *Job) Pixels(ctx context.Context) ([]pixel.RGB8, error) {
	values, err := j.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	return lazy.Collect(lazy.NewView[float64, pixel.RGB8](lazy.Slice[float64](values), j.Palette.Eval).Start()), nil
}

// Row samples the field along pixel row y (0 is the top).
func (j *Job) Row(y int) ([]float64, error) {
	if y < 0 || y >= j.Config.Height {
		return nil, fmt.Errorf("render: row %d outside [0, %d)", y, j.Config.Height)
	}
	c := j.Field.Start()
	for range y * j.Config.Width {
		c.Next()
	}
	out := make([]float64, 0, j.Config.Width)
	for range j.Config.Width {
		out = append(out, c.Value())
		c.Next()
	}
	return out, nil
}
