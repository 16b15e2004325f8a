package storage

import (
	"context"
	"io"
	"time"

	"github.com/san-kum/colormap/internal/grid"
	"github.com/san-kum/colormap/internal/lazy"
	"github.com/san-kum/colormap/internal/raster"
	"github.com/san-kum/colormap/internal/render"
)

// SaveJob encodes job in format f and records it together with the
// profile of the middle image row.
func (s *Store) SaveJob(ctx context.Context, job *render.Job, f raster.Format, elapsed time.Duration) (string, error) {
	cfg := job.Config
	lo, hi := job.Palette.Range()

	meta := RunMetadata{
		Scene:   job.Scene.Name,
		Palette: job.PaletteName,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Depth:   cfg.Depth,
		Color:   cfg.Color,
		Format:  string(f),
		Range:   [2]float64{lo, hi},
		Params:  cfg.Params,
		Elapsed: elapsed,
	}
	if st := job.Stats; st != nil {
		meta.Metrics = map[string]float64{
			"min":        st.Min,
			"max":        st.Max,
			"mean":       st.Mean,
			"non_finite": float64(st.NonFinite),
		}
	}

	ext := string(f)
	if f == raster.PNM {
		ext = "ppm"
		if cfg.Color == "gray" {
			ext = "pgm"
		}
	}

	profile, err := middleRow(job)
	if err != nil {
		return "", err
	}

	encode := func(w io.Writer) error { return job.Encode(ctx, w, f) }
	return s.Save(meta, ext, encode, profile)
}

func middleRow(job *render.Job) (*Profile, error) {
	row := job.Config.Height / 2
	values, err := job.Row(row)
	if err != nil {
		return nil, err
	}
	axis, err := grid.NewAxis(job.Config.Width, job.Canvas.X.Lo, job.Canvas.X.Hi)
	if err != nil {
		return nil, err
	}
	return &Profile{Row: row, X: lazy.Collect(axis.Start()), Values: values}, nil
}
