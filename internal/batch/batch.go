// Package batch runs a list of renders described in a YAML file.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/colormap/internal/config"
	"github.com/san-kum/colormap/internal/grid"
	"github.com/san-kum/colormap/internal/lazy"
	"github.com/san-kum/colormap/internal/raster"
	"github.com/san-kum/colormap/internal/render"
	"github.com/san-kum/colormap/internal/storage"
)

// ErrUnknownPreset is returned when a job names a preset that does not exist.
var ErrUnknownPreset = errors.New("batch: unknown preset")

// Batch defines a scripted sequence of renders
type Batch struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Jobs        []Job  `yaml:"jobs"`
}

// Job is one entry of a batch. Any config field may appear next to the
// job keys and overrides the preset.
type Job struct {
	Name   string `yaml:"name"`
	Preset string `yaml:"preset"`
	Output string `yaml:"output"`
	Sweep  *Sweep `yaml:"sweep"`

	raw yaml.Node
}

// Sweep repeats a job over evenly spaced values of one scene parameter.
type Sweep struct {
	Param string  `yaml:"param"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Steps int     `yaml:"steps"`
}

func (j *Job) UnmarshalYAML(value *yaml.Node) error {
	type plain Job
	if err := value.Decode((*plain)(j)); err != nil {
		return err
	}
	j.raw = *value
	return nil
}

// Config resolves the job's render configuration: the preset (or the
// defaults) with the job's own fields laid over it.
func (j *Job) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if j.Preset != "" {
		cfg = config.GetPreset(j.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPreset, j.Preset)
		}
	}
	if j.raw.Kind != 0 {
		if err := j.raw.Decode(cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Expand returns one configuration per sweep value, or the job's single
// configuration when it has no sweep.
func (j *Job) Expand() ([]*config.Config, error) {
	cfg, err := j.Config()
	if err != nil {
		return nil, err
	}
	if j.Sweep == nil {
		return []*config.Config{cfg}, nil
	}
	axis, err := grid.NewAxis(j.Sweep.Steps, j.Sweep.Min, j.Sweep.Max)
	if err != nil {
		return nil, fmt.Errorf("sweep %s: %w", j.Sweep.Param, err)
	}

	out := make([]*config.Config, 0, axis.Size())
	for v := range lazy.All(axis.Start()) {
		c := cfg.Clone()
		if c.Params == nil {
			c.Params = map[string]float64{}
		}
		c.Params[j.Sweep.Param] = v
		out = append(out, c)
	}
	return out, nil
}

// Load loads a batch from a YAML file
func Load(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var b Batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, err
	}

	return &b, nil
}

// Result records where one render ended up.
type Result struct {
	Job     string
	Index   int
	Output  string
	RunID   string
	Elapsed time.Duration
}

// Runner executes batches. Jobs with an output path are written there,
// relative to OutDir; the rest go to Store.
type Runner struct {
	Renderer *render.Renderer
	Store    *storage.Store
	OutDir   string
	Log      logrus.FieldLogger
}

// Run executes all jobs in order and stops at the first failure, returning
// the results so far.
func (r *Runner) Run(ctx context.Context, b *Batch) ([]Result, error) {
	log := r.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	results := make([]Result, 0, len(b.Jobs))

	for i, job := range b.Jobs {
		name := job.Name
		if name == "" {
			name = fmt.Sprintf("job%d", i+1)
		}
		cfgs, err := job.Expand()
		if err != nil {
			return results, fmt.Errorf("job %s: %w", name, err)
		}

		for k, cfg := range cfgs {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			log.WithFields(logrus.Fields{"job": name, "step": k + 1, "of": len(cfgs)}).Infof("rendering %s", cfg.Scene)

			res, err := r.runOne(ctx, name, k, len(cfgs), job.Output, cfg)
			if err != nil {
				return results, fmt.Errorf("job %s: %w", name, err)
			}
			results = append(results, res)
		}
	}

	return results, nil
}

func (r *Runner) runOne(ctx context.Context, name string, index, total int, output string, cfg *config.Config) (Result, error) {
	start := time.Now()
	job, err := r.Renderer.Prepare(ctx, cfg)
	if err != nil {
		return Result{}, err
	}
	res := Result{Job: name, Index: index}

	if output == "" {
		if r.Store == nil {
			return Result{}, errors.New("batch: no output path and no store")
		}
		f, err := raster.ParseFormat(cfg.Format)
		if err != nil {
			return Result{}, err
		}
		res.RunID, err = r.Store.SaveJob(ctx, job, f, time.Since(start))
		if err != nil {
			return Result{}, err
		}
		res.Elapsed = time.Since(start)
		return res, nil
	}

	path := output
	if total > 1 {
		ext := filepath.Ext(path)
		path = fmt.Sprintf("%s_%03d%s", path[:len(path)-len(ext)], index, ext)
	}
	if r.OutDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(r.OutDir, path)
	}
	if err := WriteFile(ctx, job, path); err != nil {
		return Result{}, err
	}
	res.Output = path
	res.Elapsed = time.Since(start)
	return res, nil
}

// WriteFile encodes job into path, picking the format from the extension.
// A failed write removes the partial file.
func WriteFile(ctx context.Context, job *render.Job, path string) error {
	f, err := raster.FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := job.Encode(ctx, file, f); err != nil {
		file.Close()
		os.Remove(path)
		return err
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
