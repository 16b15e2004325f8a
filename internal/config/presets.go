package config

import "slices"

var Presets = map[string]*Config{
	"appleman": {
		Scene: "mandelbrot", Palette: "inferno", Width: 701, Height: 401,
		Params: map[string]float64{"max_it": 1000},
	},
	"seahorse": {
		Scene: "mandelbrot", Palette: "viridis", Width: 600, Height: 450,
		Canvas: &CanvasConfig{XMin: -0.7535, XMax: -0.7335, YMin: 0.1239, YMax: 0.1389},
		Params: map[string]float64{"max_it": 2000},
	},
	"elephant": {
		Scene: "mandelbrot", Palette: "magma", Width: 800, Height: 600,
		Canvas: &CanvasConfig{XMin: 0.25, XMax: 0.3, YMin: -0.01875, YMax: 0.01875},
		Params: map[string]float64{"max_it": 1500},
	},
	"julia": {
		Scene: "julia", Palette: "parula", Width: 640, Height: 400,
		Params: map[string]float64{"c_re": -0.8, "c_im": 0.156},
	},
	"ripple": {
		Scene: "ripple", Palette: "rdbu", Width: 512, Height: 512,
		Range: &RangeConfig{Auto: true},
	},
	"strip": {
		Scene: "strip", Width: 400, Height: 25,
	},
}

// GetPreset returns a copy of the named preset with unset fields filled
// from DefaultConfig, or nil if there is no such preset.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := p.Clone()
	def := DefaultConfig()
	if cfg.Depth == 0 {
		cfg.Depth = def.Depth
	}
	if cfg.Color == "" {
		cfg.Color = def.Color
	}
	if cfg.Order == "" {
		cfg.Order = def.Order
	}
	if cfg.Format == "" {
		cfg.Format = def.Format
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
