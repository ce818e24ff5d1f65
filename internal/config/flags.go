package config

import (
	"github.com/spf13/pflag"
)

// Flags are the command-line overrides of a Config.
type Flags struct {
	File      string
	Width     int
	Height    int
	OutputDir string
	Seed      int64
	Only      []string
}

// Register adds the config flags to fs.
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.File, "config", "c", "", "YAML file describing the batch")
	fs.IntVar(&f.Width, "width", DefaultWidth, "image width in pixels")
	fs.IntVar(&f.Height, "height", DefaultHeight, "image height in pixels")
	fs.StringVarP(&f.OutputDir, "output-dir", "o", DefaultOutputDir, "directory the images are written to")
	fs.Int64Var(&f.Seed, "seed", 0, "seed for the simulated photo noise (random when unset)")
	fs.StringSliceVar(&f.Only, "only", nil, "generate only these files (comma separated, .bmp optional)")
}

// Resolve builds the Config for a run: the defaults, then the config file
// if one was given, then every flag explicitly set on the command line.
func (f *Flags) Resolve(fs *pflag.FlagSet) (Config, error) {
	cfg := Default()
	if f.File != "" {
		var err error
		if cfg, err = Load(f.File); err != nil {
			return cfg, err
		}
	}

	if fs.Changed("width") {
		cfg.Width = f.Width
	}
	if fs.Changed("height") {
		cfg.Height = f.Height
	}
	if fs.Changed("output-dir") {
		cfg.OutputDir = f.OutputDir
	}
	if fs.Changed("seed") {
		seed := f.Seed
		cfg.Seed = &seed
	}

	cfg, err := cfg.Select(f.Only)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}
