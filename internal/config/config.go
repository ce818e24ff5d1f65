// Package config holds the parameters of a generation batch.
package config

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/anas-shakeel/graybmp/internal/patterns"
)

const (
	DefaultWidth     = 160
	DefaultHeight    = 120
	DefaultOutputDir = "test_images"
)

// Config is the parameter object of a batch run.
type Config struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	OutputDir string `yaml:"output_dir"`
	// Seed for the random source used by the photo pattern. Nil draws a
	// new seed on every run.
	Seed     *int64          `yaml:"seed,omitempty"`
	Patterns []patterns.Spec `yaml:"patterns"`
}

// DefaultPatterns is the standard fixture set.
func DefaultPatterns() []patterns.Spec {
	return []patterns.Spec{
		{File: "gradiente_horizontal.bmp", Kind: patterns.KindHorizontalGradient},
		{File: "gradiente_vertical.bmp", Kind: patterns.KindVerticalGradient},
		{File: "tabuleiro.bmp", Kind: patterns.KindCheckerboard, Size: patterns.DefaultSquareSize},
		{File: "circulos.bmp", Kind: patterns.KindCircles},
		{File: "teste_resolucao.bmp", Kind: patterns.KindResolution},
		{File: "foto_simulada.bmp", Kind: patterns.KindPhoto},
		{File: "cinza_medio.bmp", Kind: patterns.KindUniform},
	}
}

// Default returns the standard 160x120 batch written to test_images.
func Default() Config {
	return Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		OutputDir: DefaultOutputDir,
		Patterns:  DefaultPatterns(),
	}
}

// Load reads a YAML config file. Keys missing from the file keep their
// default values; a patterns list replaces the default list entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read configuration file '%s': %w", path, err)
	}

	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return cfg, fmt.Errorf("configuration file '%s' has invalid fields:\n  %s", path, strings.Join(typeErr.Errors, "\n  "))
		}
		return cfg, fmt.Errorf("failed to parse configuration file '%s': %w", path, err)
	}

	return cfg, nil
}

// Validate checks dimensions, the output directory and every pattern.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("width and height must be greater than 0, got %dx%d", c.Width, c.Height)
	}
	if c.OutputDir == "" {
		return errors.New("output directory cannot be empty")
	}
	if len(c.Patterns) == 0 {
		return errors.New("no patterns configured")
	}

	seen := make(map[string]bool, len(c.Patterns))
	for _, p := range c.Patterns {
		if err := p.Validate(); err != nil {
			return err
		}
		if seen[p.File] {
			return fmt.Errorf("duplicate output file %q", p.File)
		}
		seen[p.File] = true
	}
	return nil
}

// Select keeps only the patterns whose file name (with or without the .bmp
// extension) is listed in names. An empty list keeps everything.
func (c Config) Select(names []string) (Config, error) {
	if len(names) == 0 {
		return c, nil
	}

	var selected []patterns.Spec
	for _, name := range names {
		found := false
		for _, p := range c.Patterns {
			if p.File == name || strings.TrimSuffix(p.File, ".bmp") == name {
				selected = append(selected, p)
				found = true
				break
			}
		}
		if !found {
			return c, fmt.Errorf("unknown pattern %q", name)
		}
	}

	c.Patterns = selected
	return c, nil
}

// Rand returns the random source for a run together with the seed it was
// built from, so that a run can be reproduced.
func (c Config) Rand() (*rand.Rand, int64) {
	seed := rand.Int64()
	if c.Seed != nil {
		seed = *c.Seed
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed))), seed // #nosec G404 -- fixtures, not crypto
}
