// Package batch writes a configured set of test images to disk.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/anas-shakeel/graybmp/internal/bmp"
	"github.com/anas-shakeel/graybmp/internal/config"
	"github.com/anas-shakeel/graybmp/internal/patterns"
)

// Result describes one written file.
type Result struct {
	Path   string
	Kind   patterns.Kind
	Width  int
	Height int
}

// Run creates cfg.OutputDir if needed and writes every configured pattern
// into it, in order. A progress line per file goes to out. The first
// failure aborts the batch; files written before it are left in place.
func Run(ctx context.Context, cfg config.Config, logger hclog.Logger, out io.Writer) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	rng, seed := cfg.Rand()
	logger.Debug("starting batch", "dir", cfg.OutputDir, "width", cfg.Width, "height", cfg.Height,
		"patterns", len(cfg.Patterns), "seed", seed)

	results := make([]Result, 0, len(cfg.Patterns))
	for _, spec := range cfg.Patterns {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		path := filepath.Join(cfg.OutputDir, spec.File)
		grid, err := patterns.Generate(spec, cfg.Width, cfg.Height, rng)
		if err != nil {
			return results, fmt.Errorf("generating %s: %w", spec.File, err)
		}

		if err := bmp.WriteFile(path, grid); err != nil {
			logger.Error("write failed", "path", path, "error", err)
			return results, err
		}
		logger.Debug("wrote bitmap", "path", path, "kind", spec.Kind)
		fmt.Fprintf(out, "✓ Created: %s (%dx%d)\n", path, grid.Width, grid.Height)

		results = append(results, Result{Path: path, Kind: spec.Kind, Width: grid.Width, Height: grid.Height})
	}

	return results, nil
}
