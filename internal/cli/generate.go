package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anas-shakeel/graybmp/internal/batch"
	"github.com/anas-shakeel/graybmp/internal/config"
)

func newGenerateCmd() *cobra.Command {
	var flags config.Flags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a batch of test images",
		Long: `Generate writes every configured pattern as an 8-bit grayscale BMP.

Without a config file the default set is used. Flags override values
from the config file.

Examples:
  # Default set with reproducible photo noise
  graybmp generate --seed 42

  # Only two images, 320x240, into ./fixtures
  graybmp generate --only tabuleiro,circulos --width 320 --height 240 -o fixtures

  # Custom batch
  graybmp generate --config batch.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.Resolve(cmd.Flags())
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Generating test images...\n   Dimensions: %dx%d pixels\n\n", cfg.Width, cfg.Height)

			results, err := batch.Run(cmd.Context(), cfg, newLogger(cmd), out)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "\nAll %d test images were created in %s\n", len(results), cfg.OutputDir)
			return nil
		},
	}

	flags.Register(cmd.Flags())
	return cmd
}
