// Package cli provides the command-line interface for graybmp.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/anas-shakeel/graybmp/internal/batch"
	"github.com/anas-shakeel/graybmp/internal/config"
	"github.com/anas-shakeel/graybmp/internal/version"
)

// NewRootCmd builds the command tree. Running the root command without a
// subcommand writes the default fixture set.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "graybmp",
		Short: "Generate grayscale BMP test images",
		Long: `graybmp synthesizes small grayscale test images (gradients, checkerboard,
concentric circles, resolution lines, a simulated photo and a uniform gray)
and writes them as 8-bit paletted BMP files.

Run without arguments to write the default 160x120 set into ./test_images.`,
		Version:      version.String(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := batch.Run(cmd.Context(), config.Default(), newLogger(cmd), cmd.OutOrStdout())
			return err
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	})

	return rootCmd
}

// newLogger returns a debug logger on stderr when --verbose is set and a
// silent one otherwise.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return hclog.NewNullLogger()
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "graybmp",
		Output: cmd.ErrOrStderr(),
		Level:  hclog.Debug,
	})
}
