package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/anas-shakeel/graybmp/internal/bmp"
)

func newInspectCmd() *cobra.Command {
	var (
		expect  string
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <file.bmp>",
		Short: "Print the headers of a BMP file",
		Long: `Inspect reads an 8-bit or 24-bit uncompressed BMP and prints its header
fields. With --expect the command fails unless the image has the given
dimensions; with --preview the image is drawn in the terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				b   *bmp.Bitmap
				err error
			)
			if expect != "" {
				var w, h int
				if _, scanErr := fmt.Sscanf(expect, "%dx%d", &w, &h); scanErr != nil {
					return fmt.Errorf("invalid --expect %q: want WIDTHxHEIGHT", expect)
				}
				b, err = bmp.ReadExpected(args[0], w, h)
			} else {
				b, err = bmp.ReadFile(args[0])
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			b.PrintMetadata(out)
			if preview {
				fmt.Fprintln(out)
				b.PrintPreview(out, terminalWidth())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&expect, "expect", "", "required dimensions, e.g. 160x120")
	cmd.Flags().BoolVar(&preview, "preview", false, "draw the image in the terminal")
	return cmd
}

// terminalWidth returns the width of stdout, or 0 when it is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd()) // #nosec G115 -- file descriptors fit in int
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
