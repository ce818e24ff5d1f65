package cli

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"

	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/webp" // Register WebP format

	"github.com/anas-shakeel/graybmp/internal/adjustments"
	"github.com/anas-shakeel/graybmp/internal/bmp"
	"github.com/anas-shakeel/graybmp/internal/config"
	"github.com/anas-shakeel/graybmp/internal/filters"
)

type convertOptions struct {
	width      int
	height     int
	method     string
	invert     bool
	brightness float64
	contrast   float64
	crop       []int
}

func newConvertCmd() *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert <input> <output.bmp>",
		Short: "Convert an image into a grayscale BMP test image",
		Long: `Convert decodes a JPEG, PNG, GIF, WebP or BMP image, converts it to
grayscale, scales it (nearest neighbour) to the target size and writes it
as an 8-bit grayscale BMP.

Examples:
  graybmp convert photo.jpg test_images/photo.bmp
  graybmp convert --invert --contrast 1.5 scan.png out.bmp
  graybmp convert --crop 0,0,640,480 screenshot.png out.bmp`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)

			grid, err := convertImage(args[0], opts)
			if err != nil {
				return err
			}
			logger.Debug("converted image", "input", args[0], "width", grid.Width, "height", grid.Height)

			if err := bmp.WriteFile(args[1], grid); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Created: %s (%dx%d)\n", args[1], grid.Width, grid.Height)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", config.DefaultWidth, "output width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", config.DefaultHeight, "output height in pixels")
	cmd.Flags().StringVar(&opts.method, "method", filters.MethodLuma, "grayscale method (luma, average)")
	cmd.Flags().BoolVar(&opts.invert, "invert", false, "invert the result")
	cmd.Flags().Float64Var(&opts.brightness, "brightness", 0, "value added to every pixel")
	cmd.Flags().Float64Var(&opts.contrast, "contrast", 1, "contrast factor around the mean")
	cmd.Flags().IntSliceVar(&opts.crop, "crop", nil, "crop the source to x,y,width,height before scaling")
	return cmd
}

func convertImage(path string, opts convertOptions) (*bmp.Grid, error) {
	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	grid, err := filters.FromImage(img, opts.method)
	if err != nil {
		return nil, err
	}
	if len(opts.crop) > 0 {
		if len(opts.crop) != 4 {
			return nil, fmt.Errorf("invalid --crop: want x,y,width,height")
		}
		if grid, err = adjustments.Crop(grid, opts.crop[0], opts.crop[1], opts.crop[2], opts.crop[3]); err != nil {
			return nil, err
		}
	}
	if grid, err = adjustments.Resize(grid, opts.width, opts.height); err != nil {
		return nil, err
	}

	if opts.contrast != 1 {
		filters.Contrast(grid, opts.contrast)
	}
	if opts.brightness != 0 {
		if err := filters.Brightness(grid, opts.brightness, "add"); err != nil {
			return nil, err
		}
	}
	if opts.invert {
		filters.Invert(grid)
	}
	return grid, nil
}
