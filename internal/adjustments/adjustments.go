// Adjusts grid dimensions or structure.
package adjustments

import (
	"errors"
	"image"

	"golang.org/x/image/draw"

	"github.com/anas-shakeel/graybmp/internal/bmp"
)

// Crops a region in the grid (0,0 is at the top-left of the image)
func Crop(g *bmp.Grid, x, y, width, height int) (*bmp.Grid, error) {
	// Validate bounds
	if x < 0 || y < 0 || width <= 0 || height <= 0 {
		return nil, errors.New("invalid bounds: origin and size must be positive")
	} else if width+x > g.Width {
		return nil, errors.New("invalid bounds: width out of bounds")
	} else if height+y > g.Height {
		return nil, errors.New("invalid bounds: height out of bounds")
	}

	cropped := bmp.NewGrid(width, height)
	for row := range height { // Height | Rows
		copy(cropped.Pixels[row], g.Pixels[row+y][x:x+width])
	}

	return cropped, nil
}

// Resize scales the grid to width x height by nearest-neighbour sampling.
func Resize(g *bmp.Grid, width, height int) (*bmp.Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("invalid size: width and height must be greater than 0")
	}
	if width == g.Width && height == g.Height {
		return g.Copy(), nil
	}

	src := g.Gray()
	dst := image.NewGray(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return bmp.FromGray(dst), nil
}
