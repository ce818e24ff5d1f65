// Filters perform intensity manipulation and per-pixel operations
package filters

import (
	"errors"
	"image"

	"github.com/anas-shakeel/graybmp/internal/bmp"
	"github.com/anas-shakeel/graybmp/internal/utils"
)

// Inverts (negates) the grid in-place
func Invert(g *bmp.Grid) {
	for row := range g.Height {
		for col := range g.Width {
			g.Pixels[row][col] = 255 - g.Pixels[row][col]
		}
	}
}

// Adjusts the Brightness of a grid in-place.
//
// method can be "add" (adds value to each pixel) or "multiply" (multiplies each pixel by value).
// Pixel values are clipped to [0, 255].
func Brightness(g *bmp.Grid, factor float64, method string) error {
	type Operation func(x, y float64) float64
	var operation Operation

	// Select an operation of brightness (additive or multiplicative)
	switch method {
	case "add":
		operation = func(x, y float64) float64 {
			return x + y
		}
	case "multiply":
		operation = func(x, y float64) float64 {
			return x * y
		}
	default:
		return errors.New("invalid method: method must be add or multiply")
	}

	for row := range g.Height {
		for col := range g.Width {
			g.Pixels[row][col] = utils.ClampByte(operation(float64(g.Pixels[row][col]), factor))
		}
	}

	return nil
}

// Adjusts the Contrast of a grid in-place around its mean intensity.
// factor > 1.0 increases Contrast, factor < 1.0 decreases it.
func Contrast(g *bmp.Grid, factor float64) {
	var sum int
	for row := range g.Height {
		for col := range g.Width {
			sum += int(g.Pixels[row][col])
		}
	}
	mean := float64(sum / (g.Width * g.Height))

	for row := range g.Height {
		for col := range g.Width {
			p := float64(g.Pixels[row][col])
			g.Pixels[row][col] = utils.ClampByte(p*factor + (1-factor)*mean)
		}
	}
}

// Grayscale conversion methods for FromImage
const (
	MethodLuma    = "luma"    // ITU-R 601-2
	MethodAverage = "average" // (R+G+B)/3
)

// FromImage converts any image to a grid using the given grayscale method.
func FromImage(img image.Image, method string) (*bmp.Grid, error) {
	if gray, ok := img.(*image.Gray); ok {
		return bmp.FromGray(gray), nil
	}

	var toGray func(r, g, b uint8) uint8
	switch method {
	case MethodLuma, "":
		toGray = utils.Luma
	case MethodAverage:
		toGray = func(r, g, b uint8) uint8 {
			return uint8(utils.Average(int(r), int(g), int(b)))
		}
	default:
		return nil, errors.New("invalid method: method must be luma or average")
	}

	bounds := img.Bounds()
	grid := bmp.NewGrid(bounds.Dx(), bounds.Dy())
	for row := range grid.Height {
		for col := range grid.Width {
			r, g, b, _ := img.At(bounds.Min.X+col, bounds.Min.Y+row).RGBA()
			grid.Pixels[row][col] = toGray(uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}
	return grid, nil
}
