// Package patterns synthesizes grayscale test images.
//
// Every generator is a pure function of its dimensions and parameters
// (the simulated photo also draws from the supplied random source) and
// returns a freshly allocated grid.
package patterns

import (
	"math"
	"math/rand/v2"

	"github.com/anas-shakeel/graybmp/internal/bmp"
)

const (
	// DefaultSquareSize is the checkerboard square edge in pixels.
	DefaultSquareSize = 20
	// DefaultUniformValue is the fill intensity of the uniform pattern.
	DefaultUniformValue = 128
)

// HorizontalGradient ramps from black on the left to almost white on the right.
func HorizontalGradient(width, height int) *bmp.Grid {
	g := bmp.NewGrid(width, height)
	for x := range width {
		v := uint8(float64(x) / float64(width) * 255)
		for y := range height {
			g.Pixels[y][x] = v
		}
	}
	return g
}

// VerticalGradient ramps from black at the top to almost white at the bottom.
func VerticalGradient(width, height int) *bmp.Grid {
	g := bmp.NewGrid(width, height)
	for y := range height {
		v := uint8(float64(y) / float64(height) * 255)
		for x := range width {
			g.Pixels[y][x] = v
		}
	}
	return g
}

// Checkerboard alternates white and black squares of the given size,
// starting with white in the top-left corner.
func Checkerboard(width, height, size int) *bmp.Grid {
	g := bmp.NewGrid(width, height)
	for y := range height {
		for x := range width {
			if (x/size+y/size)%2 == 0 {
				g.Pixels[y][x] = 255
			}
		}
	}
	return g
}

// Circles draws concentric rings: a sinusoid of the distance from the centre
// with period 2*pi*10, amplitude 127 and offset 128.
func Circles(width, height int) *bmp.Grid {
	g := bmp.NewGrid(width, height)
	cx, cy := width/2, height/2
	for y := range height {
		for x := range width {
			dx, dy := float64(x-cx), float64(y-cy)
			dist := math.Sqrt(dx*dx + dy*dy)
			g.Pixels[y][x] = uint8(int(math.Sin(dist/10)*127+128) % 256)
		}
	}
	return g
}

// ResolutionTest draws horizontal lines of 255 and then vertical lines of
// 128 every 4 px. Line thickness cycles through 1, 2, 3 px every 20 px.
func ResolutionTest(width, height int) *bmp.Grid {
	g := bmp.NewGrid(width, height)

	for y := 0; y < height; y += 4 {
		thickness := (y/20)%3 + 1
		for dy := 0; dy < thickness && y+dy < height; dy++ {
			g.Pixels[y+dy] = fill(g.Pixels[y+dy], 255)
		}
	}

	for x := 0; x < width; x += 4 {
		thickness := (x/20)%3 + 1
		for dx := 0; dx < thickness && x+dx < width; dx++ {
			for y := range height {
				g.Pixels[y][x+dx] = 128
			}
		}
	}

	return g
}

// SimulatedPhoto mimics a landscape: a sky gradient over the top third and,
// below it, a sinusoidal skyline separating noisy mountain from darker
// noisy ground.
func SimulatedPhoto(width, height int, rng *rand.Rand) *bmp.Grid {
	g := bmp.NewGrid(width, height)
	third := height / 3

	for y := range third {
		v := 200 - int(float64(y)/float64(third)*50)
		g.Pixels[y] = fill(g.Pixels[y], uint8(v))
	}

	for x := range width {
		skyline := int(float64(height)*0.5 + math.Sin(float64(x)/20)*float64(height)*0.2)
		for y := third; y < height; y++ {
			if y > skyline {
				// ground
				g.Pixels[y][x] = uint8(60 + int(rng.Float64()*30))
			} else {
				g.Pixels[y][x] = uint8(100 + int(rng.Float64()*40))
			}
		}
	}

	return g
}

// Uniform fills the whole grid with value.
func Uniform(width, height int, value uint8) *bmp.Grid {
	g := bmp.NewGrid(width, height)
	g.Fill(value)
	return g
}

func fill(row []uint8, v uint8) []uint8 {
	for i := range row {
		row[i] = v
	}
	return row
}
