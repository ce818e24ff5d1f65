package bmp

import (
	"fmt"
	"image"
)

// Grid is an 8-bit intensity raster: Height rows of Width columns,
// row-major, origin at the top-left.
type Grid struct {
	Width  int
	Height int
	Pixels [][]uint8
}

// Creates a zero-filled grid
func NewGrid(width, height int) *Grid {
	pixels := make([][]uint8, height)
	for i := range height {
		pixels[i] = make([]uint8, width)
	}
	return &Grid{Width: width, Height: height, Pixels: pixels}
}

// FromRows wraps rows as a grid. The width is taken from the first row.
func FromRows(rows [][]uint8) *Grid {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	return &Grid{Width: width, Height: len(rows), Pixels: rows}
}

func (g *Grid) At(x, y int) uint8 {
	return g.Pixels[y][x]
}

func (g *Grid) Set(x, y int, v uint8) {
	g.Pixels[y][x] = v
}

// Sets every pixel to v
func (g *Grid) Fill(v uint8) {
	for _, row := range g.Pixels {
		for col := range row {
			row[col] = v
		}
	}
}

// Returns a deep copy of the grid
func (g *Grid) Copy() *Grid {
	dup := NewGrid(g.Width, g.Height)
	for row := range g.Height {
		copy(dup.Pixels[row], g.Pixels[row])
	}
	return dup
}

// Validate checks that the grid has positive dimensions and exactly
// Height rows of Width columns. Errors wrap ErrInvalidGrid.
func (g *Grid) Validate() error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrInvalidGrid)
	}
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidGrid, g.Width, g.Height)
	}
	if len(g.Pixels) != g.Height {
		return fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidGrid, g.Height, len(g.Pixels))
	}
	for i, row := range g.Pixels {
		if len(row) != g.Width {
			return fmt.Errorf("%w: row %d has %d columns, expected %d", ErrInvalidGrid, i, len(row), g.Width)
		}
	}
	return nil
}

// Gray converts the grid to an *image.Gray with bounds (0,0)-(Width,Height).
func (g *Grid) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	for y := range g.Height {
		copy(img.Pix[y*img.Stride:y*img.Stride+g.Width], g.Pixels[y])
	}
	return img
}

// FromGray copies an *image.Gray into a new grid.
func FromGray(img *image.Gray) *Grid {
	b := img.Bounds()
	g := NewGrid(b.Dx(), b.Dy())
	for y := range g.Height {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(g.Pixels[y], img.Pix[off:off+g.Width])
	}
	return g
}
