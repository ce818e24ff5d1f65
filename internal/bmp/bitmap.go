// bmp package implements an 8-bit grayscale bitmap writer and a small reader
package bmp

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/anas-shakeel/graybmp/internal/utils"
)

type Bitmap struct {
	Filename string
	BFHeader *BitmapFileHeader
	BIHeader *BitmapInfoHeader
	Stride   int
	Padding  int
	Grid     *Grid
}

// Encode writes g to w as an 8 bpp BI_RGB bitmap with a grayscale palette.
// Rows are written bottom-up, each padded with zeros to a multiple of 4 bytes.
func Encode(w io.Writer, g *Grid) error {
	if err := g.Validate(); err != nil {
		return err
	}

	bfh, bih := Headers(g.Width, g.Height)
	palette := GrayPalette()
	paddingBytes := make([]byte, Padding(g.Width))

	// Create a buffer (to reduce syscalls)
	bw := bufio.NewWriter(w)

	if err := binary.Write(bw, binary.LittleEndian, &bfh); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, &bih); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, &palette); err != nil {
		return err
	}

	// Write the pixels (BottomUp: last row first)
	for row := g.Height - 1; row >= 0; row-- {
		if _, err := bw.Write(g.Pixels[row]); err != nil {
			return err
		}
		if _, err := bw.Write(paddingBytes); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile creates (or truncates) the file at path and encodes g into it.
// I/O failures are returned as *FileWriteError; an invalid grid is rejected
// before the file is touched.
func WriteFile(path string, g *Grid) (err error) {
	if err := g.Validate(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return &FileWriteError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &FileWriteError{Op: "close", Path: path, Err: cerr}
		}
	}()

	if err := Encode(f, g); err != nil {
		return &FileWriteError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Decode reads an uncompressed 8 bpp or 24 bpp bitmap. 8 bpp indexes are
// taken as intensities; 24 bpp pixels are converted with the luma transform.
func Decode(r io.ReadSeeker) (*Bitmap, error) {
	var bfHeader BitmapFileHeader
	if err := binary.Read(r, binary.LittleEndian, &bfHeader); err != nil {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	if bfHeader.Type[0] != 0x42 || bfHeader.Type[1] != 0x4d {
		return nil, ErrNotBitmap
	}

	var biHeader BitmapInfoHeader
	if err := binary.Read(r, binary.LittleEndian, &biHeader); err != nil {
		return nil, fmt.Errorf("reading info header: %w", err)
	}

	if biHeader.Compression != compressionRGB || (biHeader.BitCount != 8 && biHeader.BitCount != 24) {
		return nil, fmt.Errorf("%w (bits=%d, compression=%d)", ErrUnsupportedFormat, biHeader.BitCount, biHeader.Compression)
	}

	width := int(biHeader.Width)
	height := int(biHeader.Height)
	topDown := false // Pixels are stored TopDown?
	if height < 0 {
		topDown = true
		height = -height
	}
	if width <= 0 || height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrUnsupportedFormat, width, height)
	}

	bytesPerPixel := int(biHeader.BitCount / 8)
	stride := ((width*bytesPerPixel + 3) / 4) * 4 // Total bytes in a row (incl. padding)

	// Seek to Pixel Array (OffBits)
	if _, err := r.Seek(int64(bfHeader.OffBits), io.SeekStart); err != nil {
		return nil, err
	}

	grid := NewGrid(width, height)
	rowBuf := make([]byte, stride)
	for i := range height {
		rowIndex := height - i - 1
		if topDown {
			rowIndex = i
		}

		if _, err := io.ReadFull(r, rowBuf); err != nil {
			return nil, fmt.Errorf("reading row %d: %w", i, err)
		}

		if bytesPerPixel == 1 {
			copy(grid.Pixels[rowIndex], rowBuf[:width])
			continue
		}
		for col := range width {
			p := rowBuf[col*3 : col*3+3]
			grid.Pixels[rowIndex][col] = utils.Luma(p[2], p[1], p[0])
		}
	}

	return &Bitmap{
		BFHeader: &bfHeader,
		BIHeader: &biHeader,
		Stride:   stride,
		Padding:  stride - width*bytesPerPixel,
		Grid:     grid,
	}, nil
}

// Reads a Bitmap file
func ReadFile(filename string) (*Bitmap, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	b, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	b.Filename = filename
	return b, nil
}

// ReadExpected reads a bitmap and fails with ErrUnexpectedSize unless it is width x height.
func ReadExpected(filename string, width, height int) (*Bitmap, error) {
	b, err := ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if b.Grid.Width != width || b.Grid.Height != height {
		return nil, fmt.Errorf("%w: expected %dx%d, found %dx%d",
			ErrUnexpectedSize, width, height, b.Grid.Width, b.Grid.Height)
	}
	return b, nil
}

// Print the Metadata bitmap (in human-readable format)
func (b *Bitmap) PrintMetadata(w io.Writer) {
	fmt.Fprintf(w, "Filename: \t%v\n", b.Filename)
	fmt.Fprintf(w, "Filesize: \t%v bytes\n", b.BFHeader.Size)
	fmt.Fprintf(w, "Width: \t\t%v px\n", b.BIHeader.Width)
	fmt.Fprintf(w, "Height: \t%v px\n", b.BIHeader.Height)
	fmt.Fprintf(w, "BitCount: \t%vbits\n", b.BIHeader.BitCount)
	fmt.Fprintf(w, "Colors: \t%v\n", b.BIHeader.ColorsUsed)
	fmt.Fprintf(w, "PixelOffset: \t%v bytes\n", b.BFHeader.OffBits)
	fmt.Fprintf(w, "PixelCount: \t%v pixels\n", b.Grid.Width*b.Grid.Height)
	fmt.Fprintf(w, "Stride: \t%v bytes\n", b.Stride)
	fmt.Fprintf(w, "Padding: \t%v bytes\n", b.Padding)
}

// Print the bitmap as coloured blocks. Each pixel takes two columns; when
// maxCols > 0 the image is subsampled to fit.
func (b *Bitmap) PrintPreview(w io.Writer, maxCols int) {
	step := 1
	if maxCols > 0 {
		for b.Grid.Width*2/step > maxCols {
			step++
		}
	}

	for row := 0; row < b.Grid.Height; row += step {
		for col := 0; col < b.Grid.Width; col += step {
			v := int(b.Grid.Pixels[row][col])
			fmt.Fprint(w, utils.ColoredBlock("  ", v, v, v))
		}
		fmt.Fprintln(w)
	}
}
