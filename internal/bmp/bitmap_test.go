package bmp_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	xbmp "golang.org/x/image/bmp"

	"github.com/anas-shakeel/graybmp/internal/bmp"
)

func encode(t *testing.T, g *bmp.Grid) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, g); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return buf.Bytes()
}

// patterned returns a grid where every pixel has a position-dependent value.
func patterned(width, height int) *bmp.Grid {
	g := bmp.NewGrid(width, height)
	for y := range height {
		for x := range width {
			g.Set(x, y, uint8((x*7+y*13)%256))
		}
	}
	return g
}

// TestEncodeThreeByTwo checks the exact byte layout of a small padded image.
func TestEncodeThreeByTwo(t *testing.T) {
	g := bmp.FromRows([][]uint8{
		{0, 128, 255},
		{255, 128, 0},
	})
	data := encode(t, g)

	wantHeaders := []byte{
		'B', 'M',
		0x3e, 0x04, 0x00, 0x00, // 1086 bytes
		0x00, 0x00, 0x00, 0x00,
		0x36, 0x04, 0x00, 0x00, // pixels at 1078
		0x28, 0x00, 0x00, 0x00,
		0x03, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00,
		0x01, 0x00,
		0x08, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x08, 0x00, 0x00, 0x00,
		0x13, 0x0b, 0x00, 0x00,
		0x13, 0x0b, 0x00, 0x00,
		0x00, 0x01, 0x00, 0x00,
		0x00, 0x01, 0x00, 0x00,
	}
	if diff := cmp.Diff(wantHeaders, data[:54]); diff != "" {
		t.Errorf("headers mismatch (-want +got):\n%s", diff)
	}

	wantPixels := []byte{
		255, 128, 0, 0, // bottom row first
		0, 128, 255, 0,
	}
	if diff := cmp.Diff(wantPixels, data[bmp.PixelDataOffset:]); diff != "" {
		t.Errorf("pixel data mismatch (-want +got):\n%s", diff)
	}
}

// TestFileSizeField checks the declared file size against the encoded length.
func TestFileSizeField(t *testing.T) {
	sizes := []struct{ w, h int }{
		{1, 1}, {2, 1}, {3, 5}, {4, 4}, {5, 3}, {7, 2}, {160, 120}, {1, 4096}, {4096, 1}, {33, 17},
	}
	for _, size := range sizes {
		data := encode(t, patterned(size.w, size.h))

		declared := binary.LittleEndian.Uint32(data[2:6])
		if int(declared) != len(data) {
			t.Errorf("%dx%d: declared size %d, actual %d", size.w, size.h, declared, len(data))
		}
		want := bmp.PixelDataOffset + bmp.Stride(size.w)*size.h
		if len(data) != want {
			t.Errorf("%dx%d: len = %d, want %d", size.w, size.h, len(data), want)
		}
	}
}

// TestRowPadding checks that rows are 4-byte aligned and padded with zeros.
func TestRowPadding(t *testing.T) {
	for width := 1; width <= 9; width++ {
		g := bmp.NewGrid(width, 3)
		g.Fill(0xff)
		data := encode(t, g)

		stride := bmp.Stride(width)
		if stride%4 != 0 {
			t.Fatalf("width %d: stride %d is not a multiple of 4", width, stride)
		}
		pixels := data[bmp.PixelDataOffset:]
		for row := range 3 {
			line := pixels[row*stride : (row+1)*stride]
			for i, b := range line {
				want := byte(0xff)
				if i >= width {
					want = 0
				}
				if b != want {
					t.Errorf("width %d row %d byte %d = %#x, want %#x", width, row, i, b, want)
				}
			}
		}
	}
}

// TestPalette checks the identity grayscale ramp.
func TestPalette(t *testing.T) {
	data := encode(t, bmp.NewGrid(1, 1))
	palette := data[bmp.FileHeaderSize+bmp.InfoHeaderSize : bmp.PixelDataOffset]
	for i := range 256 {
		entry := palette[i*4 : i*4+4]
		if diff := cmp.Diff([]byte{byte(i), byte(i), byte(i), 0}, entry); diff != "" {
			t.Errorf("palette entry %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

// TestRoundTripStandardDecoder decodes the output with golang.org/x/image/bmp.
func TestRoundTripStandardDecoder(t *testing.T) {
	for _, size := range []struct{ w, h int }{{3, 2}, {10, 7}, {160, 120}} {
		g := patterned(size.w, size.h)
		img, err := xbmp.Decode(bytes.NewReader(encode(t, g)))
		if err != nil {
			t.Fatalf("%dx%d: x/image/bmp.Decode() error = %v", size.w, size.h, err)
		}

		paletted, ok := img.(*image.Paletted)
		if !ok {
			t.Fatalf("decoded image is %T, want *image.Paletted", img)
		}
		if got := paletted.Bounds(); got != image.Rect(0, 0, size.w, size.h) {
			t.Fatalf("bounds = %v, want %dx%d", got, size.w, size.h)
		}
		for i, c := range paletted.Palette {
			want := color.RGBA{R: uint8(i), G: uint8(i), B: uint8(i), A: 0xff}
			if c != want {
				t.Fatalf("palette[%d] = %v, want %v", i, c, want)
			}
		}
		for y := range size.h {
			for x := range size.w {
				if got, want := paletted.ColorIndexAt(x, y), g.At(x, y); got != want {
					t.Fatalf("%dx%d: pixel (%d,%d) = %d, want %d", size.w, size.h, x, y, got, want)
				}
			}
		}
	}
}

// TestUniformMidGray covers the 160x120 uniform fixture.
func TestUniformMidGray(t *testing.T) {
	g := bmp.NewGrid(160, 120)
	g.Fill(128)

	path := filepath.Join(t.TempDir(), "cinza_medio.bmp")
	if err := bmp.WriteFile(path, g); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 19918 {
		t.Errorf("file size = %d, want 19918", info.Size())
	}

	b, err := bmp.ReadExpected(path, 160, 120)
	if err != nil {
		t.Fatalf("ReadExpected() error = %v", err)
	}
	if diff := cmp.Diff(g, b.Grid); diff != "" {
		t.Errorf("decoded grid mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteFileIdempotent(t *testing.T) {
	g := patterned(13, 9)
	path := filepath.Join(t.TempDir(), "img.bmp")

	if err := bmp.WriteFile(path, g); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := bmp.WriteFile(path, g); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("encoding the same grid twice produced different files")
	}
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "img.bmp")
	err := bmp.WriteFile(path, bmp.NewGrid(2, 2))

	var writeErr *bmp.FileWriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("WriteFile() error = %v, want *FileWriteError", err)
	}
	if writeErr.Op != "create" || writeErr.Path != path {
		t.Errorf("FileWriteError = %+v", writeErr)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error does not unwrap to fs.ErrNotExist: %v", err)
	}
}

func TestEncodeRejectsInvalidGrid(t *testing.T) {
	tests := []struct {
		name string
		grid *bmp.Grid
	}{
		{"nil", nil},
		{"empty", bmp.NewGrid(0, 0)},
		{"short row", &bmp.Grid{Width: 3, Height: 2, Pixels: [][]uint8{{1, 2, 3}, {1, 2}}}},
		{"missing row", &bmp.Grid{Width: 1, Height: 2, Pixels: [][]uint8{{1}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := bmp.Encode(&buf, tt.grid)
			if !errors.Is(err, bmp.ErrInvalidGrid) {
				t.Fatalf("Encode() error = %v, want ErrInvalidGrid", err)
			}
			if buf.Len() != 0 {
				t.Errorf("Encode() wrote %d bytes for an invalid grid", buf.Len())
			}
		})
	}

	path := filepath.Join(t.TempDir(), "bad.bmp")
	if err := bmp.WriteFile(path, bmp.NewGrid(0, 1)); !errors.Is(err, bmp.ErrInvalidGrid) {
		t.Fatalf("WriteFile() error = %v, want ErrInvalidGrid", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("WriteFile() created a file for an invalid grid")
	}
}

func TestDecodeTopDown(t *testing.T) {
	g := patterned(5, 4)
	data := encode(t, g)

	// Negating the height turns the stored rows upside down.
	height := int32(-4)
	binary.LittleEndian.PutUint32(data[22:26], uint32(height))
	b, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	for y := range 4 {
		if diff := cmp.Diff(g.Pixels[3-y], b.Grid.Pixels[y]); diff != "" {
			t.Errorf("row %d mismatch (-want +got):\n%s", y, diff)
		}
	}
}

func TestDecodeTwentyFourBit(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{G: 255, A: 255})
	img.Set(2, 0, color.RGBA{B: 255, A: 255})
	img.Set(0, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	img.Set(2, 1, color.RGBA{A: 255})

	var buf bytes.Buffer
	if err := xbmp.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	b, err := bmp.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if b.BIHeader.BitCount != 24 {
		t.Fatalf("BitCount = %d, want 24", b.BIHeader.BitCount)
	}
	want := [][]uint8{
		{76, 149, 29},
		{254, 59, 0},
	}
	got := b.Grid.Pixels
	// 0.299+0.587+0.114 lands just below 1 in floating point
	if got[1][0] == 255 {
		want[1][0] = 255
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("luma mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := bmp.Decode(bytes.NewReader([]byte("PK\x03\x04 not a bitmap at all, but long enough to hold the headers....."))); !errors.Is(err, bmp.ErrNotBitmap) {
		t.Errorf("Decode(zip) error = %v, want ErrNotBitmap", err)
	}

	data := encode(t, bmp.NewGrid(2, 2))
	binary.LittleEndian.PutUint16(data[28:30], 4) // 4 bpp
	if _, err := bmp.Decode(bytes.NewReader(data)); !errors.Is(err, bmp.ErrUnsupportedFormat) {
		t.Errorf("Decode(4bpp) error = %v, want ErrUnsupportedFormat", err)
	}

	truncated := encode(t, bmp.NewGrid(8, 8))
	if _, err := bmp.Decode(bytes.NewReader(truncated[:len(truncated)-5])); err == nil {
		t.Error("Decode(truncated) succeeded")
	}
}

func TestReadExpectedSizeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.bmp")
	if err := bmp.WriteFile(path, bmp.NewGrid(4, 3)); err != nil {
		t.Fatal(err)
	}
	if _, err := bmp.ReadExpected(path, 160, 120); !errors.Is(err, bmp.ErrUnexpectedSize) {
		t.Errorf("ReadExpected() error = %v, want ErrUnexpectedSize", err)
	}
}

func TestPrintMetadataAndPreview(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meta.bmp")
	if err := bmp.WriteFile(path, patterned(6, 2)); err != nil {
		t.Fatal(err)
	}
	b, err := bmp.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var meta bytes.Buffer
	b.PrintMetadata(&meta)
	for _, want := range []string{"Filesize: \t1094 bytes", "BitCount: \t8bits", "Padding: \t2 bytes"} {
		if !bytes.Contains(meta.Bytes(), []byte(want)) {
			t.Errorf("metadata missing %q:\n%s", want, meta.String())
		}
	}

	var preview bytes.Buffer
	b.PrintPreview(&preview, 6) // 3 pixels per line fit, so every other pixel is kept
	lines := bytes.Split(bytes.TrimRight(preview.Bytes(), "\n"), []byte("\n"))
	if len(lines) != 1 {
		t.Fatalf("preview has %d lines, want 1", len(lines))
	}
	if n := bytes.Count(lines[0], []byte("\033[0m")); n != 3 {
		t.Errorf("preview line has %d blocks, want 3", n)
	}
}
