// BMP-specific structs, sizes and the grayscale palette
package bmp

// The BitmapFileHeader structure contains information about the type, size,
// and layout of a file that contains a DIB [device-independent bitmap].
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapfileheader

type BitmapFileHeader struct {
	Type      [2]byte // The file type: must be 0x4d42 (ASCII string "BM").
	Size      uint32  // The size, in bytes, of the bitmap file.
	Reserved1 uint16  // Reserved; must be zero.
	Reserved2 uint16  // Reserved; must be zero.
	OffBits   uint32  // Bitmap File Offset (In bytes) to Pixel Arrays
}

// The BitmapInfoHeader structure contains information about the
// dimensions and color format of DIB [device-independent bitmap].

type BitmapInfoHeader struct {
	Size            uint32 // The number of bytes required by the structure.
	Width           int32  // The width of the bitmap, in pixels.
	Height          int32  // The height of the bitmap, in pixels (positive: bottom-up)
	Planes          uint16 // The number of planes for the target device.
	BitCount        uint16 // The number of bits-per-pixel.
	Compression     uint32 // The type of compression
	SizeImage       uint32 // The size of the image (in bytes).
	XPixelsPerM     int32  // The horizontal resolution, in pixels-per-meter.
	YPixelsPerM     int32  // The vertical resolution, in pixels-per-meter.
	ColorsUsed      uint32 // Number of color indexes that are actually used by bitmap.
	ColorsImportant uint32 // Number of color indexes required for displaying the bitmap.
}

const (
	FileHeaderSize = 14
	InfoHeaderSize = 40
	PaletteEntries = 256
	PaletteSize    = PaletteEntries * 4 // BGRA per entry

	// Offset of the pixel array in an 8 bpp file written by this package
	PixelDataOffset = FileHeaderSize + InfoHeaderSize + PaletteSize

	// 2835 pixels per meter is ~72 DPI
	PixelsPerMeter = 2835

	compressionRGB = 0 // BI_RGB
)

// PaletteEntry is one RGBQUAD of the colour table, stored Blue-Green-Red-Reserved.
type PaletteEntry struct {
	B, G, R, Reserved byte
}

// GrayPalette returns the identity grayscale ramp: entry i is (i, i, i, 0).
func GrayPalette() [PaletteEntries]PaletteEntry {
	var p [PaletteEntries]PaletteEntry
	for i := range p {
		v := byte(i)
		p[i] = PaletteEntry{B: v, G: v, R: v}
	}
	return p
}

// Padding returns the number of zero bytes appended to an 8 bpp row of the given width.
func Padding(width int) int {
	return (4 - width%4) % 4
}

// Stride returns the on-disk byte length of an 8 bpp row (incl. padding)
func Stride(width int) int {
	return width + Padding(width)
}

// Headers builds the file and info headers of an 8 bpp grayscale bitmap.
func Headers(width, height int) (BitmapFileHeader, BitmapInfoHeader) {
	imageSize := uint32(Stride(width) * height)

	bfh := BitmapFileHeader{
		Type:    [2]byte{0x42, 0x4d},
		Size:    PixelDataOffset + imageSize,
		OffBits: PixelDataOffset,
	}
	bih := BitmapInfoHeader{
		Size:            InfoHeaderSize,
		Width:           int32(width),
		Height:          int32(height),
		Planes:          1,
		BitCount:        8,
		Compression:     compressionRGB,
		SizeImage:       imageSize,
		XPixelsPerM:     PixelsPerMeter,
		YPixelsPerM:     PixelsPerMeter,
		ColorsUsed:      PaletteEntries,
		ColorsImportant: PaletteEntries,
	}
	return bfh, bih
}
