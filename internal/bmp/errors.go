package bmp

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGrid is returned when a grid does not match its declared dimensions.
	ErrInvalidGrid = errors.New("invalid pixel grid")

	ErrNotBitmap         = errors.New("invalid file: provided file is not a bitmap")
	ErrUnsupportedFormat = errors.New("unsupported BMP format: only 8-bit and 24-bit uncompressed are supported")
	ErrUnexpectedSize    = errors.New("unexpected bitmap dimensions")
)

// FileWriteError reports a failure to create, write or close a bitmap file.
type FileWriteError struct {
	Op   string // "create", "write" or "close"
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error {
	return e.Err
}
