// Package imageio reads and writes atlas page images.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// ErrNilImage is returned when there is no image to encode.
var ErrNilImage = errors.New("imageio: nil image")

// encoder compresses pages at the default level. The buffer pool is shared
// between pages of one run.
var encoder = png.Encoder{
	CompressionLevel: png.DefaultCompression,
	BufferPool:       &bufferPool{},
}

// LoadPNG loads a PNG file and converts it to NRGBA.
func LoadPNG(path string) (*image.NRGBA, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodePNG(f)
}

// DecodePNG decodes a PNG image from the given reader and converts it to
// NRGBA.
func DecodePNG(r io.Reader) (*image.NRGBA, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode PNG: %w", err)
	}
	return ToNRGBA(img), nil
}

// SavePNG saves the image as a PNG file, creating or truncating it.
func SavePNG(path string, img image.Image) error {
	if img == nil {
		return ErrNilImage
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := EncodePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("imageio: close file: %w", err)
	}
	return nil
}

// EncodePNG writes the image to w in PNG format.
func EncodePNG(w io.Writer, img image.Image) error {
	if img == nil {
		return ErrNilImage
	}
	if err := encoder.Encode(w, img); err != nil {
		return fmt.Errorf("imageio: encode PNG: %w", err)
	}
	return nil
}

// ToNRGBA returns img as *image.NRGBA with bounds starting at (0, 0),
// converting when necessary.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
