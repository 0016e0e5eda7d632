package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/YassinRamadan1/Software-RayTracer/pkg/core"
)

// DisplayGamma is the gamma applied when encoding linear radiance to 8 bits
const DisplayGamma = 2.2

// Image receives rendered pixels and persists them
type Image interface {
	// SetPixel writes pixel (x, y) where y = 0 is the bottom row
	SetPixel(x, y int, c color.RGBA)
	Bounds() image.Rectangle
	Save(path string) error
}

// FrameBuffer is an in-memory Image backed by an RGBA raster
type FrameBuffer struct {
	img *image.RGBA
}

// NewFrameBuffer allocates a width x height frame buffer
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// SetPixel stores c at (x, y). Rows are flipped so the raster is top-down.
// Disjoint pixels may be written concurrently.
func (fb *FrameBuffer) SetPixel(x, y int, c color.RGBA) {
	fb.img.SetRGBA(x, fb.img.Rect.Dy()-1-y, c)
}

// Bounds returns the raster bounds
func (fb *FrameBuffer) Bounds() image.Rectangle {
	return fb.img.Rect
}

// RGBA exposes the underlying raster, top row first
func (fb *FrameBuffer) RGBA() *image.RGBA {
	return fb.img
}

// Save encodes the raster to path, choosing the format by file extension
func (fb *FrameBuffer) Save(path string) error {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := encode(f, fb.img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return png.Encode, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", ext)
	}
}

// ToRGBA gamma-encodes a linear color and quantizes it to 8 bits per channel
func ToRGBA(c core.Vec3) color.RGBA {
	c = c.GammaCorrect(DisplayGamma).Clamp(0, 0.999)
	return color.RGBA{
		R: uint8(256 * c.X),
		G: uint8(256 * c.Y),
		B: uint8(256 * c.Z),
		A: 255,
	}
}
