package loaders

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder

	"github.com/YassinRamadan1/Software-RayTracer/pkg/core"
)

// DisplayGamma is the encoding gamma assumed for image files
const DisplayGamma = 2.2

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// At returns the pixel at (x, y). Coordinates must be in range.
func (d *ImageData) At(x, y int) core.Vec3 {
	return d.Pixels[y*d.Width+x]
}

// Empty reports whether the image has no pixels
func (d *ImageData) Empty() bool {
	return d == nil || d.Width == 0 || d.Height == 0
}

// Linearize converts every pixel from gamma-encoded to linear light in place
func (d *ImageData) Linearize(gamma float64) {
	for i, p := range d.Pixels {
		d.Pixels[i] = p.GammaToLinear(gamma)
	}
}

// FlipVertical reverses the row order in place
func (d *ImageData) FlipVertical() {
	for top, bottom := 0, d.Height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := d.Pixels[top*d.Width : (top+1)*d.Width]
		b := d.Pixels[bottom*d.Width : (bottom+1)*d.Width]
		for x := range a {
			a[x], b[x] = b[x], a[x]
		}
	}
}

// LoadImage loads a PNG, JPEG, GIF, BMP or TIFF image and converts it to a
// Vec3 color array. Values are left as stored in the file, top row first.
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Format is detected from the file header
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

// LoadLinearImage loads an image for use as a texture: pixels are converted
// to linear light and row 0 becomes the bottom of the image.
func LoadLinearImage(filename string) (*ImageData, error) {
	data, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}
	data.Linearize(DisplayGamma)
	data.FlipVertical()
	return data, nil
}
