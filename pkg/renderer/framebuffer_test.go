package renderer

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/YassinRamadan1/Software-RayTracer/pkg/core"
)

func TestToRGBA(t *testing.T) {
	tests := []struct {
		name string
		in   core.Vec3
		want color.RGBA
	}{
		{"black", core.NewVec3(0, 0, 0), color.RGBA{0, 0, 0, 255}},
		{"white", core.NewVec3(1, 1, 1), color.RGBA{255, 255, 255, 255}},
		{"overexposed", core.NewVec3(5, 2, 1.01), color.RGBA{255, 255, 255, 255}},
		{"negative", core.NewVec3(-1, 0, 0), color.RGBA{0, 0, 0, 255}},
		{"mid gray", core.NewVec3(0.5, 0.5, 0.5), color.RGBA{186, 186, 186, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToRGBA(tt.in); got != tt.want {
				t.Errorf("ToRGBA(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFrameBuffer_FlipsRows(t *testing.T) {
	fb := NewFrameBuffer(3, 2)
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}

	fb.SetPixel(0, 0, red)  // bottom-left
	fb.SetPixel(2, 1, blue) // top-right

	img := fb.RGBA()
	if got := img.RGBAAt(0, 1); got != red {
		t.Errorf("Bottom row pixel = %v, want red", got)
	}
	if got := img.RGBAAt(2, 0); got != blue {
		t.Errorf("Top row pixel = %v, want blue", got)
	}
	if fb.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds = %v", fb.Bounds())
	}
}

func TestFrameBuffer_Save(t *testing.T) {
	fb := NewFrameBuffer(4, 2)
	green := color.RGBA{0, 200, 0, 255}
	fb.SetPixel(1, 0, green)

	tests := []struct {
		file     string
		lossless bool
	}{
		{"out.png", true},
		{"out.bmp", true},
		{"out.tiff", true},
		{"out.TIF", true},
		{"out.jpg", false},
	}

	dir := t.TempDir()
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := fb.Save(path); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			decoded, _, err := image.Decode(f)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if decoded.Bounds().Dx() != 4 || decoded.Bounds().Dy() != 2 {
				t.Fatalf("Decoded size %v", decoded.Bounds())
			}
			if !tt.lossless {
				return
			}
			r, g, b, _ := decoded.At(1, 1).RGBA()
			if r>>8 != 0 || g>>8 != 200 || b>>8 != 0 {
				t.Errorf("Pixel (1,1) = (%d,%d,%d), want (0,200,0)", r>>8, g>>8, b>>8)
			}
		})
	}
}

func TestFrameBuffer_SaveErrors(t *testing.T) {
	fb := NewFrameBuffer(1, 1)
	dir := t.TempDir()

	if err := fb.Save(filepath.Join(dir, "out.webp")); err == nil {
		t.Error("Expected error for unsupported extension")
	}
	if err := fb.Save(filepath.Join(dir, "missing", "out.png")); err == nil {
		t.Error("Expected error for a missing directory")
	}
	if _, err := os.Stat(filepath.Join(dir, "out.webp")); !os.IsNotExist(err) {
		t.Error("Unsupported format should not create a file")
	}
}
