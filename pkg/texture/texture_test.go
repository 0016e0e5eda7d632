package texture

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/YassinRamadan1/Software-RayTracer/pkg/core"
	"github.com/YassinRamadan1/Software-RayTracer/pkg/loaders"
	"github.com/YassinRamadan1/Software-RayTracer/pkg/noise"
)

var (
	black = core.NewVec3(0, 0, 0)
	white = core.NewVec3(1, 1, 1)
)

func TestSolid(t *testing.T) {
	s := NewSolid(core.NewVec3(0.1, 0.2, 0.3))
	if got := s.Value(0.7, 0.2, core.NewVec3(5, 5, 5)); got != s.Color {
		t.Errorf("Solid.Value() = %v, want %v", got, s.Color)
	}
}

func TestChecker_Parity(t *testing.T) {
	const scale = 0.5
	c := NewCheckerColors(scale, black, white)

	tests := []struct {
		name     string
		p        core.Vec3
		expected core.Vec3
	}{
		{"origin is even", core.NewVec3(0, 0, 0), black},
		{"one cell along x is odd", core.NewVec3(scale, 0, 0), white},
		{"two cells along x is even", core.NewVec3(2*scale, 0, 0), black},
		{"diagonal neighbour is even", core.NewVec3(scale, scale, 0), black},
		{"negative cell is odd", core.NewVec3(-0.1, 0, 0), white},
		{"negative diagonal is even", core.NewVec3(-0.1, -0.1, 0), black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Value(0, 0, tt.p); got != tt.expected {
				t.Errorf("Checker.Value(%v) = %v, want %v", tt.p, got, tt.expected)
			}
		})
	}
}

func TestImage_MissingDataIsCyan(t *testing.T) {
	cyan := core.NewVec3(0, 1, 1)

	if got := NewImage(nil).Value(0.5, 0.5, core.Vec3{}); got != cyan {
		t.Errorf("nil image = %v, want cyan", got)
	}
	if got := NewImage(&loaders.ImageData{}).Value(0.5, 0.5, core.Vec3{}); got != cyan {
		t.Errorf("empty image = %v, want cyan", got)
	}
}

func TestLoadImage_FailureFallsBackToCyan(t *testing.T) {
	tex, err := LoadImage(filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
	if tex == nil {
		t.Fatal("Expected a fallback texture")
	}
	if got := tex.Value(0.3, 0.3, core.Vec3{}); got != core.NewVec3(0, 1, 1) {
		t.Errorf("Fallback texture = %v, want cyan", got)
	}
}

func TestImage_SamplingAndClamping(t *testing.T) {
	// Bottom row first: (0,0) red, (1,0) green, (0,1) blue, (1,1) white
	red := core.NewVec3(1, 0, 0)
	green := core.NewVec3(0, 1, 0)
	blue := core.NewVec3(0, 0, 1)
	tex := NewImage(&loaders.ImageData{Width: 2, Height: 2, Pixels: []core.Vec3{red, green, blue, white}})

	tests := []struct {
		name     string
		u, v     float64
		expected core.Vec3
	}{
		{"bottom left", 0, 0, red},
		{"bottom right", 1, 0, green},
		{"top left", 0, 1, blue},
		{"top right", 1, 1, white},
		{"just below 1 truncates", 0.99, 0.99, red},
		{"u clamped high", 5, 0, green},
		{"v clamped low", 1, -3, green},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tex.Value(tt.u, tt.v, core.Vec3{}); got != tt.expected {
				t.Errorf("Value(%g, %g) = %v, want %v", tt.u, tt.v, got, tt.expected)
			}
		})
	}
}

func TestImage_NaNCoordinates(t *testing.T) {
	pixels := make([]core.Vec3, 9)
	for i := range pixels {
		pixels[i] = core.NewVec3(float64(i), 0, 0)
	}
	tex := NewImage(&loaders.ImageData{Width: 3, Height: 3, Pixels: pixels})

	tests := []struct {
		name     string
		u, v     float64
		expected core.Vec3
	}{
		{"NaN v", 0.5, math.NaN(), pixels[1]},
		{"NaN u", math.NaN(), 1, pixels[6]},
		{"both NaN", math.NaN(), math.NaN(), pixels[0]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tex.Value(tt.u, tt.v, core.Vec3{}); got != tt.expected {
				t.Errorf("Value(%g, %g) = %v, want %v", tt.u, tt.v, got, tt.expected)
			}
		})
	}
}

func TestLoadImage_LinearAndBottomUp(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255}) // top
	img.Set(0, 1, color.RGBA{R: 128, G: 0, B: 0, A: 255})     // bottom

	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	tex, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	bottom := tex.Value(0, 0, core.Vec3{})
	wantRed := math.Pow(128.0/255.0, loaders.DisplayGamma)
	if math.Abs(bottom.X-wantRed) > 1e-3 || bottom.Y != 0 {
		t.Errorf("Bottom pixel = %v, want (%f, 0, 0)", bottom, wantRed)
	}
	if top := tex.Value(0, 1, core.Vec3{}); top != white {
		t.Errorf("Top pixel = %v, want white", top)
	}
}

func TestNoise_Gray(t *testing.T) {
	n, err := noise.NewPerlinNoise(256, core.NewSeededSampler(1))
	if err != nil {
		t.Fatal(err)
	}
	tex := NewNoise(n, 4)
	sampler := core.NewSeededSampler(2)

	for i := 0; i < 200; i++ {
		p := core.RandomVec3(sampler, -10, 10)
		c := tex.Value(0, 0, p)
		if c.X != c.Y || c.Y != c.Z {
			t.Fatalf("Noise texture should be gray, got %v", c)
		}
		if c.X < 0 || c.X > 1 {
			t.Fatalf("Noise texture out of [0,1]: %v", c)
		}
	}
}
