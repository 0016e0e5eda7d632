// Package texture provides spatially varying colors for materials.
package texture

import (
	"math"

	"github.com/YassinRamadan1/Software-RayTracer/pkg/core"
	"github.com/YassinRamadan1/Software-RayTracer/pkg/loaders"
	"github.com/YassinRamadan1/Software-RayTracer/pkg/noise"
)

// Texture returns a color for a surface point.
// u, v are surface coordinates; p is the world-space hit point.
type Texture interface {
	Value(u, v float64, p core.Vec3) core.Vec3
}

// Solid provides uniform color
type Solid struct {
	Color core.Vec3
}

// NewSolid creates a new solid color texture
func NewSolid(color core.Vec3) *Solid {
	return &Solid{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *Solid) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two textures on a 3D lattice of cubes with
// edge length Scale
type Checker struct {
	invScale  float64
	Even, Odd Texture
}

// NewChecker creates a checker pattern from two sub-textures
func NewChecker(scale float64, even, odd Texture) *Checker {
	return &Checker{invScale: 1.0 / scale, Even: even, Odd: odd}
}

// NewCheckerColors creates a checker pattern from two solid colors
func NewCheckerColors(scale float64, even, odd core.Vec3) *Checker {
	return NewChecker(scale, NewSolid(even), NewSolid(odd))
}

// Value picks the even or odd texture by the parity of the cell index sum
func (c *Checker) Value(u, v float64, p core.Vec3) core.Vec3 {
	sum := math.Floor(c.invScale*p.X) + math.Floor(c.invScale*p.Y) + math.Floor(c.invScale*p.Z)
	if int(sum)%2 != 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}

// missingImageColor is returned by an Image with no pixel data
var missingImageColor = core.NewVec3(0, 1, 1)

// Image samples a linear-light bitmap whose row 0 is the bottom of the picture
type Image struct {
	data *loaders.ImageData
}

// NewImage wraps already-prepared pixel data. Nil or empty data samples as cyan.
func NewImage(data *loaders.ImageData) *Image {
	return &Image{data: data}
}

// LoadImage loads a texture from disk. On failure it still returns a usable
// texture that renders cyan, together with the error.
func LoadImage(path string) (*Image, error) {
	data, err := loaders.LoadLinearImage(path)
	if err != nil {
		return NewImage(nil), err
	}
	return NewImage(data), nil
}

// Value samples the nearest pixel; u and v are clamped to [0, 1] and NaN
// reads as 0
func (t *Image) Value(u, v float64, p core.Vec3) core.Vec3 {
	if t.data.Empty() {
		return missingImageColor
	}

	u = clampUnit(u)
	v = clampUnit(v)
	i := int(u * float64(t.data.Width-1))
	j := int(v * float64(t.data.Height-1))

	return t.data.At(i, j)
}

func clampUnit(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return core.Clamp(x, 0, 1)
}

// turbulenceDepth is the number of octaves in the marble pattern
const turbulenceDepth = 7

// Noise produces a gray marble pattern from turbulence
type Noise struct {
	noise noise.Noise
	scale float64
}

// NewNoise creates a marble texture over the given noise generator
func NewNoise(n noise.Noise, scale float64) *Noise {
	return &Noise{noise: n, scale: scale}
}

// Value returns 0.5 * (1 + sin(scale*x + 10*turbulence(p))) as a gray color
func (t *Noise) Value(u, v float64, p core.Vec3) core.Vec3 {
	gray := 0.5 * (1 + math.Sin(t.scale*p.X+10*t.noise.Turbulence(p, turbulenceDepth)))
	return core.NewVec3(gray, gray, gray)
}
