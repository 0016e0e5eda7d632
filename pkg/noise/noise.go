// Package noise implements lattice noise generators used by procedural textures.
package noise

import (
	"errors"
	"fmt"
	"math"

	"github.com/YassinRamadan1/Software-RayTracer/pkg/core"
)

// ErrGridSize is returned when a noise lattice size is not a positive power of two
var ErrGridSize = errors.New("noise grid size must be a positive power of two")

// ErrUnknownKind is returned by New for an unrecognized generator name
var ErrUnknownKind = errors.New("unknown noise kind")

// Generator names accepted by New
const (
	KindPerlin = "perlin"
	KindValue  = "value"
)

// turbulenceWeight and turbulenceFrequency are the per-octave multipliers
const (
	turbulenceWeight    = 0.5
	turbulenceFrequency = 2.0
)

// Noise is a scalar field over 3D space
type Noise interface {
	// Value returns the noise value at p
	Value(p core.Vec3) float64
	// Turbulence sums depth octaves of noise and returns the absolute value
	Turbulence(p core.Vec3, depth int) float64
}

// New creates a generator by name. An empty kind selects Perlin noise.
func New(kind string, gridSize int, sampler core.Sampler) (Noise, error) {
	var (
		n   Noise
		err error
	)
	switch kind {
	case "", KindPerlin:
		n, err = NewPerlinNoise(gridSize, sampler)
	case KindValue:
		n, err = NewValueNoise(gridSize, sampler)
	default:
		return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownKind, kind, KindPerlin, KindValue)
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

// ValidKind reports whether New accepts kind
func ValidKind(kind string) bool {
	return kind == "" || kind == KindPerlin || kind == KindValue
}

// lattice holds the permutation table shared by value and gradient noise.
// perm has 2*size entries so that perm[perm[x]+y] never needs wrapping.
type lattice struct {
	size int
	mask int
	perm []int
}

func newLattice(size int, sampler core.Sampler) (lattice, error) {
	if size <= 0 || size&(size-1) != 0 {
		return lattice{}, fmt.Errorf("%w: got %d", ErrGridSize, size)
	}

	perm := make([]int, 2*size)
	for i := 0; i < size; i++ {
		perm[i] = i
	}
	for i := 0; i < size; i++ {
		j := sampler.IntN(size)
		perm[i], perm[j] = perm[j], perm[i]
	}
	copy(perm[size:], perm[:size])

	return lattice{size: size, mask: size - 1, perm: perm}, nil
}

func (l lattice) hash(x, y, z int) int {
	return l.perm[l.perm[l.perm[x]+y]+z]
}

// cell splits p into its masked lattice corners and the fractional offset
// inside the cell.
type cell struct {
	x0, y0, z0 int
	x1, y1, z1 int
	tx, ty, tz float64
}

func (l lattice) locate(p core.Vec3) cell {
	fx, fy, fz := math.Floor(p.X), math.Floor(p.Y), math.Floor(p.Z)
	xi, yi, zi := int(fx), int(fy), int(fz)

	return cell{
		x0: xi & l.mask, y0: yi & l.mask, z0: zi & l.mask,
		x1: (xi + 1) & l.mask, y1: (yi + 1) & l.mask, z1: (zi + 1) & l.mask,
		tx: p.X - fx, ty: p.Y - fy, tz: p.Z - fz,
	}
}

// turbulence sums octaves of value with halving weight and doubling frequency
func turbulence(value func(core.Vec3) float64, p core.Vec3, depth int) float64 {
	accumulation := 0.0
	weight := 1.0
	frequency := 1.0
	for i := 0; i < depth; i++ {
		accumulation += weight * value(p.Multiply(frequency))
		weight *= turbulenceWeight
		frequency *= turbulenceFrequency
	}
	return math.Abs(accumulation)
}
