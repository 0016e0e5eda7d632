package noise

import (
	"github.com/YassinRamadan1/Software-RayTracer/pkg/core"
)

// PerlinNoise interpolates dot products of random unit gradients at lattice
// corners with the offset from each corner.
type PerlinNoise struct {
	lattice
	gradients []core.Vec3
}

// NewPerlinNoise builds the gradient and permutation tables for a lattice of
// gridSize cells per axis. gridSize must be a power of two.
func NewPerlinNoise(gridSize int, sampler core.Sampler) (*PerlinNoise, error) {
	gradients := make([]core.Vec3, max(gridSize, 0))
	for i := range gradients {
		var g core.Vec3
		for g.NearZero() {
			g = core.RandomVec3(sampler, -1, 1)
		}
		gradients[i] = g.Normalize()
	}

	l, err := newLattice(gridSize, sampler)
	if err != nil {
		return nil, err
	}

	return &PerlinNoise{lattice: l, gradients: gradients}, nil
}

// Value returns gradient noise in roughly [-1, 1] eased with smootherstep
func (n *PerlinNoise) Value(p core.Vec3) float64 {
	c := n.locate(p)

	u := core.Smootherstep(c.tx)
	v := core.Smootherstep(c.ty)
	w := core.Smootherstep(c.tz)

	corner := func(x, y, z int, dx, dy, dz float64) float64 {
		return n.gradients[n.hash(x, y, z)].Dot(core.NewVec3(dx, dy, dz))
	}

	tx, ty, tz := c.tx, c.ty, c.tz

	near := core.Lerp(
		core.Lerp(corner(c.x0, c.y0, c.z0, tx, ty, tz), corner(c.x1, c.y0, c.z0, tx-1, ty, tz), u),
		core.Lerp(corner(c.x0, c.y1, c.z0, tx, ty-1, tz), corner(c.x1, c.y1, c.z0, tx-1, ty-1, tz), u),
		v)

	far := core.Lerp(
		core.Lerp(corner(c.x0, c.y0, c.z1, tx, ty, tz-1), corner(c.x1, c.y0, c.z1, tx-1, ty, tz-1), u),
		core.Lerp(corner(c.x0, c.y1, c.z1, tx, ty-1, tz-1), corner(c.x1, c.y1, c.z1, tx-1, ty-1, tz-1), u),
		v)

	return core.Lerp(near, far, w)
}

// Turbulence implements Noise
func (n *PerlinNoise) Turbulence(p core.Vec3, depth int) float64 {
	return turbulence(n.Value, p, depth)
}
