package noise

import (
	"github.com/YassinRamadan1/Software-RayTracer/pkg/core"
)

// ValueNoise interpolates random scalars stored at lattice corners
type ValueNoise struct {
	lattice
	values []float64
}

// NewValueNoise builds the random value and permutation tables for a lattice
// of gridSize cells per axis. gridSize must be a power of two.
func NewValueNoise(gridSize int, sampler core.Sampler) (*ValueNoise, error) {
	values := make([]float64, max(gridSize, 0))
	for i := range values {
		values[i] = sampler.Get1D()
	}

	l, err := newLattice(gridSize, sampler)
	if err != nil {
		return nil, err
	}

	return &ValueNoise{lattice: l, values: values}, nil
}

// Value returns trilinearly interpolated noise in [0, 1) eased with smoothstep
func (n *ValueNoise) Value(p core.Vec3) float64 {
	c := n.locate(p)

	u := core.Smoothstep(0, 1, c.tx)
	v := core.Smoothstep(0, 1, c.ty)
	w := core.Smoothstep(0, 1, c.tz)

	v000 := n.values[n.hash(c.x0, c.y0, c.z0)]
	v100 := n.values[n.hash(c.x1, c.y0, c.z0)]
	v010 := n.values[n.hash(c.x0, c.y1, c.z0)]
	v110 := n.values[n.hash(c.x1, c.y1, c.z0)]
	near := core.Lerp(core.Lerp(v000, v100, u), core.Lerp(v010, v110, u), v)

	v001 := n.values[n.hash(c.x0, c.y0, c.z1)]
	v101 := n.values[n.hash(c.x1, c.y0, c.z1)]
	v011 := n.values[n.hash(c.x0, c.y1, c.z1)]
	v111 := n.values[n.hash(c.x1, c.y1, c.z1)]
	far := core.Lerp(core.Lerp(v001, v101, u), core.Lerp(v011, v111, u), v)

	return core.Lerp(near, far, w)
}

// Turbulence implements Noise
func (n *ValueNoise) Turbulence(p core.Vec3, depth int) float64 {
	return turbulence(n.Value, p, depth)
}
