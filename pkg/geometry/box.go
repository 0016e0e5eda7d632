package geometry

import (
	"github.com/YassinRamadan1/Software-RayTracer/pkg/core"
	"github.com/YassinRamadan1/Software-RayTracer/pkg/material"
)

// NewBox creates an axis-aligned box with opposite corners a and b, made up
// of 6 outward-facing quads sharing one material
func NewBox(a, b core.Vec3, mat material.Material) *HittableList {
	lo := a.Min(b)
	hi := a.Max(b)

	dx := core.NewVec3(hi.X-lo.X, 0, 0)
	dy := core.NewVec3(0, hi.Y-lo.Y, 0)
	dz := core.NewVec3(0, 0, hi.Z-lo.Z)

	sides := NewHittableList()
	sides.Add(NewQuad(core.NewVec3(lo.X, lo.Y, hi.Z), dx, dy, mat))          // front
	sides.Add(NewQuad(core.NewVec3(hi.X, lo.Y, hi.Z), dz.Negate(), dy, mat)) // right
	sides.Add(NewQuad(core.NewVec3(hi.X, lo.Y, lo.Z), dx.Negate(), dy, mat)) // back
	sides.Add(NewQuad(core.NewVec3(lo.X, lo.Y, lo.Z), dz, dy, mat))          // left
	sides.Add(NewQuad(core.NewVec3(lo.X, hi.Y, hi.Z), dx, dz.Negate(), mat)) // top
	sides.Add(NewQuad(core.NewVec3(lo.X, lo.Y, lo.Z), dx, dz, mat))          // bottom

	return sides
}
