package geometry

import (
	"github.com/YassinRamadan1/Software-RayTracer/pkg/core"
	"github.com/YassinRamadan1/Software-RayTracer/pkg/material"
)

// Hittable interface for objects that can be hit by rays.
// Hit fills rec only when it returns true. Implementations are read-only
// after construction and safe for concurrent use.
type Hittable interface {
	Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord) bool
	BoundingBox() core.AABB
}
