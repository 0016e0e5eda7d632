package core

// minAxisWidth is the narrowest slab an AABB may have. Flat primitives such as
// axis-aligned quads would otherwise produce zero-thickness boxes that rays
// can slip through.
const minAxisWidth = 0.0001

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

var (
	// EmptyAABB bounds nothing; it is the identity for NewAABBUnion
	EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}
	// UniverseAABB bounds all of space
	UniverseAABB = AABB{X: UniverseInterval, Y: UniverseInterval, Z: UniverseInterval}
)

// NewAABB creates an AABB from explicit per-axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}.padded()
}

// NewAABBFromPoints creates an AABB with a and b as opposite corners, in any order
func NewAABBFromPoints(a, b Vec3) AABB {
	return AABB{
		X: NewInterval(min(a.X, b.X), max(a.X, b.X)),
		Y: NewInterval(min(a.Y, b.Y), max(a.Y, b.Y)),
		Z: NewInterval(min(a.Z, b.Z), max(a.Z, b.Z)),
	}.padded()
}

// NewAABBUnion returns an AABB that bounds both a and b
func NewAABBUnion(a, b AABB) AABB {
	return AABB{
		X: UniteIntervals(a.X, b.X),
		Y: UniteIntervals(a.Y, b.Y),
		Z: UniteIntervals(a.Z, b.Z),
	}.padded()
}

// padded widens any axis narrower than minAxisWidth. Empty axes stay empty.
func (aabb AABB) padded() AABB {
	if aabb.X.Size() < minAxisWidth {
		aabb.X = aabb.X.Expand(minAxisWidth)
	}
	if aabb.Y.Size() < minAxisWidth {
		aabb.Y = aabb.Y.Expand(minAxisWidth)
	}
	if aabb.Z.Size() < minAxisWidth {
		aabb.Z = aabb.Z.Expand(minAxisWidth)
	}
	return aabb
}

// Axis returns the interval for axis 0 (X), 1 (Y) or 2 (Z)
func (aabb AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	}
	panic("core: AABB axis out of range")
}

// Offset returns the box translated by v
func (aabb AABB) Offset(v Vec3) AABB {
	return NewAABB(aabb.X.Offset(v.X), aabb.Y.Offset(v.Y), aabb.Z.Offset(v.Z))
}

// Min returns the minimum corner
func (aabb AABB) Min() Vec3 {
	return NewVec3(aabb.X.Min, aabb.Y.Min, aabb.Z.Min)
}

// Max returns the maximum corner
func (aabb AABB) Max() Vec3 {
	return NewVec3(aabb.X.Max, aabb.Y.Max, aabb.Z.Max)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent.
// X wins ties with Y; Z is chosen only when strictly longer than both.
func (aabb AABB) LongestAxis() int {
	axis := 0
	size := aabb.X.Size()
	if size < aabb.Y.Size() {
		size = aabb.Y.Size()
		axis = 1
	}
	if size < aabb.Z.Size() {
		axis = 2
	}
	return axis
}

// Hit tests if a ray intersects the box within rayT using the slab method.
// Zero direction components give infinite reciprocals, which IEEE-754 turns
// into the correct unbounded or empty slab. A NaN slab bound (origin exactly
// on a slab plane of a parallel ray) leaves the running interval untouched.
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		slab := aabb.Axis(axis)
		if slab.IsEmpty() {
			return false
		}
		origin := ray.Origin.Axis(axis)
		invDirection := 1.0 / ray.Direction.Axis(axis)

		t0 := (slab.Min - origin) * invDirection
		t1 := (slab.Max - origin) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}

	return true
}
