package geometry

import (
	"math"
	"testing"

	"github.com/YassinRamadan1/Software-RayTracer/pkg/core"
	"github.com/YassinRamadan1/Software-RayTracer/pkg/material"
)

func TestTranslate(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, DummyMaterial{})
	moved := NewTranslate(sphere, core.NewVec3(10, 0, 0))

	var rec material.HitRecord
	if moved.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), defaultRayT, &rec) {
		t.Error("Original position should be empty")
	}
	if !moved.Hit(core.NewRay(core.NewVec3(10, 0, 5), core.NewVec3(0, 0, -1)), defaultRayT, &rec) {
		t.Fatal("Expected hit at the translated position")
	}
	if !vecNear(rec.Point, core.NewVec3(10, 0, 1), 1e-9) {
		t.Errorf("Hit point %v, want (10,0,1)", rec.Point)
	}
	if !vecNear(rec.Normal, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Normal %v, want (0,0,1)", rec.Normal)
	}

	box := moved.BoundingBox()
	if box.X.Min != 9 || box.X.Max != 11 {
		t.Errorf("Box X = %v, want [9, 11]", box.X)
	}
}

func TestRotateY_BoundingBox(t *testing.T) {
	// Unit cube [0,1]^3 rotated 45 degrees spans x in [0, sqrt2] and
	// z in [-sqrt2/2, sqrt2/2]
	cube := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), DummyMaterial{})
	rotated := NewRotateY(cube, 45)
	box := rotated.BoundingBox()

	const tol = 1e-3
	sqrt2 := math.Sqrt2
	if math.Abs(box.X.Min) > tol || math.Abs(box.X.Max-sqrt2) > tol {
		t.Errorf("X = %v, want [0, %f]", box.X, sqrt2)
	}
	if math.Abs(box.Z.Min+sqrt2/2) > tol || math.Abs(box.Z.Max-sqrt2/2) > tol {
		t.Errorf("Z = %v, want [%f, %f]", box.Z, -sqrt2/2, sqrt2/2)
	}
	if math.Abs(box.Y.Min) > tol || math.Abs(box.Y.Max-1) > tol {
		t.Errorf("Y = %v, want [0, 1]", box.Y)
	}
	if box.X.IsEmpty() || box.Z.IsEmpty() {
		t.Error("Rotated box must not be empty")
	}
}

func TestRotateY_ContainsEveryHit(t *testing.T) {
	box := NewBox(core.NewVec3(-1, 0, -0.5), core.NewVec3(2, 1, 0.5), DummyMaterial{})
	rotated := NewRotateY(box, 73)
	bounds := rotated.BoundingBox()
	sampler := core.NewSeededSampler(99)

	hits := 0
	for i := 0; i < 2000; i++ {
		origin := core.RandomVec3(sampler, -4, 4)
		ray := core.NewRay(origin, core.RandomUnitVector(sampler))
		var rec material.HitRecord
		if !rotated.Hit(ray, defaultRayT, &rec) {
			continue
		}
		hits++
		for axis := 0; axis < 3; axis++ {
			iv := bounds.Axis(axis).Expand(1e-9)
			if !iv.Contains(rec.Point.Axis(axis)) {
				t.Fatalf("Hit point %v outside rotated bounds %v", rec.Point, bounds)
			}
		}
		if math.Abs(rec.Normal.Length()-1) > 1e-9 {
			t.Fatalf("Rotated normal %v is not unit length", rec.Normal)
		}
	}
	if hits == 0 {
		t.Fatal("Expected at least some rays to hit")
	}
}

func TestRotateY_Hit(t *testing.T) {
	// A quad facing +Z rotated 90 degrees faces +X
	quad := NewQuad(core.NewVec3(-1, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), DummyMaterial{})
	rotated := NewRotateY(quad, 90)

	var rec material.HitRecord
	if rotated.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), defaultRayT, &rec) {
		t.Error("Rotated quad is edge-on to this ray")
	}
	if !rotated.Hit(core.NewRay(core.NewVec3(5, 0.5, 0.5), core.NewVec3(-1, 0, 0)), defaultRayT, &rec) {
		t.Fatal("Expected hit on the rotated quad")
	}
	if math.Abs(rec.T-5) > 1e-9 {
		t.Errorf("t = %f, want 5", rec.T)
	}
	if !vecNear(rec.Point, core.NewVec3(0, 0.5, 0.5), 1e-9) {
		t.Errorf("Point = %v, want (0, 0.5, 0.5)", rec.Point)
	}
	if !vecNear(rec.Normal, core.NewVec3(1, 0, 0), 1e-9) {
		t.Errorf("Normal = %v, want (1,0,0)", rec.Normal)
	}
}
