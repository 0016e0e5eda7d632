package scene

import (
	"errors"
	"fmt"

	"github.com/YassinRamadan1/Software-RayTracer/pkg/core"
	"github.com/YassinRamadan1/Software-RayTracer/pkg/geometry"
	"github.com/YassinRamadan1/Software-RayTracer/pkg/log"
	"github.com/YassinRamadan1/Software-RayTracer/pkg/renderer"
)

var logger = log.New("scene")

// ErrUnknownScene is returned when a preset name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name   string
	Camera renderer.CameraConfig
	World  geometry.Hittable
}

// Options carries the inputs that preset builders may depend on
type Options struct {
	Seed         int64  // Seeds random placement and noise tables
	EarthTexture string // Image used by the earth preset
	Noise        string // Marble generator, noise.KindPerlin (default) or noise.KindValue
}

// Builder constructs a preset scene
type Builder func(opts Options) (*Scene, error)

// PrimitiveCount returns the number of top-level objects in the world
func (s *Scene) PrimitiveCount() int {
	switch w := s.World.(type) {
	case *geometry.HittableList:
		return w.Len()
	case *geometry.BVHNode:
		return w.Stats().LeafObjects
	case nil:
		return 0
	}
	return 1
}

// Build looks up name and constructs the preset
func Build(name string, opts Options) (*Scene, error) {
	builder, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	s, err := builder(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %s: %w", name, err)
	}
	s.Name = name
	logger.Debugf("built scene %s with %d objects", name, s.PrimitiveCount())
	return s, nil
}

// defaultCamera returns the camera shared by most presets
func defaultCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		ImageWidth:      400,
		AspectRatio:     16.0 / 9.0,
		VFov:            20,
		DefocusAngle:    0,
		FocusDistance:   10,
		LookFrom:        core.NewVec3(13, 2, 3),
		LookAt:          core.NewVec3(0, 0, 0),
		Up:              core.NewVec3(0, 1, 0),
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Background:      core.NewVec3(0.70, 0.80, 1.00),
	}
}
